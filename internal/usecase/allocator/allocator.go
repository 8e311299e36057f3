package allocator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/dreambox-backend/internal/domain"
)

// CurrencyPlaces is the precision every allocated share is rounded to
const CurrencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Split is the result of dividing one deposit between a goal and the emergency fund
type Split struct {
	GoalShare      decimal.Decimal
	EmergencyShare decimal.Decimal
}

// SplitDeposit divides a deposit between a locked goal and the emergency fund.
// Logic:
//  1. The emergency fund receives percent% of the amount, rounded to currency precision
//  2. The goal receives the remainder (amount - emergency share)
//
// Safety: Ensures GoalShare + EmergencyShare equals amount exactly (no penny lost)
func SplitDeposit(amount decimal.Decimal, percent int) (Split, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Split{}, domain.ErrInvalidAmount
	}
	if percent < 0 || percent > domain.MaxEmergencySplitPercent {
		return Split{}, fmt.Errorf("%w: emergency split percent %d out of range", domain.ErrInvariantViolation, percent)
	}

	emergencyShare := amount.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(CurrencyPlaces)
	goalShare := amount.Sub(emergencyShare)

	if !goalShare.Add(emergencyShare).Equal(amount) {
		return Split{}, fmt.Errorf("%w: split shares do not add up to the deposit", domain.ErrInvariantViolation)
	}
	if goalShare.IsNegative() {
		return Split{}, fmt.Errorf("%w: negative goal share", domain.ErrInvariantViolation)
	}

	return Split{GoalShare: goalShare, EmergencyShare: emergencyShare}, nil
}
