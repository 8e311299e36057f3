package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind identifies one of the four savings account types
type AccountKind string

const (
	AccountKindLockedGoal      AccountKind = "safelock"
	AccountKindFlexibleGoal    AccountKind = "mygoal"
	AccountKindEmergencyFund   AccountKind = "emergency"
	AccountKindFlexibleAccount AccountKind = "flexi"
)

// MaxEmergencySplitPercent is the largest share of a locked goal deposit that may be diverted to the emergency fund
const MaxEmergencySplitPercent = 30

// ParseDepositTarget parses a deposit target kind. Only locked goals, the
// emergency fund and the flexible account accept external deposits.
func ParseDepositTarget(s string) (AccountKind, error) {
	switch kind := AccountKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case AccountKindLockedGoal, AccountKindEmergencyFund, AccountKindFlexibleAccount:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountKind, s)
	}
}

// LockedGoal is a savings goal whose funds are locked until the target date.
// A locked goal may divert a fixed percentage of every deposit to the owner's emergency fund.
type LockedGoal struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	Name                  string
	TargetAmount          decimal.Decimal
	CurrentAmount         decimal.Decimal
	TargetDate            time.Time
	HasEmergencySplit     bool
	EmergencySplitPercent *int // Required iff HasEmergencySplit, in [0, 30]
	CreatedAt             time.Time
}

// Validate ensures the locked goal adheres to domain rules
func (g *LockedGoal) Validate() error {
	if err := validateGoal(g.Name, g.TargetAmount, g.TargetDate); err != nil {
		return err
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: current amount cannot be negative", ErrInvalidGoal)
	}

	if g.HasEmergencySplit {
		if g.EmergencySplitPercent == nil {
			return fmt.Errorf("%w: emergency fund percentage is required when emergency fund is enabled", ErrInvalidGoal)
		}
		if p := *g.EmergencySplitPercent; p < 0 || p > MaxEmergencySplitPercent {
			return fmt.Errorf("%w: emergency fund percentage must be between 0 and %d", ErrInvalidGoal, MaxEmergencySplitPercent)
		}
	} else if g.EmergencySplitPercent != nil {
		return fmt.Errorf("%w: emergency fund percentage should not be provided when emergency fund is disabled", ErrInvalidGoal)
	}

	return nil
}

// SplitPercent returns the emergency split percentage, or 0 when no split applies
func (g *LockedGoal) SplitPercent() int {
	if !g.HasEmergencySplit || g.EmergencySplitPercent == nil {
		return 0
	}
	return *g.EmergencySplitPercent
}

// FlexibleGoal is a savings goal without a lock or split
type FlexibleGoal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
}

// Validate ensures the flexible goal adheres to domain rules
func (g *FlexibleGoal) Validate() error {
	return validateGoal(g.Name, g.TargetAmount, g.TargetDate)
}

// EmergencyFund is the per-owner emergency account. At most one exists per owner.
type EmergencyFund struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Balance    decimal.Decimal
	Percentage int // Split percent of the goal that provisioned the fund, 0 for direct deposits
}

// FlexibleAccount is the per-owner liquid account. At most one exists per owner.
type FlexibleAccount struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Balance decimal.Decimal
}

// Credit is one leg of a settled deposit
type Credit struct {
	Kind      AccountKind
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

func validateGoal(name string, target decimal.Decimal, targetDate time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: goal name cannot be empty", ErrInvalidGoal)
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: target amount must be positive", ErrInvalidGoal)
	}
	if targetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrInvalidGoal)
	}
	return nil
}
