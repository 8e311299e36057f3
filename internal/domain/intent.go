package domain

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferencePrefix marks deposit references issued by this service
const ReferencePrefix = "dbx_"

// DepositIntent represents an expected incoming payment.
// It is created unsettled when checkout starts and is settled exactly once by reconciliation.
type DepositIntent struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	TargetKind AccountKind
	GoalID     *uuid.UUID // Required for safelock, optional for emergency, nil for flexi
	Amount     decimal.Decimal
	Reference  string // Globally unique, doubles as the idempotency key
	Settled    bool
	CreatedAt  time.Time
	SettledAt  *time.Time
}

// Validate ensures the intent adheres to domain rules
func (i *DepositIntent) Validate() error {
	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if i.Reference == "" {
		return fmt.Errorf("%w: deposit reference cannot be empty", ErrInvariantViolation)
	}

	switch i.TargetKind {
	case AccountKindLockedGoal:
		if i.GoalID == nil {
			return fmt.Errorf("%w: goal_id is required for this account type", ErrGoalNotFound)
		}
	case AccountKindEmergencyFund:
	case AccountKindFlexibleAccount:
		if i.GoalID != nil {
			return fmt.Errorf("%w: flexi deposits cannot reference a goal", ErrInvalidAccountKind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAccountKind, i.TargetKind)
	}

	if i.Settled != (i.SettledAt != nil) {
		return fmt.Errorf("%w: settled flag and settlement time disagree", ErrInvariantViolation)
	}

	return nil
}

// NewReference returns a fresh deposit reference
func NewReference() string {
	id := uuid.New()
	return ReferencePrefix + hex.EncodeToString(id[:])
}
