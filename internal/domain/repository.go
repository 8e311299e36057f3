package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	// CreateLockedGoal creates a new locked goal
	CreateLockedGoal(ctx context.Context, goal *LockedGoal) error

	// GetLockedGoal retrieves a locked goal owned by ownerID.
	// Returns ErrGoalNotFound if it does not exist or belongs to someone else.
	GetLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*LockedGoal, error)

	// ListLockedGoals retrieves all locked goals of an owner, oldest first
	ListLockedGoals(ctx context.Context, ownerID uuid.UUID) ([]*LockedGoal, error)

	// CreateFlexibleGoal creates a new flexible goal
	CreateFlexibleGoal(ctx context.Context, goal *FlexibleGoal) error

	// ListFlexibleGoals retrieves all flexible goals of an owner, oldest first
	ListFlexibleGoals(ctx context.Context, ownerID uuid.UUID) ([]*FlexibleGoal, error)
}

// BalanceRepository defines read access to the lazily provisioned per-owner accounts
type BalanceRepository interface {
	// GetEmergencyFund returns ErrAccountNotFound if the owner has none yet
	GetEmergencyFund(ctx context.Context, ownerID uuid.UUID) (*EmergencyFund, error)

	// GetFlexibleAccount returns ErrAccountNotFound if the owner has none yet
	GetFlexibleAccount(ctx context.Context, ownerID uuid.UUID) (*FlexibleAccount, error)
}

// IntentRepository defines the interface for deposit intent persistence operations
type IntentRepository interface {
	// Create creates a new unsettled intent.
	// Returns ErrDuplicateReference if the reference is taken.
	Create(ctx context.Context, intent *DepositIntent) error

	// GetByReference retrieves an intent scoped to its owner.
	// Returns ErrIntentNotFound if it does not exist or belongs to someone else.
	GetByReference(ctx context.Context, ownerID uuid.UUID, reference string) (*DepositIntent, error)

	// UpdateReference re-keys an unsettled intent, used when the payment
	// provider assigns its own reference to the checkout.
	// Returns ErrIntentNotFound if there is no unsettled intent with that id
	// and ErrDuplicateReference if reference is taken.
	UpdateReference(ctx context.Context, intentID uuid.UUID, reference string) error
}

// LedgerStore runs settlement work inside one atomic unit
type LedgerStore interface {
	// WithinTx runs fn in a transaction. Every change made through tx is
	// committed if fn returns nil and discarded otherwise.
	// Lock contention is reported as ErrConcurrentSettlement.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of mutations available inside a settlement transaction.
// Rows are locked in a fixed order: intent, then goal, then per-owner accounts.
type LedgerTx interface {
	// LockIntent loads and locks an intent row scoped to its owner
	LockIntent(ctx context.Context, ownerID uuid.UUID, reference string) (*DepositIntent, error)

	// LockLockedGoal loads and locks a goal row scoped to its owner
	LockLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*LockedGoal, error)

	// CreditLockedGoal adds amount to the goal's current amount and returns the new balance
	CreditLockedGoal(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

	// CreditEmergencyFund adds amount to the owner's emergency fund, creating
	// it with the given percentage if it does not exist yet
	CreditEmergencyFund(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal, percentage int) (*EmergencyFund, error)

	// CreditFlexibleAccount adds amount to the owner's flexible account,
	// creating it if it does not exist yet
	CreditFlexibleAccount(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*FlexibleAccount, error)

	// MarkIntentSettled flips an unsettled intent to settled
	MarkIntentSettled(ctx context.Context, intentID uuid.UUID, settledAt time.Time) error
}
