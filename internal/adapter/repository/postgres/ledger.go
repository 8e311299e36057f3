package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// ledgerStore implements domain.LedgerStore on top of READ COMMITTED
// transactions with explicit row locks
type ledgerStore struct {
	db          *DB
	lockTimeout time.Duration
}

// NewLedgerStore creates a new ledger store. lockTimeout bounds how long a
// settlement waits on a row lock before failing with ErrConcurrentSettlement;
// zero leaves the server default.
func NewLedgerStore(db *DB, lockTimeout time.Duration) domain.LedgerStore {
	return &ledgerStore{db: db, lockTimeout: lockTimeout}
}

// WithinTx runs fn in a database transaction and commits if it returns nil
func (s *ledgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.LedgerTx) error) error {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return mapError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer dbTx.Rollback()

	if s.lockTimeout > 0 {
		// SET does not take bind parameters
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())
		if _, err := dbTx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	if err := fn(ctx, &ledgerTx{tx: dbTx}); err != nil {
		return mapError(err)
	}

	if err := dbTx.Commit(); err != nil {
		return mapError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// ledgerTx implements domain.LedgerTx
type ledgerTx struct {
	tx *sql.Tx
}

// LockIntent loads the intent with SELECT ... FOR UPDATE. A concurrent
// settlement of the same reference blocks here until the winner commits.
func (t *ledgerTx) LockIntent(ctx context.Context, ownerID uuid.UUID, reference string) (*domain.DepositIntent, error) {
	query := `
		SELECT ` + intentColumns + `
		FROM deposit_intents
		WHERE reference = $1 AND user_id = $2
		FOR UPDATE
	`

	intent, err := scanIntent(t.tx.QueryRowContext(ctx, query, reference, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reference %s: %w", reference, domain.ErrIntentNotFound)
		}
		return nil, fmt.Errorf("failed to lock deposit intent: %w", err)
	}

	return intent, nil
}

// LockLockedGoal loads the goal with SELECT ... FOR UPDATE
func (t *ledgerTx) LockLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*domain.LockedGoal, error) {
	query := `
		SELECT ` + lockedGoalColumns + `
		FROM locked_goals
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	goal, err := scanLockedGoal(t.tx.QueryRowContext(ctx, query, goalID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("locked goal %s: %w", goalID, domain.ErrGoalNotFound)
		}
		return nil, fmt.Errorf("failed to lock locked goal: %w", err)
	}

	return goal, nil
}

// CreditLockedGoal adds amount to the goal and returns the new balance
func (t *ledgerTx) CreditLockedGoal(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE locked_goals
		SET current_amount = current_amount + $2
		WHERE id = $1
		RETURNING current_amount
	`

	var balanceStr string
	err := t.tx.QueryRowContext(ctx, query, goalID, amount.String()).Scan(&balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: locked goal %s vanished during settlement", domain.ErrInvariantViolation, goalID)
		}
		return decimal.Zero, fmt.Errorf("failed to credit locked goal: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse current_amount: %w", err)
	}
	return balance, nil
}

// CreditEmergencyFund upserts the owner's emergency fund. The unique
// user_id makes concurrent first credits converge on one row. The
// percentage is only written on insert.
func (t *ledgerTx) CreditEmergencyFund(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal, percentage int) (*domain.EmergencyFund, error) {
	query := `
		INSERT INTO emergency_funds (id, user_id, balance, percentage)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = emergency_funds.balance + EXCLUDED.balance
		RETURNING id, user_id, balance, percentage
	`

	fund, err := scanEmergencyFund(t.tx.QueryRowContext(ctx, query, uuid.New(), ownerID, amount.String(), percentage))
	if err != nil {
		return nil, fmt.Errorf("failed to credit emergency fund: %w", err)
	}
	return fund, nil
}

// CreditFlexibleAccount upserts the owner's flexible account
func (t *ledgerTx) CreditFlexibleAccount(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*domain.FlexibleAccount, error) {
	query := `
		INSERT INTO flexible_accounts (id, user_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = flexible_accounts.balance + EXCLUDED.balance
		RETURNING id, user_id, balance
	`

	account, err := scanFlexibleAccount(t.tx.QueryRowContext(ctx, query, uuid.New(), ownerID, amount.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to credit flexible account: %w", err)
	}
	return account, nil
}

// MarkIntentSettled flips the intent to settled. Exactly one row must change.
func (t *ledgerTx) MarkIntentSettled(ctx context.Context, intentID uuid.UUID, settledAt time.Time) error {
	query := `
		UPDATE deposit_intents
		SET is_successful = TRUE, settled_at = $2
		WHERE id = $1 AND is_successful = FALSE
	`

	result, err := t.tx.ExecContext(ctx, query, intentID, settledAt)
	if err != nil {
		return fmt.Errorf("failed to settle deposit intent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("%w: settling intent %s updated %d rows", domain.ErrInvariantViolation, intentID, rows)
	}

	return nil
}
