package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// intentRepository implements domain.IntentRepository
type intentRepository struct {
	db *DB
}

// NewIntentRepository creates a new deposit intent repository
func NewIntentRepository(db *DB) domain.IntentRepository {
	return &intentRepository{db: db}
}

// Create creates a new unsettled intent
func (r *intentRepository) Create(ctx context.Context, intent *domain.DepositIntent) error {
	query := `
		INSERT INTO deposit_intents (id, user_id, account_type, goal_id, amount, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		intent.ID,
		intent.OwnerID,
		string(intent.TargetKind),
		nullableUUID(intent.GoalID),
		intent.Amount.String(),
		intent.Reference,
		intent.CreatedAt,
	)
	if err != nil {
		return mapError(fmt.Errorf("failed to create deposit intent: %w", err))
	}

	return nil
}

// UpdateReference re-keys an unsettled intent
func (r *intentRepository) UpdateReference(ctx context.Context, intentID uuid.UUID, reference string) error {
	query := `
		UPDATE deposit_intents
		SET reference = $2
		WHERE id = $1 AND NOT is_successful
	`

	result, err := r.db.ExecContext(ctx, query, intentID, reference)
	if err != nil {
		return mapError(fmt.Errorf("failed to update intent reference: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("unsettled intent %s: %w", intentID, domain.ErrIntentNotFound)
	}

	return nil
}

// GetByReference retrieves an intent scoped to its owner
func (r *intentRepository) GetByReference(ctx context.Context, ownerID uuid.UUID, reference string) (*domain.DepositIntent, error) {
	query := `
		SELECT ` + intentColumns + `
		FROM deposit_intents
		WHERE reference = $1 AND user_id = $2
	`

	intent, err := scanIntent(r.db.QueryRowContext(ctx, query, reference, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reference %s: %w", reference, domain.ErrIntentNotFound)
		}
		return nil, fmt.Errorf("failed to get deposit intent: %w", err)
	}

	return intent, nil
}
