package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// balanceRepository implements domain.BalanceRepository
type balanceRepository struct {
	db *DB
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *DB) domain.BalanceRepository {
	return &balanceRepository{db: db}
}

// GetEmergencyFund retrieves the owner's emergency fund
func (r *balanceRepository) GetEmergencyFund(ctx context.Context, ownerID uuid.UUID) (*domain.EmergencyFund, error) {
	query := `SELECT id, user_id, balance, percentage FROM emergency_funds WHERE user_id = $1`

	fund, err := scanEmergencyFund(r.db.QueryRowContext(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("emergency fund for owner %s: %w", ownerID, domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency fund: %w", err)
	}

	return fund, nil
}

// GetFlexibleAccount retrieves the owner's flexible account
func (r *balanceRepository) GetFlexibleAccount(ctx context.Context, ownerID uuid.UUID) (*domain.FlexibleAccount, error) {
	query := `SELECT id, user_id, balance FROM flexible_accounts WHERE user_id = $1`

	account, err := scanFlexibleAccount(r.db.QueryRowContext(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("flexible account for owner %s: %w", ownerID, domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get flexible account: %w", err)
	}

	return account, nil
}
