package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

// CreateLockedGoal creates a new locked goal
func (r *goalRepository) CreateLockedGoal(ctx context.Context, goal *domain.LockedGoal) error {
	query := `
		INSERT INTO locked_goals (` + lockedGoalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.OwnerID,
		goal.Name,
		goal.TargetAmount.String(),
		goal.CurrentAmount.String(),
		goal.TargetDate,
		goal.HasEmergencySplit,
		nullablePercent(goal.EmergencySplitPercent),
		goal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create locked goal: %w", err)
	}

	return nil
}

// GetLockedGoal retrieves a locked goal owned by ownerID
func (r *goalRepository) GetLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*domain.LockedGoal, error) {
	query := `
		SELECT ` + lockedGoalColumns + `
		FROM locked_goals
		WHERE id = $1 AND user_id = $2
	`

	goal, err := scanLockedGoal(r.db.QueryRowContext(ctx, query, goalID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("locked goal %s: %w", goalID, domain.ErrGoalNotFound)
		}
		return nil, fmt.Errorf("failed to get locked goal: %w", err)
	}

	return goal, nil
}

// ListLockedGoals retrieves all locked goals of an owner, oldest first
func (r *goalRepository) ListLockedGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.LockedGoal, error) {
	query := `
		SELECT ` + lockedGoalColumns + `
		FROM locked_goals
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.LockedGoal, 0)
	for rows.Next() {
		goal, err := scanLockedGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked goals: %w", err)
	}

	return goals, nil
}

// CreateFlexibleGoal creates a new flexible goal
func (r *goalRepository) CreateFlexibleGoal(ctx context.Context, goal *domain.FlexibleGoal) error {
	query := `
		INSERT INTO flexible_goals (` + flexibleGoalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.OwnerID,
		goal.Name,
		goal.TargetAmount.String(),
		goal.CurrentAmount.String(),
		goal.TargetDate,
		goal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create flexible goal: %w", err)
	}

	return nil
}

// ListFlexibleGoals retrieves all flexible goals of an owner, oldest first
func (r *goalRepository) ListFlexibleGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.FlexibleGoal, error) {
	query := `
		SELECT ` + flexibleGoalColumns + `
		FROM flexible_goals
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flexible goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.FlexibleGoal, 0)
	for rows.Next() {
		goal, err := scanFlexibleGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flexible goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flexible goals: %w", err)
	}

	return goals, nil
}
