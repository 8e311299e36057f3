package goals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// CreateLockedGoalInput represents the input for creating a locked goal
type CreateLockedGoalInput struct {
	OwnerID               uuid.UUID
	Name                  string
	TargetAmount          decimal.Decimal
	TargetDate            time.Time
	HasEmergencySplit     bool
	EmergencySplitPercent *int
	AgreeToLock           bool // The owner accepts that funds stay locked until TargetDate
}

// CreateFlexibleGoalInput represents the input for creating a flexible goal
type CreateFlexibleGoalInput struct {
	OwnerID      uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
}

// GoalService handles goal-related operations
type GoalService struct {
	GoalRepo domain.GoalRepository

	logger *zap.Logger
	now    func() time.Time
}

// NewGoalService creates a new GoalService instance
func NewGoalService(goalRepo domain.GoalRepository, logger *zap.Logger) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalService{
		GoalRepo: goalRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateLockedGoal creates a locked goal with a zero balance
func (s *GoalService) CreateLockedGoal(ctx context.Context, input CreateLockedGoalInput) (*domain.LockedGoal, error) {
	if !input.AgreeToLock {
		return nil, fmt.Errorf("%w: you must agree to lock the funds until the target date", domain.ErrInvalidGoal)
	}

	goal := &domain.LockedGoal{
		ID:                    uuid.New(),
		OwnerID:               input.OwnerID,
		Name:                  strings.TrimSpace(input.Name),
		TargetAmount:          input.TargetAmount,
		CurrentAmount:         decimal.Zero,
		TargetDate:            input.TargetDate,
		HasEmergencySplit:     input.HasEmergencySplit,
		EmergencySplitPercent: input.EmergencySplitPercent,
		CreatedAt:             s.now().UTC(),
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.CreateLockedGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create locked goal: %w", err)
	}

	s.logger.Info("locked goal created",
		zap.Stringer("owner_id", goal.OwnerID),
		zap.Stringer("goal_id", goal.ID),
		zap.Int("emergency_split_percent", goal.SplitPercent()),
	)
	return goal, nil
}

// CreateFlexibleGoal creates a flexible goal with a zero balance
func (s *GoalService) CreateFlexibleGoal(ctx context.Context, input CreateFlexibleGoalInput) (*domain.FlexibleGoal, error) {
	goal := &domain.FlexibleGoal{
		ID:            uuid.New(),
		OwnerID:       input.OwnerID,
		Name:          strings.TrimSpace(input.Name),
		TargetAmount:  input.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    input.TargetDate,
		CreatedAt:     s.now().UTC(),
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.CreateFlexibleGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create flexible goal: %w", err)
	}

	s.logger.Info("flexible goal created", zap.Stringer("owner_id", goal.OwnerID), zap.Stringer("goal_id", goal.ID))
	return goal, nil
}

// ListLockedGoals returns the owner's locked goals
func (s *GoalService) ListLockedGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.LockedGoal, error) {
	goals, err := s.GoalRepo.ListLockedGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked goals: %w", err)
	}
	return goals, nil
}

// ListFlexibleGoals returns the owner's flexible goals
func (s *GoalService) ListFlexibleGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.FlexibleGoal, error) {
	goals, err := s.GoalRepo.ListFlexibleGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flexible goals: %w", err)
	}
	return goals, nil
}
