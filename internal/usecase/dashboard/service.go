package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// Overview is a snapshot of everything an owner has saved
type Overview struct {
	LockedGoals     []*domain.LockedGoal
	FlexibleGoals   []*domain.FlexibleGoal
	EmergencyFund   *domain.EmergencyFund   // nil until the first emergency credit
	FlexibleAccount *domain.FlexibleAccount // nil until the first flexi credit
	Total           decimal.Decimal
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	GoalRepo    domain.GoalRepository
	BalanceRepo domain.BalanceRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(goalRepo domain.GoalRepository, balanceRepo domain.BalanceRepository) *DashboardService {
	return &DashboardService{
		GoalRepo:    goalRepo,
		BalanceRepo: balanceRepo,
	}
}

// GetOverview collects the owner's goals and accounts
// Logic:
//   - Goals: all locked and flexible goals of the owner
//   - Accounts: emergency fund and flexible account, absent until provisioned
//   - Total: sum of every balance above
func (s *DashboardService) GetOverview(ctx context.Context, ownerID uuid.UUID) (*Overview, error) {
	// 1. Goals
	lockedGoals, err := s.GoalRepo.ListLockedGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked goals: %w", err)
	}
	flexibleGoals, err := s.GoalRepo.ListFlexibleGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flexible goals: %w", err)
	}

	// 2. Lazily provisioned accounts
	fund, err := s.BalanceRepo.GetEmergencyFund(ctx, ownerID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to get emergency fund: %w", err)
	}
	account, err := s.BalanceRepo.GetFlexibleAccount(ctx, ownerID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to get flexible account: %w", err)
	}

	// 3. Total
	total := decimal.Zero
	for _, goal := range lockedGoals {
		total = total.Add(goal.CurrentAmount)
	}
	for _, goal := range flexibleGoals {
		total = total.Add(goal.CurrentAmount)
	}
	if fund != nil {
		total = total.Add(fund.Balance)
	}
	if account != nil {
		total = total.Add(account.Balance)
	}

	return &Overview{
		LockedGoals:     lockedGoals,
		FlexibleGoals:   flexibleGoals,
		EmergencyFund:   fund,
		FlexibleAccount: account,
		Total:           total,
	}, nil
}
