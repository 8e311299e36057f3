package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/dreambox-backend/internal/adapter/repository/memory"
	"github.com/simaogato/dreambox-backend/internal/domain"
)

func TestGetOverview_NewOwner(t *testing.T) {
	store := memory.NewStore()
	service := NewDashboardService(store, store)

	overview, err := service.GetOverview(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, overview.LockedGoals)
	assert.Empty(t, overview.FlexibleGoals)
	assert.Nil(t, overview.EmergencyFund)
	assert.Nil(t, overview.FlexibleAccount)
	assert.True(t, overview.Total.IsZero())
}

func TestGetOverview_SumsEveryBalance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewDashboardService(store, store)
	ownerID := uuid.New()

	require.NoError(t, store.CreateLockedGoal(ctx, &domain.LockedGoal{
		ID: uuid.New(), OwnerID: ownerID, Name: "Car",
		TargetAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.RequireFromString("80.50"),
		TargetDate: time.Now().AddDate(1, 0, 0), CreatedAt: time.Now(),
	}))
	require.NoError(t, store.CreateFlexibleGoal(ctx, &domain.FlexibleGoal{
		ID: uuid.New(), OwnerID: ownerID, Name: "Trip",
		TargetAmount: decimal.NewFromInt(900), CurrentAmount: decimal.NewFromInt(10),
		TargetDate: time.Now().AddDate(0, 3, 0), CreatedAt: time.Now(),
	}))
	// Someone else's goal must not count
	require.NoError(t, store.CreateLockedGoal(ctx, &domain.LockedGoal{
		ID: uuid.New(), OwnerID: uuid.New(), Name: "Other",
		TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(1000),
		TargetDate: time.Now().AddDate(1, 0, 0), CreatedAt: time.Now(),
	}))
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.LedgerTx) error {
		if _, err := tx.CreditEmergencyFund(ctx, ownerID, decimal.RequireFromString("19.50"), 20); err != nil {
			return err
		}
		_, err := tx.CreditFlexibleAccount(ctx, ownerID, decimal.NewFromInt(30))
		return err
	}))

	overview, err := service.GetOverview(ctx, ownerID)

	require.NoError(t, err)
	assert.Len(t, overview.LockedGoals, 1)
	assert.Len(t, overview.FlexibleGoals, 1)
	require.NotNil(t, overview.EmergencyFund)
	require.NotNil(t, overview.FlexibleAccount)
	assert.Equal(t, 20, overview.EmergencyFund.Percentage)
	assert.True(t, overview.Total.Equal(decimal.NewFromInt(140)), "got %s", overview.Total)
}

type failingBalances struct{}

func (failingBalances) GetEmergencyFund(ctx context.Context, ownerID uuid.UUID) (*domain.EmergencyFund, error) {
	return nil, errors.New("connection refused")
}

func (failingBalances) GetFlexibleAccount(ctx context.Context, ownerID uuid.UUID) (*domain.FlexibleAccount, error) {
	return nil, domain.ErrAccountNotFound
}

func TestGetOverview_PropagatesStoreErrors(t *testing.T) {
	service := NewDashboardService(memory.NewStore(), failingBalances{})

	overview, err := service.GetOverview(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get emergency fund")
	assert.Nil(t, overview)
}
