package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDepositIntent_Validate(t *testing.T) {
	goalID := uuid.New()
	now := time.Now()

	valid := func() DepositIntent {
		return DepositIntent{
			ID:         uuid.New(),
			OwnerID:    uuid.New(),
			TargetKind: AccountKindLockedGoal,
			GoalID:     &goalID,
			Amount:     decimal.NewFromInt(100),
			Reference:  NewReference(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(i *DepositIntent)
		wantErr error
	}{
		{name: "Valid safelock intent", mutate: func(i *DepositIntent) {}},
		{name: "Direct emergency intent", mutate: func(i *DepositIntent) {
			i.TargetKind = AccountKindEmergencyFund
			i.GoalID = nil
		}},
		{name: "Emergency intent via goal", mutate: func(i *DepositIntent) {
			i.TargetKind = AccountKindEmergencyFund
		}},
		{name: "Flexi intent", mutate: func(i *DepositIntent) {
			i.TargetKind = AccountKindFlexibleAccount
			i.GoalID = nil
		}},
		{name: "Settled intent with timestamp", mutate: func(i *DepositIntent) {
			i.Settled = true
			i.SettledAt = &now
		}},
		{name: "Zero amount", mutate: func(i *DepositIntent) {
			i.Amount = decimal.Zero
		}, wantErr: ErrInvalidAmount},
		{name: "Safelock without goal", mutate: func(i *DepositIntent) {
			i.GoalID = nil
		}, wantErr: ErrGoalNotFound},
		{name: "Flexi with goal", mutate: func(i *DepositIntent) {
			i.TargetKind = AccountKindFlexibleAccount
		}, wantErr: ErrInvalidAccountKind},
		{name: "Flexible goal is not a deposit target", mutate: func(i *DepositIntent) {
			i.TargetKind = AccountKindFlexibleGoal
		}, wantErr: ErrInvalidAccountKind},
		{name: "Empty reference", mutate: func(i *DepositIntent) {
			i.Reference = ""
		}, wantErr: ErrInvariantViolation},
		{name: "Settled without timestamp", mutate: func(i *DepositIntent) {
			i.Settled = true
		}, wantErr: ErrInvariantViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := valid()
			tt.mutate(&intent)
			err := intent.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewReference_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		assert.True(t, strings.HasPrefix(ref, ReferencePrefix))
		assert.Len(t, ref, len(ReferencePrefix)+32)
		assert.False(t, seen[ref], "reference %s issued twice", ref)
		seen[ref] = true
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrPaymentNotConfirmed))
	assert.True(t, IsRetryable(ErrOracleUnavailable))
	assert.True(t, IsRetryable(ErrConcurrentSettlement))
	assert.False(t, IsRetryable(ErrInvariantViolation))
	assert.False(t, IsRetryable(ErrGoalNotFound))
}
