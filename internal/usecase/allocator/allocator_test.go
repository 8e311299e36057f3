package allocator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

func TestSplitDeposit_TwentyPercentScenario(t *testing.T) {
	// Input: 100, Rule: 20% to the emergency fund
	// Expected: Goal=80, Emergency=20
	split, err := SplitDeposit(decimal.NewFromInt(100), 20)

	require.NoError(t, err)
	assert.True(t, split.GoalShare.Equal(decimal.NewFromInt(80)), "Goal should get 80, got %s", split.GoalShare)
	assert.True(t, split.EmergencyShare.Equal(decimal.NewFromInt(20)), "Emergency should get 20, got %s", split.EmergencyShare)
}

func TestSplitDeposit_NoPennyLost(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		percent       int
		wantGoal      string
		wantEmergency string
	}{
		{name: "Thirds", amount: "33.33", percent: 30, wantGoal: "23.33", wantEmergency: "10.00"},
		{name: "Rounds half away from zero", amount: "0.05", percent: 10, wantGoal: "0.04", wantEmergency: "0.01"},
		{name: "Odd cents", amount: "1234.57", percent: 17, wantGoal: "1024.69", wantEmergency: "209.88"},
		{name: "Zero percent", amount: "50", percent: 0, wantGoal: "50", wantEmergency: "0"},
		{name: "Max percent", amount: "10", percent: 30, wantGoal: "7", wantEmergency: "3"},
		{name: "Tiny amount", amount: "0.01", percent: 30, wantGoal: "0.01", wantEmergency: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			split, err := SplitDeposit(amount, tt.percent)
			require.NoError(t, err)

			assert.True(t, split.GoalShare.Equal(decimal.RequireFromString(tt.wantGoal)), "goal share: got %s", split.GoalShare)
			assert.True(t, split.EmergencyShare.Equal(decimal.RequireFromString(tt.wantEmergency)), "emergency share: got %s", split.EmergencyShare)
			assert.True(t, split.GoalShare.Add(split.EmergencyShare).Equal(amount), "shares must add up to the deposit")
		})
	}
}

func TestSplitDeposit_InvalidInput(t *testing.T) {
	_, err := SplitDeposit(decimal.Zero, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = SplitDeposit(decimal.NewFromInt(-5), 10)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = SplitDeposit(decimal.NewFromInt(100), 31)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	_, err = SplitDeposit(decimal.NewFromInt(100), -1)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}
