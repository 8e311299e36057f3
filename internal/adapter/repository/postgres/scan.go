package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const lockedGoalColumns = `id, user_id, name, target_amount, current_amount, target_date, has_emergency_fund, emergency_fund_percentage, created_at`

func scanLockedGoal(row rowScanner) (*domain.LockedGoal, error) {
	var goal domain.LockedGoal
	var targetStr, currentStr string
	var percent sql.NullInt32

	if err := row.Scan(
		&goal.ID,
		&goal.OwnerID,
		&goal.Name,
		&targetStr,
		&currentStr,
		&goal.TargetDate,
		&goal.HasEmergencySplit,
		&percent,
		&goal.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if goal.TargetAmount, err = decimal.NewFromString(targetStr); err != nil {
		return nil, fmt.Errorf("failed to parse target_amount: %w", err)
	}
	if goal.CurrentAmount, err = decimal.NewFromString(currentStr); err != nil {
		return nil, fmt.Errorf("failed to parse current_amount: %w", err)
	}
	if percent.Valid {
		p := int(percent.Int32)
		goal.EmergencySplitPercent = &p
	}
	return &goal, nil
}

const flexibleGoalColumns = `id, user_id, name, target_amount, current_amount, target_date, created_at`

func scanFlexibleGoal(row rowScanner) (*domain.FlexibleGoal, error) {
	var goal domain.FlexibleGoal
	var targetStr, currentStr string

	if err := row.Scan(
		&goal.ID,
		&goal.OwnerID,
		&goal.Name,
		&targetStr,
		&currentStr,
		&goal.TargetDate,
		&goal.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if goal.TargetAmount, err = decimal.NewFromString(targetStr); err != nil {
		return nil, fmt.Errorf("failed to parse target_amount: %w", err)
	}
	if goal.CurrentAmount, err = decimal.NewFromString(currentStr); err != nil {
		return nil, fmt.Errorf("failed to parse current_amount: %w", err)
	}
	return &goal, nil
}

const intentColumns = `id, user_id, account_type, goal_id, amount, reference, is_successful, created_at, settled_at`

func scanIntent(row rowScanner) (*domain.DepositIntent, error) {
	var intent domain.DepositIntent
	var goalID uuid.NullUUID
	var amountStr string
	var settledAt sql.NullTime

	if err := row.Scan(
		&intent.ID,
		&intent.OwnerID,
		&intent.TargetKind,
		&goalID,
		&amountStr,
		&intent.Reference,
		&intent.Settled,
		&intent.CreatedAt,
		&settledAt,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	intent.Amount = amount
	if goalID.Valid {
		id := goalID.UUID
		intent.GoalID = &id
	}
	if settledAt.Valid {
		t := settledAt.Time
		intent.SettledAt = &t
	}
	return &intent, nil
}

func scanEmergencyFund(row rowScanner) (*domain.EmergencyFund, error) {
	var fund domain.EmergencyFund
	var balanceStr string

	if err := row.Scan(&fund.ID, &fund.OwnerID, &balanceStr, &fund.Percentage); err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	fund.Balance = balance
	return &fund, nil
}

func scanFlexibleAccount(row rowScanner) (*domain.FlexibleAccount, error) {
	var account domain.FlexibleAccount
	var balanceStr string

	if err := row.Scan(&account.ID, &account.OwnerID, &balanceStr); err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	account.Balance = balance
	return &account, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullablePercent(p *int) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*p), Valid: true}
}
