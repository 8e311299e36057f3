package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/simaogato/dreambox-backend/internal/domain"
	"github.com/simaogato/dreambox-backend/internal/usecase/allocator"
)

var tracer = otel.Tracer("github.com/simaogato/dreambox-backend/internal/usecase/reconcile")

// Config bounds the engine's blocking points
type Config struct {
	OracleTimeout     time.Duration
	CommitTimeout     time.Duration
	MaxAttempts       int           // Settlement transaction attempts on lock conflicts
	RetryBackoff      time.Duration // Multiplied by the attempt number
	StrictAmountCheck bool          // Reject payments whose verified amount differs from the intent
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		OracleTimeout: 10 * time.Second,
		CommitTimeout: 5 * time.Second,
		MaxAttempts:   3,
		RetryBackoff:  50 * time.Millisecond,
	}
}

// Result describes a reconciled deposit
type Result struct {
	Amount           decimal.Decimal
	TargetKind       domain.AccountKind
	Reference        string
	AlreadyProcessed bool
	Credits          []domain.Credit // Empty when AlreadyProcessed
}

// Engine applies verified external payments to the ledger exactly once
type Engine struct {
	Intents domain.IntentRepository
	Ledger  domain.LedgerStore
	Oracle  domain.PaymentVerifier

	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates a new Engine instance
func NewEngine(
	intents domain.IntentRepository,
	ledger domain.LedgerStore,
	oracle domain.PaymentVerifier,
	cfg Config,
	logger *zap.Logger,
) *Engine {
	defaults := DefaultConfig()
	if cfg.OracleTimeout <= 0 {
		cfg.OracleTimeout = defaults.OracleTimeout
	}
	if cfg.CommitTimeout <= 0 {
		cfg.CommitTimeout = defaults.CommitTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.RetryBackoff < 0 {
		cfg.RetryBackoff = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		Intents: intents,
		Ledger:  ledger,
		Oracle:  oracle,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Reconcile confirms the payment behind reference and credits the ledger.
// Logic:
//  1. Look up the intent scoped to ownerID
//  2. Return early if it is already settled
//  3. Ask the oracle; anything but success leaves the intent pending
//  4. In one transaction: lock the intent, re-check it, credit the target
//     account(s) and mark the intent settled
//
// Safe to call any number of times, concurrently or not, for the same reference.
func (e *Engine) Reconcile(ctx context.Context, ownerID uuid.UUID, reference string) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "reconcile.Reconcile", trace.WithAttributes(
		attribute.String("deposit.reference", reference),
	))
	defer span.End()

	targetKind := "unknown"
	defer func() {
		reconciliationsTotal.WithLabelValues(outcomeOf(res, err), targetKind).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	logger := e.logger.With(zap.Stringer("owner_id", ownerID), zap.String("reference", reference))

	// 1. Look up the intent
	intent, err := e.Intents.GetByReference(ctx, ownerID, reference)
	if err != nil {
		return nil, err
	}
	targetKind = string(intent.TargetKind)
	span.SetAttributes(attribute.String("deposit.target_kind", targetKind))

	// 2. Idempotency check
	if intent.Settled {
		logger.Debug("deposit already reconciled")
		return alreadyProcessed(intent), nil
	}

	// 3. Verify with the oracle, strictly before any mutation
	if err := e.confirmPayment(ctx, intent, logger); err != nil {
		return nil, err
	}

	// 4. Apply and settle atomically
	res, err = e.settleWithRetry(ctx, ownerID, reference, logger)
	if err != nil {
		return nil, err
	}

	if res.AlreadyProcessed {
		logger.Info("deposit settled by a concurrent reconciliation")
	} else {
		logger.Info("deposit reconciled",
			zap.String("target_kind", targetKind),
			zap.Stringer("amount", res.Amount),
			zap.Int("credits", len(res.Credits)),
		)
	}
	return res, nil
}

func (e *Engine) confirmPayment(ctx context.Context, intent *domain.DepositIntent, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.OracleTimeout)
	defer cancel()

	verification, err := e.Oracle.Verify(ctx, intent.Reference)
	if err != nil {
		logger.Warn("payment verification failed", zap.Error(err))
		if errors.Is(err, domain.ErrOracleUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}

	if verification.Status != domain.PaymentStatusSuccess {
		return fmt.Errorf("%w: payment status is %s", domain.ErrPaymentNotConfirmed, verification.Status)
	}

	if !verification.Amount.IsZero() && !verification.Amount.Equal(intent.Amount) {
		amountMismatchTotal.Inc()
		logger.Warn("verified amount differs from deposit amount",
			zap.Stringer("verified_amount", verification.Amount),
			zap.Stringer("deposit_amount", intent.Amount),
		)
		if e.cfg.StrictAmountCheck {
			return fmt.Errorf("%w: oracle reported %s, deposit recorded %s",
				domain.ErrAmountMismatch, verification.Amount, intent.Amount)
		}
	}

	return nil
}

func (e *Engine) settleWithRetry(ctx context.Context, ownerID uuid.UUID, reference string, logger *zap.Logger) (*Result, error) {
	for attempt := 1; ; attempt++ {
		res, err := e.settle(ctx, ownerID, reference)
		if err == nil {
			settleAttempts.Observe(float64(attempt))
			return res, nil
		}

		if errors.Is(err, domain.ErrInvariantViolation) {
			logger.Error("ledger invariant violated, settlement rolled back", zap.Error(err))
			return nil, err
		}
		if !errors.Is(err, domain.ErrConcurrentSettlement) || attempt >= e.cfg.MaxAttempts {
			return nil, err
		}

		logger.Warn("settlement conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrConcurrentSettlement, ctx.Err())
		case <-time.After(e.cfg.RetryBackoff * time.Duration(attempt)):
		}
	}
}

// settle is the unit of recovery: the credits and the settled flag commit together or not at all
func (e *Engine) settle(ctx context.Context, ownerID uuid.UUID, reference string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.CommitTimeout)
	defer cancel()

	var res *Result
	err := e.Ledger.WithinTx(ctx, func(ctx context.Context, tx domain.LedgerTx) error {
		intent, err := tx.LockIntent(ctx, ownerID, reference)
		if err != nil {
			return err
		}

		// Another caller won the race while we were talking to the oracle
		if intent.Settled {
			res = alreadyProcessed(intent)
			return nil
		}

		credits, err := e.apply(ctx, tx, intent)
		if err != nil {
			return err
		}
		if err := checkCredits(intent.Amount, credits); err != nil {
			return err
		}

		if err := tx.MarkIntentSettled(ctx, intent.ID, e.now().UTC()); err != nil {
			return err
		}

		res = &Result{
			Amount:     intent.Amount,
			TargetKind: intent.TargetKind,
			Reference:  intent.Reference,
			Credits:    credits,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// apply credits the intent's amount to its target account kind
func (e *Engine) apply(ctx context.Context, tx domain.LedgerTx, intent *domain.DepositIntent) ([]domain.Credit, error) {
	switch intent.TargetKind {
	case domain.AccountKindFlexibleAccount:
		account, err := tx.CreditFlexibleAccount(ctx, intent.OwnerID, intent.Amount)
		if err != nil {
			return nil, err
		}
		if account.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: flexible account %s has negative balance", domain.ErrInvariantViolation, account.ID)
		}
		return []domain.Credit{{Kind: domain.AccountKindFlexibleAccount, AccountID: account.ID, Amount: intent.Amount}}, nil

	case domain.AccountKindEmergencyFund:
		percentage := 0
		if intent.GoalID != nil {
			goal, err := tx.LockLockedGoal(ctx, intent.OwnerID, *intent.GoalID)
			switch {
			case err == nil:
				percentage = goal.SplitPercent()
			case !errors.Is(err, domain.ErrGoalNotFound):
				return nil, err
			}
		}
		fund, err := tx.CreditEmergencyFund(ctx, intent.OwnerID, intent.Amount, percentage)
		if err != nil {
			return nil, err
		}
		if fund.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: emergency fund %s has negative balance", domain.ErrInvariantViolation, fund.ID)
		}
		return []domain.Credit{{Kind: domain.AccountKindEmergencyFund, AccountID: fund.ID, Amount: intent.Amount}}, nil

	case domain.AccountKindLockedGoal:
		if intent.GoalID == nil {
			return nil, fmt.Errorf("%w: safelock intent %s has no goal", domain.ErrInvariantViolation, intent.ID)
		}
		goal, err := tx.LockLockedGoal(ctx, intent.OwnerID, *intent.GoalID)
		if err != nil {
			return nil, err
		}
		return e.applyLockedGoal(ctx, tx, intent, goal)

	default:
		return nil, fmt.Errorf("%w: intent %s has unknown target kind %q", domain.ErrInvariantViolation, intent.ID, intent.TargetKind)
	}
}

func (e *Engine) applyLockedGoal(ctx context.Context, tx domain.LedgerTx, intent *domain.DepositIntent, goal *domain.LockedGoal) ([]domain.Credit, error) {
	percent := goal.SplitPercent()
	if percent == 0 {
		balance, err := tx.CreditLockedGoal(ctx, goal.ID, intent.Amount)
		if err != nil {
			return nil, err
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("%w: locked goal %s has negative balance", domain.ErrInvariantViolation, goal.ID)
		}
		return []domain.Credit{{Kind: domain.AccountKindLockedGoal, AccountID: goal.ID, Amount: intent.Amount}}, nil
	}

	split, err := allocator.SplitDeposit(intent.Amount, percent)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", goal.ID, err)
	}

	balance, err := tx.CreditLockedGoal(ctx, goal.ID, split.GoalShare)
	if err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: locked goal %s has negative balance", domain.ErrInvariantViolation, goal.ID)
	}
	credits := []domain.Credit{{Kind: domain.AccountKindLockedGoal, AccountID: goal.ID, Amount: split.GoalShare}}

	if split.EmergencyShare.IsPositive() {
		fund, err := tx.CreditEmergencyFund(ctx, intent.OwnerID, split.EmergencyShare, percent)
		if err != nil {
			return nil, err
		}
		if fund.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: emergency fund %s has negative balance", domain.ErrInvariantViolation, fund.ID)
		}
		credits = append(credits, domain.Credit{Kind: domain.AccountKindEmergencyFund, AccountID: fund.ID, Amount: split.EmergencyShare})
	}

	return credits, nil
}

func checkCredits(amount decimal.Decimal, credits []domain.Credit) error {
	total := decimal.Zero
	for _, c := range credits {
		total = total.Add(c.Amount)
	}
	if !total.Equal(amount) {
		return fmt.Errorf("%w: credited %s for a deposit of %s", domain.ErrInvariantViolation, total, amount)
	}
	return nil
}

func alreadyProcessed(intent *domain.DepositIntent) *Result {
	return &Result{
		Amount:           intent.Amount,
		TargetKind:       intent.TargetKind,
		Reference:        intent.Reference,
		AlreadyProcessed: true,
	}
}

func outcomeOf(res *Result, err error) string {
	switch {
	case err == nil && res != nil && res.AlreadyProcessed:
		return outcomeAlreadyProcessed
	case err == nil:
		return outcomeSettled
	case errors.Is(err, domain.ErrPaymentNotConfirmed):
		return outcomeNotConfirmed
	case errors.Is(err, domain.ErrOracleUnavailable):
		return outcomeOracleDown
	case errors.Is(err, domain.ErrConcurrentSettlement):
		return outcomeConflict
	case errors.Is(err, domain.ErrInvariantViolation):
		return outcomeInvariant
	case errors.Is(err, domain.ErrIntentNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrAmountMismatch):
		return outcomeRejected
	default:
		return outcomeError
	}
}
