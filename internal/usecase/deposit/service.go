package deposit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/simaogato/dreambox-backend/internal/usecase/deposit")

// CreateDepositInput represents the input for creating a deposit intent
type CreateDepositInput struct {
	OwnerID    uuid.UUID
	OwnerEmail string
	Amount     decimal.Decimal
	TargetKind string     // safelock, emergency or flexi, case-insensitive
	GoalID     *uuid.UUID // Required for safelock, optional for emergency, ignored for flexi
}

// CreateDepositOutput is what the caller needs to send the user to checkout
type CreateDepositOutput struct {
	IntentID    uuid.UUID
	Reference   string
	CheckoutURL string
}

// DepositService records deposit intents and hands them to the payment provider
type DepositService struct {
	GoalRepo   domain.GoalRepository
	IntentRepo domain.IntentRepository
	Checkout   domain.CheckoutInitiator

	logger *zap.Logger
	now    func() time.Time
}

// NewDepositService creates a new DepositService instance
func NewDepositService(
	goalRepo domain.GoalRepository,
	intentRepo domain.IntentRepository,
	checkout domain.CheckoutInitiator,
	logger *zap.Logger,
) *DepositService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositService{
		GoalRepo:   goalRepo,
		IntentRepo: intentRepo,
		Checkout:   checkout,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateDeposit validates the deposit target, records an unsettled intent and
// opens a checkout session for it. Every checkout the provider knows about
// has a matching intent.
// No balance is touched here; that only happens on reconciliation.
func (s *DepositService) CreateDeposit(ctx context.Context, input CreateDepositInput) (out *CreateDepositOutput, err error) {
	ctx, span := tracer.Start(ctx, "deposit.CreateDeposit")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	// 1. Validate amount and target
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", domain.ErrInvalidAmount, input.Amount)
	}
	if !input.Amount.Equal(input.Amount.Round(2)) {
		return nil, fmt.Errorf("%w: at most 2 decimal places, got %s", domain.ErrInvalidAmount, input.Amount)
	}

	kind, err := domain.ParseDepositTarget(input.TargetKind)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("deposit.target_kind", string(kind)))

	goalID, err := s.resolveGoal(ctx, input.OwnerID, kind, input.GoalID)
	if err != nil {
		return nil, err
	}

	// 2. Record the intent under our own reference
	intent := &domain.DepositIntent{
		ID:         uuid.New(),
		OwnerID:    input.OwnerID,
		TargetKind: kind,
		GoalID:     goalID,
		Amount:     input.Amount,
		Reference:  domain.NewReference(),
		CreatedAt:  s.now().UTC(),
	}
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if err := s.IntentRepo.Create(ctx, intent); err != nil {
		return nil, fmt.Errorf("failed to record deposit intent: %w", err)
	}

	// 3. Open the checkout session
	session, err := s.Checkout.Initiate(ctx, domain.CheckoutRequest{
		Email:     strings.TrimSpace(input.OwnerEmail),
		Amount:    input.Amount,
		Reference: intent.Reference,
		Metadata: domain.CheckoutMetadata{
			TargetKind: kind,
			GoalID:     goalID,
			OwnerID:    input.OwnerID,
		},
	})
	if err != nil {
		// The intent stays unsettled; nothing can be paid against it
		return nil, fmt.Errorf("failed to initiate checkout: %w", err)
	}

	reference := intent.Reference
	if session.Reference != "" && session.Reference != reference {
		if err := s.IntentRepo.UpdateReference(ctx, intent.ID, session.Reference); err != nil {
			s.logger.Error("checkout opened under an unrecorded reference",
				zap.Stringer("intent_id", intent.ID),
				zap.String("intent_reference", reference),
				zap.String("provider_reference", session.Reference),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to record provider reference: %w", err)
		}
		reference = session.Reference
	}

	span.SetAttributes(attribute.String("deposit.reference", reference))
	s.logger.Info("deposit initiated",
		zap.Stringer("owner_id", input.OwnerID),
		zap.String("reference", reference),
		zap.String("target_kind", string(kind)),
		zap.Stringer("amount", input.Amount),
	)

	return &CreateDepositOutput{
		IntentID:    intent.ID,
		Reference:   reference,
		CheckoutURL: session.CheckoutURL,
	}, nil
}

// resolveGoal checks the goal link for the target kind and returns the goal
// id to store on the intent
func (s *DepositService) resolveGoal(ctx context.Context, ownerID uuid.UUID, kind domain.AccountKind, goalID *uuid.UUID) (*uuid.UUID, error) {
	switch kind {
	case domain.AccountKindLockedGoal:
		if goalID == nil {
			return nil, fmt.Errorf("%w: goal_id is required for safelock deposits", domain.ErrGoalNotFound)
		}
		if _, err := s.GoalRepo.GetLockedGoal(ctx, ownerID, *goalID); err != nil {
			return nil, err
		}
		return goalID, nil

	case domain.AccountKindEmergencyFund:
		if goalID == nil {
			return nil, nil
		}
		goal, err := s.GoalRepo.GetLockedGoal(ctx, ownerID, *goalID)
		if err != nil {
			return nil, err
		}
		if !goal.HasEmergencySplit {
			return nil, fmt.Errorf("%w: goal %s", domain.ErrEmergencySplitNotEnabled, goal.ID)
		}
		return goalID, nil

	default:
		return nil, nil
	}
}
