package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	dreamboxv1 "github.com/simaogato/dreambox-backend/internal/adapter/grpc/dreambox/v1"
	"github.com/simaogato/dreambox-backend/internal/domain"
	"github.com/simaogato/dreambox-backend/internal/usecase/dashboard"
	"github.com/simaogato/dreambox-backend/internal/usecase/deposit"
	"github.com/simaogato/dreambox-backend/internal/usecase/goals"
	"github.com/simaogato/dreambox-backend/internal/usecase/reconcile"
)

// Messages returned by VerifyDeposit
const (
	msgDepositApplied   = "Deposit verified and balance updated successfully"
	msgAlreadyProcessed = "Transaction has already been verified and processed."
)

// Server implements the SavingsService gRPC server
type Server struct {
	dreamboxv1.UnimplementedSavingsServiceServer

	DepositService   *deposit.DepositService
	Reconciler       *reconcile.Engine
	GoalService      *goals.GoalService
	DashboardService *dashboard.DashboardService
	logger           *zap.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(
	depositService *deposit.DepositService,
	reconciler *reconcile.Engine,
	goalService *goals.GoalService,
	dashboardService *dashboard.DashboardService,
	logger *zap.Logger,
) *Server {
	return &Server{
		DepositService:   depositService,
		Reconciler:       reconciler,
		GoalService:      goalService,
		DashboardService: dashboardService,
		logger:           logger,
	}
}

// CreateDeposit handles the CreateDeposit RPC
func (s *Server) CreateDeposit(ctx context.Context, req *dreamboxv1.CreateDepositRequest) (*dreamboxv1.CreateDepositResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Parse amount from string to decimal
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	// Parse optional goal ID
	var goalID *uuid.UUID
	if strings.TrimSpace(req.GoalId) != "" {
		id, err := uuid.Parse(req.GoalId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid goal_id format: %v", err)
		}
		goalID = &id
	}

	out, err := s.DepositService.CreateDeposit(ctx, deposit.CreateDepositInput{
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		Amount:     amount,
		TargetKind: req.AccountType,
		GoalID:     goalID,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &dreamboxv1.CreateDepositResponse{
		IntentId:         out.IntentID.String(),
		Reference:        out.Reference,
		AuthorizationUrl: out.CheckoutURL,
	}, nil
}

// VerifyDeposit handles the VerifyDeposit RPC
func (s *Server) VerifyDeposit(ctx context.Context, req *dreamboxv1.VerifyDepositRequest) (*dreamboxv1.VerifyDepositResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return nil, status.Error(codes.InvalidArgument, "reference is required")
	}

	res, err := s.Reconciler.Reconcile(ctx, owner.ID, reference)
	if err != nil {
		return nil, s.mapError(err)
	}

	message := msgDepositApplied
	if res.AlreadyProcessed {
		message = msgAlreadyProcessed
	}

	return &dreamboxv1.VerifyDepositResponse{
		Message:          message,
		Amount:           res.Amount.StringFixed(2),
		AccountType:      string(res.TargetKind),
		Reference:        res.Reference,
		AlreadyProcessed: res.AlreadyProcessed,
	}, nil
}

// CreateSafeLock handles the CreateSafeLock RPC
func (s *Server) CreateSafeLock(ctx context.Context, req *dreamboxv1.CreateSafeLockRequest) (*dreamboxv1.SafeLock, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid target_amount format: %v", err)
	}

	var percent *int
	if req.EmergencyFundPercentage != nil {
		p := int(*req.EmergencyFundPercentage)
		percent = &p
	}

	goal, err := s.GoalService.CreateLockedGoal(ctx, goals.CreateLockedGoalInput{
		OwnerID:               owner.ID,
		Name:                  req.Name,
		TargetAmount:          target,
		TargetDate:            timeOrZero(req.TargetDate),
		HasEmergencySplit:     req.HasEmergencyFund,
		EmergencySplitPercent: percent,
		AgreeToLock:           req.AgreeToLock,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return lockedGoalToProto(goal), nil
}

// CreateMyGoal handles the CreateMyGoal RPC
func (s *Server) CreateMyGoal(ctx context.Context, req *dreamboxv1.CreateMyGoalRequest) (*dreamboxv1.MyGoal, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid target_amount format: %v", err)
	}

	goal, err := s.GoalService.CreateFlexibleGoal(ctx, goals.CreateFlexibleGoalInput{
		OwnerID:      owner.ID,
		Name:         req.Name,
		TargetAmount: target,
		TargetDate:   timeOrZero(req.TargetDate),
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return flexibleGoalToProto(goal), nil
}

// ListSafeLocks handles the ListSafeLocks RPC
func (s *Server) ListSafeLocks(ctx context.Context, req *dreamboxv1.ListSafeLocksRequest) (*dreamboxv1.ListSafeLocksResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	lockedGoals, err := s.GoalService.ListLockedGoals(ctx, owner.ID)
	if err != nil {
		return nil, s.mapError(err)
	}

	protoGoals := make([]*dreamboxv1.SafeLock, 0, len(lockedGoals))
	for _, goal := range lockedGoals {
		protoGoals = append(protoGoals, lockedGoalToProto(goal))
	}

	return &dreamboxv1.ListSafeLocksResponse{SafeLocks: protoGoals}, nil
}

// ListMyGoals handles the ListMyGoals RPC
func (s *Server) ListMyGoals(ctx context.Context, req *dreamboxv1.ListMyGoalsRequest) (*dreamboxv1.ListMyGoalsResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	flexibleGoals, err := s.GoalService.ListFlexibleGoals(ctx, owner.ID)
	if err != nil {
		return nil, s.mapError(err)
	}

	protoGoals := make([]*dreamboxv1.MyGoal, 0, len(flexibleGoals))
	for _, goal := range flexibleGoals {
		protoGoals = append(protoGoals, flexibleGoalToProto(goal))
	}

	return &dreamboxv1.ListMyGoalsResponse{MyGoals: protoGoals}, nil
}

// GetOverview handles the GetOverview RPC
func (s *Server) GetOverview(ctx context.Context, req *dreamboxv1.GetOverviewRequest) (*dreamboxv1.GetOverviewResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := s.DashboardService.GetOverview(ctx, owner.ID)
	if err != nil {
		return nil, s.mapError(err)
	}

	resp := &dreamboxv1.GetOverviewResponse{
		SafeLocks: make([]*dreamboxv1.SafeLock, 0, len(overview.LockedGoals)),
		MyGoals:   make([]*dreamboxv1.MyGoal, 0, len(overview.FlexibleGoals)),
		Total:     overview.Total.StringFixed(2),
	}
	for _, goal := range overview.LockedGoals {
		resp.SafeLocks = append(resp.SafeLocks, lockedGoalToProto(goal))
	}
	for _, goal := range overview.FlexibleGoals {
		resp.MyGoals = append(resp.MyGoals, flexibleGoalToProto(goal))
	}
	if fund := overview.EmergencyFund; fund != nil {
		resp.EmergencyFund = &dreamboxv1.EmergencyFund{
			Id:         fund.ID.String(),
			Balance:    fund.Balance.StringFixed(2),
			Percentage: int32(fund.Percentage),
		}
	}
	if account := overview.FlexibleAccount; account != nil {
		resp.Flexi = &dreamboxv1.FlexiAccount{
			Id:      account.ID.String(),
			Balance: account.Balance.StringFixed(2),
		}
	}

	return resp, nil
}

// Helper functions for conversion

func lockedGoalToProto(goal *domain.LockedGoal) *dreamboxv1.SafeLock {
	protoGoal := &dreamboxv1.SafeLock{
		Id:               goal.ID.String(),
		Name:             goal.Name,
		TargetAmount:     goal.TargetAmount.StringFixed(2),
		CurrentAmount:    goal.CurrentAmount.StringFixed(2),
		TargetDate:       timestamppb.New(goal.TargetDate),
		HasEmergencyFund: goal.HasEmergencySplit,
		CreatedAt:        timestamppb.New(goal.CreatedAt),
	}
	if goal.EmergencySplitPercent != nil {
		p := int32(*goal.EmergencySplitPercent)
		protoGoal.EmergencyFundPercentage = &p
	}
	return protoGoal
}

func flexibleGoalToProto(goal *domain.FlexibleGoal) *dreamboxv1.MyGoal {
	return &dreamboxv1.MyGoal{
		Id:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		TargetDate:    timestamppb.New(goal.TargetDate),
		CreatedAt:     timestamppb.New(goal.CreatedAt),
	}
}

func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// mapError converts domain errors to gRPC status errors.
// Internal failures reach the caller as a bare "internal error".
func (s *Server) mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountKind),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrEmergencySplitNotEnabled):
		return status.Error(codes.InvalidArgument, errorMsg)

	case errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrIntentNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, errorMsg)

	case errors.Is(err, domain.ErrDuplicateReference):
		return status.Error(codes.AlreadyExists, errorMsg)

	case errors.Is(err, domain.ErrPaymentNotConfirmed),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrCheckoutRejected):
		return status.Error(codes.FailedPrecondition, errorMsg)

	case errors.Is(err, domain.ErrOracleUnavailable):
		return status.Error(codes.Unavailable, errorMsg)

	case errors.Is(err, domain.ErrConcurrentSettlement):
		return status.Error(codes.Aborted, errorMsg)

	case errors.Is(err, domain.ErrInvariantViolation):
		s.logger.Error("invariant violation", zap.Error(err))
		return status.Error(codes.Internal, "internal error")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, errorMsg)

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, errorMsg)
	}

	s.logger.Error("unexpected error", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
