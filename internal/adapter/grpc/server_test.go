package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	dreamboxv1 "github.com/simaogato/dreambox-backend/internal/adapter/grpc/dreambox/v1"
	"github.com/simaogato/dreambox-backend/internal/adapter/repository/memory"
	"github.com/simaogato/dreambox-backend/internal/domain"
	"github.com/simaogato/dreambox-backend/internal/usecase/dashboard"
	"github.com/simaogato/dreambox-backend/internal/usecase/deposit"
	"github.com/simaogato/dreambox-backend/internal/usecase/goals"
	"github.com/simaogato/dreambox-backend/internal/usecase/reconcile"
)

const testToken = "test-token-123"

// fakeProvider plays both the checkout and the verification side of the payment provider
type fakeProvider struct {
	mu       sync.Mutex
	statuses map[string]domain.PaymentStatus
	down     bool
}

func (p *fakeProvider) Initiate(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	return &domain.CheckoutSession{CheckoutURL: "https://checkout.test/" + req.Reference}, nil
}

func (p *fakeProvider) Verify(ctx context.Context, reference string) (*domain.Verification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down {
		return nil, fmt.Errorf("%w: connection refused", domain.ErrOracleUnavailable)
	}
	st, ok := p.statuses[reference]
	if !ok {
		st = domain.PaymentStatusSuccess
	}
	return &domain.Verification{Reference: reference, Status: st}, nil
}

func (p *fakeProvider) set(reference string, st domain.PaymentStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses[reference] = st
}

type harness struct {
	client   dreamboxv1.SavingsServiceClient
	conn     *grpc.ClientConn
	provider *fakeProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.NewStore()
	provider := &fakeProvider{statuses: make(map[string]domain.PaymentStatus)}
	logger := zap.NewNop()

	cfg := reconcile.DefaultConfig()
	cfg.RetryBackoff = time.Millisecond
	server := NewServer(
		deposit.NewDepositService(store, store, provider, logger),
		reconcile.NewEngine(store, store, provider, cfg, logger),
		goals.NewGoalService(store, logger),
		dashboard.NewDashboardService(store, store),
		logger,
	)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		ObservabilityInterceptor(logger),
		AuthInterceptor(testToken),
		IdentityInterceptor(),
	))
	dreamboxv1.RegisterSavingsServiceServer(grpcServer, server)
	reflection.Register(grpcServer)

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &harness{client: dreamboxv1.NewSavingsServiceClient(conn), conn: conn, provider: provider}
}

func asOwner(ownerID uuid.UUID) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+testToken,
		OwnerIDKey, ownerID.String(),
		OwnerEmailKey, "ada@example.com",
	)
}

func int32Ptr(v int32) *int32 { return &v }

func TestServer_SafeLockDepositFlow(t *testing.T) {
	h := newHarness(t)
	ctx := asOwner(uuid.New())

	safeLock, err := h.client.CreateSafeLock(ctx, &dreamboxv1.CreateSafeLockRequest{
		Name:                    "New Car",
		TargetAmount:            "5000",
		TargetDate:              timestamppb.New(time.Now().AddDate(1, 0, 0)),
		HasEmergencyFund:        true,
		EmergencyFundPercentage: int32Ptr(20),
		AgreeToLock:             true,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.00", safeLock.CurrentAmount)
	require.NotNil(t, safeLock.EmergencyFundPercentage)
	assert.Equal(t, int32(20), *safeLock.EmergencyFundPercentage)

	created, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{
		Amount:      "100",
		AccountType: "safelock",
		GoalId:      safeLock.Id,
	})
	require.NoError(t, err)
	assert.Contains(t, created.Reference, domain.ReferencePrefix)
	assert.Equal(t, "https://checkout.test/"+created.Reference, created.AuthorizationUrl)

	verified, err := h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
	require.NoError(t, err)
	assert.Equal(t, msgDepositApplied, verified.Message)
	assert.Equal(t, "100.00", verified.Amount)
	assert.Equal(t, "safelock", verified.AccountType)
	assert.False(t, verified.AlreadyProcessed)

	again, err := h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
	require.NoError(t, err)
	assert.Equal(t, "Transaction has already been verified and processed.", again.Message)
	assert.True(t, again.AlreadyProcessed)

	overview, err := h.client.GetOverview(ctx, &dreamboxv1.GetOverviewRequest{})
	require.NoError(t, err)
	require.Len(t, overview.SafeLocks, 1)
	assert.Equal(t, "80.00", overview.SafeLocks[0].CurrentAmount)
	require.NotNil(t, overview.EmergencyFund)
	assert.Equal(t, "20.00", overview.EmergencyFund.Balance)
	assert.Equal(t, int32(20), overview.EmergencyFund.Percentage)
	assert.Nil(t, overview.Flexi)
	assert.Equal(t, "100.00", overview.Total)

	listed, err := h.client.ListSafeLocks(ctx, &dreamboxv1.ListSafeLocksRequest{})
	require.NoError(t, err)
	require.Len(t, listed.SafeLocks, 1)
	assert.Equal(t, safeLock.Id, listed.SafeLocks[0].Id)
}

func TestServer_MyGoals(t *testing.T) {
	h := newHarness(t)
	ctx := asOwner(uuid.New())

	goal, err := h.client.CreateMyGoal(ctx, &dreamboxv1.CreateMyGoalRequest{
		Name:         "Holiday",
		TargetAmount: "1200.50",
		TargetDate:   timestamppb.New(time.Now().AddDate(0, 6, 0)),
	})
	require.NoError(t, err)
	assert.Equal(t, "1200.50", goal.TargetAmount)

	listed, err := h.client.ListMyGoals(ctx, &dreamboxv1.ListMyGoalsRequest{})
	require.NoError(t, err)
	require.Len(t, listed.MyGoals, 1)
	assert.Equal(t, goal.Id, listed.MyGoals[0].Id)

	_, err = h.client.CreateMyGoal(ctx, &dreamboxv1.CreateMyGoalRequest{Name: "No date", TargetAmount: "10"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_FlexiDepositStates(t *testing.T) {
	h := newHarness(t)
	ctx := asOwner(uuid.New())

	created, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{Amount: "30", AccountType: "FLEXI"})
	require.NoError(t, err)

	// Pending at the provider
	h.provider.set(created.Reference, domain.PaymentStatusPending)
	_, err = h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "payment status is pending")

	// Provider unreachable
	h.provider.mu.Lock()
	h.provider.down = true
	h.provider.mu.Unlock()
	_, err = h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	// Recovered and paid
	h.provider.mu.Lock()
	h.provider.down = false
	h.provider.mu.Unlock()
	h.provider.set(created.Reference, domain.PaymentStatusSuccess)
	verified, err := h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
	require.NoError(t, err)
	assert.Equal(t, "flexi", verified.AccountType)

	overview, err := h.client.GetOverview(ctx, &dreamboxv1.GetOverviewRequest{})
	require.NoError(t, err)
	require.NotNil(t, overview.Flexi)
	assert.Equal(t, "30.00", overview.Flexi.Balance)
	assert.Nil(t, overview.EmergencyFund)
}

func TestServer_RequestErrors(t *testing.T) {
	h := newHarness(t)
	ownerID := uuid.New()
	ctx := asOwner(ownerID)

	created, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{Amount: "15", AccountType: "emergency"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		code codes.Code
	}{
		{
			name: "Someone else's reference",
			call: func() error {
				_, err := h.client.VerifyDeposit(asOwner(uuid.New()), &dreamboxv1.VerifyDepositRequest{Reference: created.Reference})
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "Empty reference",
			call: func() error {
				_, err := h.client.VerifyDeposit(ctx, &dreamboxv1.VerifyDepositRequest{})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "Malformed amount",
			call: func() error {
				_, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{Amount: "ten", AccountType: "flexi"})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "Unknown account type",
			call: func() error {
				_, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{Amount: "10", AccountType: "crypto"})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "Safelock with unknown goal",
			call: func() error {
				_, err := h.client.CreateDeposit(ctx, &dreamboxv1.CreateDepositRequest{Amount: "10", AccountType: "safelock", GoalId: uuid.NewString()})
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "Safelock without agreeing to lock",
			call: func() error {
				_, err := h.client.CreateSafeLock(ctx, &dreamboxv1.CreateSafeLockRequest{
					Name: "Rent", TargetAmount: "100", TargetDate: timestamppb.New(time.Now().AddDate(0, 1, 0)),
				})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "Missing token",
			call: func() error {
				md := metadata.AppendToOutgoingContext(context.Background(), OwnerIDKey, ownerID.String())
				_, err := h.client.GetOverview(md, &dreamboxv1.GetOverviewRequest{})
				return err
			},
			code: codes.Unauthenticated,
		},
		{
			name: "Missing owner",
			call: func() error {
				md := metadata.AppendToOutgoingContext(context.Background(), "authorization", testToken)
				_, err := h.client.GetOverview(md, &dreamboxv1.GetOverviewRequest{})
				return err
			},
			code: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(tt.call()))
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("wrapped: %w", domain.ErrInvalidAmount), codes.InvalidArgument},
		{domain.ErrInvalidAccountKind, codes.InvalidArgument},
		{domain.ErrInvalidGoal, codes.InvalidArgument},
		{domain.ErrEmergencySplitNotEnabled, codes.InvalidArgument},
		{domain.ErrGoalNotFound, codes.NotFound},
		{domain.ErrIntentNotFound, codes.NotFound},
		{domain.ErrDuplicateReference, codes.AlreadyExists},
		{domain.ErrPaymentNotConfirmed, codes.FailedPrecondition},
		{domain.ErrAmountMismatch, codes.FailedPrecondition},
		{domain.ErrCheckoutRejected, codes.FailedPrecondition},
		{fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, context.DeadlineExceeded), codes.Unavailable},
		{domain.ErrConcurrentSettlement, codes.Aborted},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{fmt.Errorf("disk on fire"), codes.Internal},
	}

	server := &Server{logger: zap.NewNop()}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(server.mapError(tt.err)))
		})
	}

	assert.NoError(t, server.mapError(nil))
}

func TestMapError_InternalDetailsStayInLog(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invariant violation", fmt.Errorf("%w: goal 42 percent 45", domain.ErrInvariantViolation)},
		{"unknown error", fmt.Errorf("pq: relation \"deposit_intents\" does not exist")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			server := &Server{logger: zap.New(core)}

			st := status.Convert(server.mapError(tt.err))
			assert.Equal(t, codes.Internal, st.Code())
			assert.Equal(t, "internal error", st.Message())
			assert.NotContains(t, st.Message(), tt.err.Error())

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.err.Error(), logs.All()[0].ContextMap()["error"])
		})
	}
}

func TestServer_ReflectionExposesContract(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(h.conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)

	// Reflection is reachable without credentials
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var services []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		services = append(services, svc.GetName())
	}
	assert.Contains(t, services, "dreambox.v1.SavingsService")

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "dreambox.v1.SavingsService",
		},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	fd := &descriptorpb.FileDescriptorProto{}
	require.NoError(t, proto.Unmarshal(files[0], fd))
	assert.Equal(t, "dreambox/v1/dreambox.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)

	var methods []string
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	assert.ElementsMatch(t, []string{
		"CreateDeposit", "VerifyDeposit", "CreateSafeLock", "CreateMyGoal",
		"ListSafeLocks", "ListMyGoals", "GetOverview",
	}, methods)
	require.NoError(t, stream.CloseSend())
}
