package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Metadata keys set by the upstream gateway after it authenticates the user
const (
	OwnerIDKey    = "x-owner-id"
	OwnerEmailKey = "x-owner-email"
)

// Owner is the authenticated caller
type Owner struct {
	ID    uuid.UUID
	Email string
}

type ownerContextKey struct{}

// healthServicePrefix marks the standard health service, open to probes without credentials
const healthServicePrefix = "/grpc.health.v1."

func isHealthCheck(info *grpc.UnaryServerInfo) bool {
	return strings.HasPrefix(info.FullMethod, healthServicePrefix)
}

// WithOwner returns a context carrying owner
func WithOwner(ctx context.Context, owner Owner) context.Context {
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

func ownerFromContext(ctx context.Context) (Owner, error) {
	owner, ok := ctx.Value(ownerContextKey{}).(Owner)
	if !ok {
		return Owner{}, status.Error(codes.Unauthenticated, "missing owner identity")
	}
	return owner, nil
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// If the token is missing or invalid, it returns status.Unauthenticated.
// If valid, it calls the handler with the original context.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if isHealthCheck(info) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		token := strings.TrimPrefix(authHeaders[0], "Bearer ")
		if token != validToken {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// IdentityInterceptor returns a gRPC unary server interceptor that reads the
// owner identity from request metadata and stores it in the context.
// A missing or malformed owner id is rejected with status.Unauthenticated.
func IdentityInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if isHealthCheck(info) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		ids := md.Get(OwnerIDKey)
		if len(ids) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing owner identity")
		}
		ownerID, err := uuid.Parse(ids[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid owner identity")
		}

		owner := Owner{ID: ownerID}
		if emails := md.Get(OwnerEmailKey); len(emails) > 0 {
			owner.Email = emails[0]
		}

		return handler(WithOwner(ctx, owner), req)
	}
}

// ObservabilityInterceptor returns a gRPC unary server interceptor that logs
// every call and records request count and latency per method and code.
func ObservabilityInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		requestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		requestDuration.WithLabelValues(info.FullMethod).Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", elapsed),
		}
		switch code {
		case codes.OK:
			logger.Info("grpc call", fields...)
		case codes.Internal, codes.Unknown:
			logger.Error("grpc call failed", append(fields, zap.Error(err))...)
		default:
			logger.Warn("grpc call failed", append(fields, zap.Error(err))...)
		}

		return resp, err
	}
}
