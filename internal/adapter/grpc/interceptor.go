package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type actorKey struct{}

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
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if authHeaders[0] != validToken {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// IdentityInterceptor returns a gRPC unary server interceptor that
// lifts the acting user's ID from the x-actor-id metadata header into
// the context. Requests without the header pass through; operations
// that require an actor reject them downstream.
func IdentityInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		actorHeaders := md.Get("x-actor-id")
		if len(actorHeaders) == 0 {
			return handler(ctx, req)
		}

		actorID, err := uuid.Parse(actorHeaders[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid x-actor-id")
		}

		return handler(context.WithValue(ctx, actorKey{}, actorID), req)
	}
}

// ContextIdentity implements domain.IdentityProvider over the actor ID
// stored in the context by IdentityInterceptor.
type ContextIdentity struct{}

// CurrentUserID returns the acting user's ID from the context.
func (ContextIdentity) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	actorID, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return actorID, ok
}

// WithActor returns a context carrying the given actor ID. Useful for
// tests and for callers not fronted by the gRPC interceptor.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}
