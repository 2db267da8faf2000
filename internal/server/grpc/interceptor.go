package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Ping stays open so clients can probe reachability before they have a token.
const pingMethod = "/ancora.AncoraSyncService/Ping"

// authenticate resolves the access token from incoming metadata into a user
// ID and stores it in the context.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, userIDKey, userID), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod != pingMethod {
		authed, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = authed
	}

	return handler(ctx, req)
}

// authedStream overrides the stream context with the authenticated one.
type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
}

// userIDFromContext returns the user set by the auth interceptors.
func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "no user in context")
	}
	return userID, nil
}
