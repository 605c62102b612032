package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/grpcerr"
	"github.com/dmitrijs2005/taskmesh/internal/identity/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods lists the full method names that require a verified
// access token before the handler runs.
var protectedMethods = map[string]bool{
	"/taskmesh.service.IdentityService/Me": true,
}

// accessTokenInterceptor guards the protected methods: it pulls the token
// from the "access_token" metadata entry, verifies it, and stores the user
// id in the context for the handler.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, grpcerr.ToStatus(common.ErrMissingToken)
		}

		claims, err := auth.VerifyToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, grpcerr.ToStatus(err)
		}

		ctx = context.WithValue(ctx, userIDKey, claims.Subject)
	}

	return handler(ctx, req)
}

// userIDFromContext returns the user id stored by the interceptor, or ""
// when the method was not guarded.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
