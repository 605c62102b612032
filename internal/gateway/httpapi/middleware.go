package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
)

type ctxKey string

const (
	identityKey ctxKey = "identity"
	tokenKey    ctxKey = "token"
)

// tokenFromRequest pulls the bearer token from the Authorization header.
func tokenFromRequest(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, common.BearerScheme) {
		return strings.TrimPrefix(h, common.BearerScheme)
	}
	return ""
}

// requireAuth is the hard gate for protected routes: no token or a token
// that does not resolve means the handler never runs.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			writeError(w, common.ErrMissingToken)
			return
		}

		user, err := s.cache.GetOrResolve(r.Context(), token)
		if err != nil {
			// a token whose user is gone reads as an auth failure at the
			// edge, not as a missing resource
			if errors.Is(err, common.ErrNotFound) {
				err = common.ErrInvalidToken
			}
			writeError(w, err)
			return
		}

		next(w, r.WithContext(contextWithIdentity(r.Context(), user, token)))
	}
}

// attachAuth is the soft gate: a valid token attaches the caller's identity,
// anything else passes through anonymously. Handlers that need an identity
// check for it themselves.
func (s *Server) attachAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token != "" {
			if user, err := s.cache.GetOrResolve(r.Context(), token); err == nil {
				r = r.WithContext(contextWithIdentity(r.Context(), user, token))
			}
		}
		next(w, r)
	}
}

func contextWithIdentity(ctx context.Context, user *models.PublicUser, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

func identityFromContext(ctx context.Context) *models.PublicUser {
	user, _ := ctx.Value(identityKey).(*models.PublicUser)
	return user
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
