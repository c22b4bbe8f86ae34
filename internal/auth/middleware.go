package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// TokenHeader carries the bearer token on protected requests.
const TokenHeader = "x-auth-token"

const (
	missingTokenResponse = "Missing token, authorization denied!"
	invalidTokenResponse = "Token expired!"
)

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID int64
}

type contextKey string

// identityKey is the context key for the authenticated identity.
const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity stored by the gate, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Middleware creates a middleware for protecting routes. A request without a
// token is rejected with 401 and one with a token that fails verification
// with 400; neither reaches next.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := strings.TrimSpace(r.Header.Get(TokenHeader))
			if tokenStr == "" {
				log.Warn().Str("path", r.URL.Path).Msg("Rejected request without auth token")
				reject(w, http.StatusUnauthorized, missingTokenResponse)
				return
			}

			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Rejected request with invalid auth token")
				reject(w, http.StatusBadRequest, invalidTokenResponse)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, status int, response string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  false,
		"response": response,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode auth rejection")
	}
}
