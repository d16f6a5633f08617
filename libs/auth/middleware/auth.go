package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/studyloop/backend/libs/auth/service"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	messageMissingToken = "Token não fornecido"
	messageInvalidToken = "Token inválido"
)

// TokenValidator verifies a raw token string and returns its claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// Identity is the authenticated caller attached to the request context
type Identity struct {
	UserID   int64
	Username string
}

// AuthMiddleware validates the bearer token and attaches the caller identity to the request context.
//
// A request without an Authorization header is rejected with 401.
// A header that does not carry a verifiable token is rejected with 403.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, messageMissingToken)
				return
			}

			// Expected format: "Bearer <token>"
			var token string
			parts := strings.Fields(authHeader)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, messageInvalidToken)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID, Username: claims.Username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity returns a copy of ctx carrying identity
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the caller identity from context
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentity(ctx)
	return identity.UserID, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + message + `"}`))
}
