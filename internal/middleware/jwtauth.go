package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avyukov/itemdash/internal/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Principal is the identity carried by a verified session token.
type Principal struct {
	UserID   int
	Username string
}

// JWTAuth is a middleware that requires a valid Bearer token on each request.
//
// It reads the Authorization header, verifies the token against the given
// secret, and stores the token's principal in the request context. Requests
// with a missing, malformed, expired, or otherwise invalid token get a
// 401 response.
func JWTAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w)
				return
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				unauthorized(w)
				return
			}

			principal := &Principal{UserID: claims.UserID, Username: claims.Username}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the authenticated principal from the request
// context. Returns false if the request did not pass through JWTAuth.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
}
