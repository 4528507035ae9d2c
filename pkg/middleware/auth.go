package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

// claimsKey is the unexported context key for verified token claims.
type claimsKey struct{}

// Auth returns a middleware that gates requests on a bearer token.
//
// A missing credential is rejected with 401 "Access Denied"; a credential
// that fails verification is rejected with 400 "Invalid Token". The two
// responses are deliberately the only signals exposed: malformed, forged
// and expired tokens are indistinguishable to the caller. On success the
// decoded claims are stored in the request context.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token := ""
			if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}

			if token == "" {
				response.Error(w, http.StatusUnauthorized, "Access Denied")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				response.Error(w, http.StatusBadRequest, "Invalid Token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromCtx returns the verified claims stored by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}
