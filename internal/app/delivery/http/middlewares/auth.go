package middlewares

import (
	"context"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate guards the caller-facing payment endpoints. The gateway-facing
// notification and redirect endpoints stay public; their trust comes from the
// HMAC signature, not from a bearer token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
