package middlewares

import (
	"context"
	"net/http"
	"strings"

	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a redis-backed session and puts
// the caller's identity on the request context.
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
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, session.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, string(session.Role))
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
