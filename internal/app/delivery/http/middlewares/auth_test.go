package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"
)

type sessionServiceStub struct {
	sessions map[string]*models.Session
}

func (s *sessionServiceStub) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	if _, ok := s.sessions[sessionID]; !ok {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionID, nil
}

func (s *sessionServiceStub) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session, ok := s.sessions[sessionData]
	if !ok {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func TestAuthenticate(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-jwt-secret"

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = jwtSecret

	sessionService := &sessionServiceStub{
		sessions: map[string]*models.Session{
			"session-1": {
				ID:     "session-1",
				UserID: "user-1",
				Email:  "asha@example.com",
				Role:   models.RoleStudent,
			},
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
		assert.True(t, ok, "user ID should be set in context")
		assert.Equal(t, "user-1", userID, "user ID should come from the session")

		role, ok := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
		assert.True(t, ok, "role should be set in context")
		assert.Equal(t, string(models.RoleStudent), role, "role should come from the session")

		sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		assert.True(t, ok, "session ID should be set in context")
		assert.Equal(t, "session-1", sessionID, "session ID should come from the token")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-1", jwtSecret, time.Hour)
		assert.NoError(t, err, "generating the test token should not fail")

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a valid token")
		assert.Equal(t, "success", rr.Body.String(), "should reach the wrapped handler")
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 when the header is absent")
	})

	t.Run("Malformed Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for a garbage token")
	})

	t.Run("Token Signed With Wrong Secret", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-1", "some-other-secret", time.Hour)
		assert.NoError(t, err, "generating the test token should not fail")

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for a token with a bad signature")
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-1", jwtSecret, -time.Minute)
		assert.NoError(t, err, "generating the test token should not fail")

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for an expired token")
	})

	t.Run("Session Not In Store", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-gone", jwtSecret, time.Hour)
		assert.NoError(t, err, "generating the test token should not fail")

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 when the session no longer exists")
	})
}
