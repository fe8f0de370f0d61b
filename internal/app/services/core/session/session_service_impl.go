package session

import (
	"context"
	"fmt"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
	if err != nil {
		return "", exceptions.ErrInvalidSession(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionData, nil
}
