package middlewares

import (
	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
