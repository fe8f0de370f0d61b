package routers

import (
	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachMediaRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, mediaController *controllers.MediaController) {
	webhookLimiter := middlewares.NewWebhookRateLimiter(
		internalConfig.App.WebhookMaxRequestsPerSecond,
		internalConfig.App.WebhookBurst,
		time.Minute,
	)
	router.With(webhookLimiter.Limit).Post("/webhook", mediaController.HandleUploadWebhook)

	router.With(middlewares.Authenticate).Post("/upload-url", mediaController.CreateUploadURL)
	router.With(middlewares.Authenticate).Post("/verify-upload", mediaController.VerifyUpload)
}
