package routers

import (
	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	// The webhook is unauthenticated so it carries its own per-IP limiter
	// on top of the global one.
	webhookLimiter := middlewares.NewWebhookRateLimiter(
		internalConfig.App.WebhookMaxRequestsPerSecond,
		internalConfig.App.WebhookBurst,
		time.Minute,
	)
	router.With(webhookLimiter.Limit).Post("/webhook", paymentController.HandleWebhook)

	router.With(middlewares.Authenticate).Post("/checkout", paymentController.InitiateCheckout)
	router.With(middlewares.Authenticate).Post("/verify-session", paymentController.VerifySession)
	router.With(middlewares.Authenticate).Get("/status/{courseId}", paymentController.GetPurchaseStatus)
	router.With(middlewares.Authenticate).Get("/purchased-courses", paymentController.GetPurchasedCourses)
	router.With(middlewares.Authenticate).Post("/refund", paymentController.ProcessRefund)
}
