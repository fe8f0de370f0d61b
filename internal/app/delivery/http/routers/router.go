package routers

import (
	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	lectureController *controllers.LectureController,
	commentController *controllers.CommentController,
	progressController *controllers.ProgressController,
	paymentController *controllers.PaymentController,
	mediaController *controllers.MediaController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get("/health", healthController.Check)

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/courses", func(r chi.Router) {
			attachCourseRoutes(r, middlewares, courseController, lectureController)
		})

		r.Route("/lectures", func(r chi.Router) {
			attachLectureRoutes(r, middlewares, lectureController)
		})

		r.Route("/comments", func(r chi.Router) {
			attachCommentRoutes(r, middlewares, commentController)
		})

		r.Route("/progress", func(r chi.Router) {
			attachProgressRoutes(r, middlewares, progressController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, internalConfig, middlewares, paymentController)
		})

		r.Route("/media", func(r chi.Router) {
			attachMediaRoutes(r, internalConfig, middlewares, mediaController)
		})
	})
}
