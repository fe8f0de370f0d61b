package routers

import (
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/signup", userController.Signup)
	router.Post("/signin", userController.Signin)
	router.Post("/forgot-password", userController.ForgotPassword)
	router.Post("/reset-password", userController.ResetPassword)

	router.With(middlewares.Authenticate).Post("/signout", userController.Signout)
	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", userController.UpdateProfile)
	router.With(middlewares.Authenticate).Put("/password", userController.ChangePassword)
	router.With(middlewares.Authenticate).Delete("/account", userController.DeleteAccount)
}
