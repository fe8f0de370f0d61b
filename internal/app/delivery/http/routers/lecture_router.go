package routers

import (
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLectureRoutes(router chi.Router, middlewares *middlewares.Middlewares, lectureController *controllers.LectureController) {
	router.With(middlewares.Authenticate).Get("/{lectureId}", lectureController.GetLecture)
	router.With(middlewares.Authenticate).Delete("/{lectureId}", lectureController.DeleteLecture)
}
