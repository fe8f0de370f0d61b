package routers

import (
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProgressRoutes(router chi.Router, middlewares *middlewares.Middlewares, progressController *controllers.ProgressController) {
	router.With(middlewares.Authenticate).Get("/{courseId}", progressController.GetCourseProgress)
	router.With(middlewares.Authenticate).Put("/{courseId}/lectures/{lectureId}", progressController.UpdateLectureProgress)
	router.With(middlewares.Authenticate).Put("/{courseId}/complete", progressController.MarkCourseCompleted)
	router.With(middlewares.Authenticate).Delete("/{courseId}", progressController.ResetCourseProgress)
}
