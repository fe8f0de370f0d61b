package routers

import (
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCourseRoutes(router chi.Router, middlewares *middlewares.Middlewares, courseController *controllers.CourseController, lectureController *controllers.LectureController) {
	router.Get("/", courseController.GetPublishedCourses)
	router.Get("/search", courseController.SearchCourses)
	router.Get("/{slug}", courseController.GetCourseBySlug)

	router.With(middlewares.Authenticate).Post("/", courseController.CreateCourse)
	router.With(middlewares.Authenticate).Get("/instructor", courseController.GetInstructorCourses)
	router.With(middlewares.Authenticate).Patch("/{courseId}", courseController.UpdateCourse)
	router.With(middlewares.Authenticate).Patch("/{courseId}/publish", courseController.TogglePublish)
	router.With(middlewares.Authenticate).Delete("/{courseId}", courseController.DeleteCourse)

	router.Get("/{courseId}/lectures", lectureController.GetCourseLectures)
	router.With(middlewares.Authenticate).Post("/{courseId}/lectures", lectureController.AddLecture)
}
