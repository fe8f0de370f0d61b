package routers

import (
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCommentRoutes(router chi.Router, middlewares *middlewares.Middlewares, commentController *controllers.CommentController) {
	router.Get("/lecture/{lectureId}", commentController.GetLectureComments)

	router.With(middlewares.Authenticate).Post("/", commentController.WriteComment)
	router.With(middlewares.Authenticate).Post("/like", commentController.LikeComment)
	router.With(middlewares.Authenticate).Post("/dislike", commentController.DislikeComment)
	router.With(middlewares.Authenticate).Delete("/{commentId}", commentController.DeleteComment)
}
