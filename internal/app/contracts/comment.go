package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type CommentUsecase interface {
	WriteComment(ctx context.Context, userID string, request *requests.WriteComment) (*models.Comment, error)
	GetLectureComments(ctx context.Context, lectureID string) ([]responses.CommentView, error)
	LikeComment(ctx context.Context, userID string, request *requests.ReactToComment) (*models.Comment, error)
	DislikeComment(ctx context.Context, userID string, request *requests.ReactToComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, commentModel *models.Comment) (commentID string, err error)
	FindByID(ctx context.Context, commentID string) (*models.Comment, error)
	FindByLectureID(ctx context.Context, lectureID string) ([]models.Comment, error)
	DeleteByID(ctx context.Context, commentID string) error
	AdjustReplyCount(ctx context.Context, commentID string, delta int64) error

	// Reaction rows live in the comment_likes and comment_dislikes
	// collections, one row per (commentId, userId).
	FindLike(ctx context.Context, commentID, userID string) (*models.CommentReaction, error)
	FindDislike(ctx context.Context, commentID, userID string) (*models.CommentReaction, error)
	InsertLike(ctx context.Context, commentID, userID string) error
	InsertDislike(ctx context.Context, commentID, userID string) error
	RemoveLike(ctx context.Context, commentID, userID string) error
	RemoveDislike(ctx context.Context, commentID, userID string) error
	AdjustCounters(ctx context.Context, commentID string, likesDelta, dislikesDelta int64) (*models.Comment, error)
	DeleteReactionsByCommentID(ctx context.Context, commentID string) error
}
