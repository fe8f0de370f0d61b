package comments

import (
	"context"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"
)

type commentUsecase struct {
	CommentRepository contracts.CommentRepository
	LectureRepository contracts.LectureRepository
	UserRepository    contracts.UserRepository
}

func NewCommentUsecase(
	commentMongoRepository contracts.CommentRepository,
	lectureMongoRepository contracts.LectureRepository,
	userMongoRepository contracts.UserRepository,
) contracts.CommentUsecase {
	return &commentUsecase{
		CommentRepository: commentMongoRepository,
		LectureRepository: lectureMongoRepository,
		UserRepository:    userMongoRepository,
	}
}

func (uc *commentUsecase) WriteComment(ctx context.Context, userID string, request *requests.WriteComment) (*models.Comment, error) {
	existingLecture, err := uc.LectureRepository.FindByID(ctx, request.LectureID)
	if err != nil {
		return nil, err
	}
	if existingLecture == nil {
		return nil, exceptions.ErrLectureNotFound(nil)
	}

	if request.ParentCommentID != "" {
		parentComment, err := uc.CommentRepository.FindByID(ctx, request.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parentComment == nil {
			return nil, exceptions.ErrParentCommentNotFound(nil)
		}
	}

	commentModel := &models.Comment{
		LectureID:       request.LectureID,
		UserID:          userID,
		Content:         request.Content,
		ParentCommentID: request.ParentCommentID,
	}
	commentID, err := uc.CommentRepository.CreateComment(ctx, commentModel)
	if err != nil {
		return nil, err
	}
	commentModel.ID = commentID

	if commentModel.ParentCommentID != "" {
		if err := uc.CommentRepository.AdjustReplyCount(ctx, commentModel.ParentCommentID, 1); err != nil {
			return nil, err
		}
	}
	return commentModel, nil
}

func (uc *commentUsecase) GetLectureComments(ctx context.Context, lectureID string) ([]responses.CommentView, error) {
	existingLecture, err := uc.LectureRepository.FindByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if existingLecture == nil {
		return nil, exceptions.ErrLectureNotFound(nil)
	}

	comments, err := uc.CommentRepository.FindByLectureID(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	views := make([]responses.CommentView, 0, len(comments))
	for _, comment := range comments {
		view := responses.CommentView{Comment: comment}
		author, err := uc.UserRepository.FindByID(ctx, comment.UserID)
		if err == nil && author != nil {
			view.AuthorName = author.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// LikeComment runs the reaction toggle: an existing like toggles off, an
// existing dislike is switched over, otherwise a fresh like lands. Counter
// deltas from both row changes go through a single AdjustCounters call.
func (uc *commentUsecase) LikeComment(ctx context.Context, userID string, request *requests.ReactToComment) (*models.Comment, error) {
	existingComment, err := uc.CommentRepository.FindByID(ctx, request.CommentID)
	if err != nil {
		return nil, err
	}
	if existingComment == nil {
		return nil, exceptions.ErrCommentNotFound(nil)
	}

	existingLike, err := uc.CommentRepository.FindLike(ctx, request.CommentID, userID)
	if err != nil {
		return nil, err
	}
	if existingLike != nil {
		if err := uc.CommentRepository.RemoveLike(ctx, request.CommentID, userID); err != nil {
			return nil, err
		}
		return uc.CommentRepository.AdjustCounters(ctx, request.CommentID, -1, 0)
	}

	var dislikesDelta int64
	existingDislike, err := uc.CommentRepository.FindDislike(ctx, request.CommentID, userID)
	if err != nil {
		return nil, err
	}
	if existingDislike != nil {
		if err := uc.CommentRepository.RemoveDislike(ctx, request.CommentID, userID); err != nil {
			return nil, err
		}
		dislikesDelta = -1
	}

	if err := uc.CommentRepository.InsertLike(ctx, request.CommentID, userID); err != nil {
		return nil, err
	}
	return uc.CommentRepository.AdjustCounters(ctx, request.CommentID, 1, dislikesDelta)
}

// DislikeComment mirrors LikeComment with the roles of the two reaction
// collections swapped.
func (uc *commentUsecase) DislikeComment(ctx context.Context, userID string, request *requests.ReactToComment) (*models.Comment, error) {
	existingComment, err := uc.CommentRepository.FindByID(ctx, request.CommentID)
	if err != nil {
		return nil, err
	}
	if existingComment == nil {
		return nil, exceptions.ErrCommentNotFound(nil)
	}

	existingDislike, err := uc.CommentRepository.FindDislike(ctx, request.CommentID, userID)
	if err != nil {
		return nil, err
	}
	if existingDislike != nil {
		if err := uc.CommentRepository.RemoveDislike(ctx, request.CommentID, userID); err != nil {
			return nil, err
		}
		return uc.CommentRepository.AdjustCounters(ctx, request.CommentID, 0, -1)
	}

	var likesDelta int64
	existingLike, err := uc.CommentRepository.FindLike(ctx, request.CommentID, userID)
	if err != nil {
		return nil, err
	}
	if existingLike != nil {
		if err := uc.CommentRepository.RemoveLike(ctx, request.CommentID, userID); err != nil {
			return nil, err
		}
		likesDelta = -1
	}

	if err := uc.CommentRepository.InsertDislike(ctx, request.CommentID, userID); err != nil {
		return nil, err
	}
	return uc.CommentRepository.AdjustCounters(ctx, request.CommentID, likesDelta, 1)
}

func (uc *commentUsecase) DeleteComment(ctx context.Context, userID, commentID string) error {
	existingComment, err := uc.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if existingComment == nil {
		return exceptions.ErrCommentNotFound(nil)
	}
	if existingComment.UserID != userID {
		return exceptions.ErrNotCommentOwner(nil)
	}

	if err := uc.CommentRepository.DeleteReactionsByCommentID(ctx, commentID); err != nil {
		return err
	}
	if err := uc.CommentRepository.DeleteByID(ctx, commentID); err != nil {
		return err
	}
	if existingComment.ParentCommentID != "" {
		return uc.CommentRepository.AdjustReplyCount(ctx, existingComment.ParentCommentID, -1)
	}
	return nil
}
