package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
)

type ProgressUsecase interface {
	GetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error)
	UpdateLectureProgress(ctx context.Context, userID, courseID, lectureID string, request *requests.UpdateLectureProgress) (*models.CourseProgress, error)
	MarkCourseCompleted(ctx context.Context, userID, courseID string) (*models.CourseProgress, error)
	ResetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error)
}

type ProgressRepository interface {
	CreateProgress(ctx context.Context, progressModel *models.CourseProgress) (progressID string, err error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CourseProgress, error)
	UpdateProgress(ctx context.Context, progressModel *models.CourseProgress) error
}
