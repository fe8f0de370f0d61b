package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
)

type LectureUsecase interface {
	AddLecture(ctx context.Context, instructorID, courseID string, request *requests.AddLecture) (*models.Lecture, error)
	GetLectureDetails(ctx context.Context, lectureID string) (*models.Lecture, error)
	GetCourseLectures(ctx context.Context, courseID string) ([]models.Lecture, error)
	DeleteLecture(ctx context.Context, instructorID, lectureID string) error
}

type LectureRepository interface {
	CreateLecture(ctx context.Context, lectureModel *models.Lecture) (lectureID string, err error)
	FindByID(ctx context.Context, lectureID string) (*models.Lecture, error)
	FindByCourseID(ctx context.Context, courseID string) ([]models.Lecture, error)
	FindByIDs(ctx context.Context, lectureIDs []string) ([]models.Lecture, error)
	UpdateLecture(ctx context.Context, lectureModel *models.Lecture) error
	DeleteByID(ctx context.Context, lectureID string) error
}
