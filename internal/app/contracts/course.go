package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type CourseUsecase interface {
	CreateCourse(ctx context.Context, instructorID string, request *requests.CreateCourse) (*models.Course, error)
	UpdateCourse(ctx context.Context, instructorID, courseID string, request *requests.UpdateCourse) (*models.Course, error)
	TogglePublish(ctx context.Context, instructorID, courseID string) (*models.Course, error)
	DeleteCourse(ctx context.Context, instructorID, courseID string) error
	GetPublishedCourses(ctx context.Context) ([]models.Course, error)
	SearchCourses(ctx context.Context, query string) ([]models.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*responses.CourseLectures, error)
	GetInstructorCourses(ctx context.Context, instructorID string) ([]models.Course, error)
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, courseModel *models.Course) (courseID string, err error)
	FindByID(ctx context.Context, courseID string) (*models.Course, error)
	FindBySlug(ctx context.Context, slug string) (*models.Course, error)
	FindPublished(ctx context.Context) ([]models.Course, error)
	SearchPublished(ctx context.Context, query string) ([]models.Course, error)
	FindByInstructorID(ctx context.Context, instructorID string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, courseModel *models.Course) error
	DeleteByID(ctx context.Context, courseID string) error
}
