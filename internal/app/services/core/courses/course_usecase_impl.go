package courses

import (
	"context"
	"time"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const publishedCoursesCacheExpiry = 5 * time.Minute

type courseUsecase struct {
	CourseRepository  contracts.CourseRepository
	LectureRepository contracts.LectureRepository
	RedisRepository   contracts.RedisRepository
	Log               *zap.Logger
}

func NewCourseUsecase(
	courseMongoRepository contracts.CourseRepository,
	lectureMongoRepository contracts.LectureRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.CourseUsecase {
	return &courseUsecase{
		CourseRepository:  courseMongoRepository,
		LectureRepository: lectureMongoRepository,
		RedisRepository:   redisRepository,
		Log:               logger,
	}
}

func (uc *courseUsecase) CreateCourse(ctx context.Context, instructorID string, request *requests.CreateCourse) (*models.Course, error) {
	slug := utils.Slugify(request.Title)

	// Slug doubles as the uniqueness key for course titles
	existingCourse, err := uc.CourseRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existingCourse != nil {
		return nil, exceptions.ErrCourseAlreadyExists(nil)
	}

	level := models.CourseLevel(request.Level)
	if request.Level == "" {
		level = models.CourseLevelBeginner
	}

	courseModel := &models.Course{
		Slug:         slug,
		Title:        request.Title,
		Subtitle:     request.Subtitle,
		Description:  request.Description,
		Category:     request.Category,
		Level:        level,
		Price:        request.Price,
		Thumbnail:    request.Thumbnail,
		InstructorID: instructorID,
		LectureIDs:   []string{},
	}
	courseID, err := uc.CourseRepository.CreateCourse(ctx, courseModel)
	if err != nil {
		return nil, err
	}
	courseModel.ID = courseID
	return courseModel, nil
}

func (uc *courseUsecase) UpdateCourse(ctx context.Context, instructorID, courseID string, request *requests.UpdateCourse) (*models.Course, error) {
	existingCourse, err := uc.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		existingCourse.Title = *request.Title
		existingCourse.Slug = utils.Slugify(*request.Title)
	}
	if request.Subtitle != nil {
		existingCourse.Subtitle = *request.Subtitle
	}
	if request.Description != nil {
		existingCourse.Description = *request.Description
	}
	if request.Category != nil {
		existingCourse.Category = *request.Category
	}
	if request.Level != nil {
		existingCourse.Level = models.CourseLevel(*request.Level)
	}
	if request.Price != nil {
		existingCourse.Price = *request.Price
	}
	if request.Thumbnail != nil {
		existingCourse.Thumbnail = *request.Thumbnail
	}
	if request.IsPublished != nil {
		existingCourse.IsPublished = *request.IsPublished
	}

	err = uc.CourseRepository.UpdateCourse(ctx, existingCourse)
	if err != nil {
		return nil, err
	}
	uc.invalidatePublishedCoursesCache(ctx)
	return existingCourse, nil
}

func (uc *courseUsecase) TogglePublish(ctx context.Context, instructorID, courseID string) (*models.Course, error) {
	existingCourse, err := uc.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return nil, err
	}

	existingCourse.IsPublished = !existingCourse.IsPublished
	err = uc.CourseRepository.UpdateCourse(ctx, existingCourse)
	if err != nil {
		return nil, err
	}
	uc.invalidatePublishedCoursesCache(ctx)
	return existingCourse, nil
}

func (uc *courseUsecase) DeleteCourse(ctx context.Context, instructorID, courseID string) error {
	existingCourse, err := uc.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return err
	}

	err = uc.CourseRepository.DeleteByID(ctx, existingCourse.ID)
	if err != nil {
		return err
	}
	uc.invalidatePublishedCoursesCache(ctx)
	return nil
}

func (uc *courseUsecase) GetPublishedCourses(ctx context.Context) ([]models.Course, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisPublishedCourses)
	if err == nil && cached != "" {
		var courses []models.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses, nil
		}
		// A poisoned cache entry falls through to the database read
		uc.Log.Warn("courseUsecase.GetPublishedCourses cache entry unreadable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	courses, err := uc.CourseRepository.FindPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisPublishedCourses, courses, publishedCoursesCacheExpiry); err != nil {
		// Serving from the database still succeeds when the cache is down
		uc.Log.Warn("courseUsecase.GetPublishedCourses failed to prime cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return courses, nil
}

func (uc *courseUsecase) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	if query == "" {
		return uc.GetPublishedCourses(ctx)
	}
	return uc.CourseRepository.SearchPublished(ctx, query)
}

func (uc *courseUsecase) GetCourseBySlug(ctx context.Context, slug string) (*responses.CourseLectures, error) {
	existingCourse, err := uc.CourseRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, exceptions.ErrCourseNotFound(nil)
	}

	lectures, err := uc.LectureRepository.FindByIDs(ctx, existingCourse.LectureIDs)
	if err != nil {
		return nil, err
	}
	return &responses.CourseLectures{
		CourseID: existingCourse.ID,
		Lectures: lectures,
	}, nil
}

func (uc *courseUsecase) GetInstructorCourses(ctx context.Context, instructorID string) ([]models.Course, error) {
	return uc.CourseRepository.FindByInstructorID(ctx, instructorID)
}

func (uc *courseUsecase) findOwnedCourse(ctx context.Context, instructorID, courseID string) (*models.Course, error) {
	existingCourse, err := uc.CourseRepository.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, exceptions.ErrCourseNotFound(nil)
	}
	if existingCourse.InstructorID != instructorID {
		return nil, exceptions.ErrNotCourseOwner(nil)
	}
	return existingCourse, nil
}

func (uc *courseUsecase) invalidatePublishedCoursesCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisPublishedCourses); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("courseUsecase failed to invalidate published courses cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
