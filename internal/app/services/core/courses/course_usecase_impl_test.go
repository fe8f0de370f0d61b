package courses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
)

type redisRepoStub struct {
	values  map[string]string
	getErr  error
	setErr  error
	deletes []string
}

func (s *redisRepoStub) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *redisRepoStub) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = string(raw)
	return nil
}

func (s *redisRepoStub) Delete(ctx context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	delete(s.values, key)
	return nil
}

type courseRepoStub struct {
	courses        map[string]*models.Course
	publishedCalls int
}

func (s *courseRepoStub) CreateCourse(ctx context.Context, courseModel *models.Course) (string, error) {
	courseModel.ID = "course-new"
	s.courses[courseModel.ID] = courseModel
	return courseModel.ID, nil
}

func (s *courseRepoStub) FindByID(ctx context.Context, courseID string) (*models.Course, error) {
	return s.courses[courseID], nil
}

func (s *courseRepoStub) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	for _, course := range s.courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return nil, nil
}

func (s *courseRepoStub) FindPublished(ctx context.Context) ([]models.Course, error) {
	s.publishedCalls++
	var published []models.Course
	for _, course := range s.courses {
		if course.IsPublished {
			published = append(published, *course)
		}
	}
	return published, nil
}

func (s *courseRepoStub) SearchPublished(ctx context.Context, query string) ([]models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) FindByInstructorID(ctx context.Context, instructorID string) ([]models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) UpdateCourse(ctx context.Context, courseModel *models.Course) error {
	s.courses[courseModel.ID] = courseModel
	return nil
}

func (s *courseRepoStub) DeleteByID(ctx context.Context, courseID string) error {
	delete(s.courses, courseID)
	return nil
}

type lectureRepoStub struct{}

func (s *lectureRepoStub) CreateLecture(ctx context.Context, lectureModel *models.Lecture) (string, error) {
	return "", nil
}

func (s *lectureRepoStub) FindByID(ctx context.Context, lectureID string) (*models.Lecture, error) {
	return nil, nil
}

func (s *lectureRepoStub) FindByCourseID(ctx context.Context, courseID string) ([]models.Lecture, error) {
	return nil, nil
}

func (s *lectureRepoStub) FindByIDs(ctx context.Context, lectureIDs []string) ([]models.Lecture, error) {
	lectures := make([]models.Lecture, 0, len(lectureIDs))
	for _, id := range lectureIDs {
		lectures = append(lectures, models.Lecture{ID: id})
	}
	return lectures, nil
}

func (s *lectureRepoStub) UpdateLecture(ctx context.Context, lectureModel *models.Lecture) error {
	return nil
}

func (s *lectureRepoStub) DeleteByID(ctx context.Context, lectureID string) error {
	return nil
}

func newTestUsecase() (*courseUsecase, *courseRepoStub, *redisRepoStub) {
	courseRepo := &courseRepoStub{courses: map[string]*models.Course{
		"course-1": {
			ID:           "course-1",
			Slug:         "intro-to-go",
			Title:        "Intro to Go",
			InstructorID: "instructor-1",
			IsPublished:  true,
			LectureIDs:   []string{"lecture-1"},
		},
	}}
	redisRepo := &redisRepoStub{values: map[string]string{}}
	uc := &courseUsecase{
		CourseRepository:  courseRepo,
		LectureRepository: &lectureRepoStub{},
		RedisRepository:   redisRepo,
		Log:               zap.NewNop(),
	}
	return uc, courseRepo, redisRepo
}

func TestGetPublishedCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Hit Skips Database", func(t *testing.T) {
		uc, courseRepo, redisRepo := newTestUsecase()
		cached, _ := json.Marshal([]models.Course{{ID: "course-cached"}})
		redisRepo.values[constvars.RedisPublishedCourses] = string(cached)

		result, err := uc.GetPublishedCourses(ctx)
		assert.NoError(t, err, "Cache hit should not fail")
		assert.Equal(t, "course-cached", result[0].ID, "The cached list should be served")
		assert.Equal(t, 0, courseRepo.publishedCalls, "The database should not be read on a cache hit")
	})

	t.Run("Poisoned Cache Entry Falls Through To Database", func(t *testing.T) {
		uc, courseRepo, redisRepo := newTestUsecase()
		redisRepo.values[constvars.RedisPublishedCourses] = "{not json"

		result, err := uc.GetPublishedCourses(ctx)
		assert.NoError(t, err, "An unreadable cache entry should not fail the read")
		assert.Len(t, result, 1, "The database list should be served instead")
		assert.Equal(t, 1, courseRepo.publishedCalls, "The database should be read")
	})

	t.Run("Cache Down Still Serves Database", func(t *testing.T) {
		uc, courseRepo, redisRepo := newTestUsecase()
		redisRepo.getErr = errors.New("connection refused")
		redisRepo.setErr = errors.New("connection refused")

		result, err := uc.GetPublishedCourses(ctx)
		assert.NoError(t, err, "A cache outage should not fail the read")
		assert.Len(t, result, 1, "The database list should be served")
		assert.Equal(t, 1, courseRepo.publishedCalls, "The database should be read")
	})

	t.Run("Database Read Primes Cache", func(t *testing.T) {
		uc, _, redisRepo := newTestUsecase()

		_, err := uc.GetPublishedCourses(ctx)
		assert.NoError(t, err, "The read should not fail")
		assert.NotEmpty(t, redisRepo.values[constvars.RedisPublishedCourses], "The list should be cached after a database read")
	})
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate Title Rejected", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.CreateCourse(ctx, "instructor-1", &requests.CreateCourse{Title: "Intro to Go"})
		assert.Error(t, err, "A title slugging to an existing slug should be rejected")
	})

	t.Run("New Course Slugged From Title", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		result, err := uc.CreateCourse(ctx, "instructor-1", &requests.CreateCourse{Title: "Advanced Concurrency Patterns"})
		assert.NoError(t, err, "Creating a new course should not fail")
		assert.Equal(t, "advanced-concurrency-patterns", result.Slug, "The slug should be derived from the title")
		assert.Equal(t, models.CourseLevelBeginner, result.Level, "The level should default to beginner")
	})
}

func TestTogglePublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Toggle Invalidates Cache", func(t *testing.T) {
		uc, _, redisRepo := newTestUsecase()

		result, err := uc.TogglePublish(ctx, "instructor-1", "course-1")
		assert.NoError(t, err, "Toggling publish state should not fail")
		assert.False(t, result.IsPublished, "A published course should be unpublished")
		assert.Contains(t, redisRepo.deletes, constvars.RedisPublishedCourses, "The published list cache should be invalidated")
	})

	t.Run("Foreign Course Rejected", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.TogglePublish(ctx, "instructor-2", "course-1")
		assert.Error(t, err, "Only the owner should be able to toggle publish state")
	})
}
