package lectures

import (
	"context"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"
)

type lectureUsecase struct {
	LectureRepository contracts.LectureRepository
	CourseRepository  contracts.CourseRepository
}

func NewLectureUsecase(
	lectureMongoRepository contracts.LectureRepository,
	courseMongoRepository contracts.CourseRepository,
) contracts.LectureUsecase {
	return &lectureUsecase{
		LectureRepository: lectureMongoRepository,
		CourseRepository:  courseMongoRepository,
	}
}

func (uc *lectureUsecase) AddLecture(ctx context.Context, instructorID, courseID string, request *requests.AddLecture) (*models.Lecture, error) {
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

	slug := utils.Slugify(request.Title)
	existingLectures, err := uc.LectureRepository.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for _, lecture := range existingLectures {
		if lecture.Slug == slug {
			return nil, exceptions.ErrLectureAlreadyExists(nil)
		}
	}

	order := request.Order
	if order == 0 {
		order = len(existingLectures) + 1
	}

	lectureModel := &models.Lecture{
		CourseID:    courseID,
		Slug:        slug,
		Title:       request.Title,
		Description: request.Description,
		VideoURL:    request.VideoURL,
		PublicID:    request.PublicID,
		Order:       order,
	}
	lectureID, err := uc.LectureRepository.CreateLecture(ctx, lectureModel)
	if err != nil {
		return nil, err
	}
	lectureModel.ID = lectureID

	// The course document carries the lecture id list and a denormalized count
	existingCourse.LectureIDs = append(existingCourse.LectureIDs, lectureID)
	existingCourse.TotalLectures = len(existingCourse.LectureIDs)
	if err := uc.CourseRepository.UpdateCourse(ctx, existingCourse); err != nil {
		return nil, err
	}

	return lectureModel, nil
}

func (uc *lectureUsecase) GetLectureDetails(ctx context.Context, lectureID string) (*models.Lecture, error) {
	existingLecture, err := uc.LectureRepository.FindByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if existingLecture == nil {
		return nil, exceptions.ErrLectureNotFound(nil)
	}
	return existingLecture, nil
}

func (uc *lectureUsecase) GetCourseLectures(ctx context.Context, courseID string) ([]models.Lecture, error) {
	existingCourse, err := uc.CourseRepository.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, exceptions.ErrCourseNotFound(nil)
	}
	return uc.LectureRepository.FindByCourseID(ctx, courseID)
}

func (uc *lectureUsecase) DeleteLecture(ctx context.Context, instructorID, lectureID string) error {
	existingLecture, err := uc.LectureRepository.FindByID(ctx, lectureID)
	if err != nil {
		return err
	}
	if existingLecture == nil {
		return exceptions.ErrLectureNotFound(nil)
	}

	existingCourse, err := uc.CourseRepository.FindByID(ctx, existingLecture.CourseID)
	if err != nil {
		return err
	}
	if existingCourse == nil {
		return exceptions.ErrCourseNotFound(nil)
	}
	if existingCourse.InstructorID != instructorID {
		return exceptions.ErrNotCourseOwner(nil)
	}

	if err := uc.LectureRepository.DeleteByID(ctx, lectureID); err != nil {
		return err
	}

	remaining := existingCourse.LectureIDs[:0]
	for _, id := range existingCourse.LectureIDs {
		if id != lectureID {
			remaining = append(remaining, id)
		}
	}
	existingCourse.LectureIDs = remaining
	existingCourse.TotalLectures = len(remaining)
	return uc.CourseRepository.UpdateCourse(ctx, existingCourse)
}
