package progress

import (
	"context"
	"time"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/exceptions"
)

type progressUsecase struct {
	ProgressRepository contracts.ProgressRepository
	CourseRepository   contracts.CourseRepository
	PurchaseRepository contracts.PurchaseRepository
}

func NewProgressUsecase(
	progressMongoRepository contracts.ProgressRepository,
	courseMongoRepository contracts.CourseRepository,
	purchaseMongoRepository contracts.PurchaseRepository,
) contracts.ProgressUsecase {
	return &progressUsecase{
		ProgressRepository: progressMongoRepository,
		CourseRepository:   courseMongoRepository,
		PurchaseRepository: purchaseMongoRepository,
	}
}

func (uc *progressUsecase) GetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error) {
	existingCourse, err := uc.requirePurchasedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	existingProgress, err := uc.ProgressRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existingProgress == nil {
		// First access creates an empty tracking document
		return uc.createEmptyProgress(ctx, userID, existingCourse)
	}
	return existingProgress, nil
}

func (uc *progressUsecase) UpdateLectureProgress(ctx context.Context, userID, courseID, lectureID string, request *requests.UpdateLectureProgress) (*models.CourseProgress, error) {
	existingCourse, err := uc.requirePurchasedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	lectureBelongs := false
	for _, id := range existingCourse.LectureIDs {
		if id == lectureID {
			lectureBelongs = true
			break
		}
	}
	if !lectureBelongs {
		return nil, exceptions.ErrLectureNotFound(nil)
	}

	existingProgress, err := uc.ProgressRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existingProgress == nil {
		existingProgress, err = uc.createEmptyProgress(ctx, userID, existingCourse)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	found := false
	for i := range existingProgress.Lectures {
		if existingProgress.Lectures[i].LectureID == lectureID {
			applyLectureProgress(&existingProgress.Lectures[i], request, now)
			found = true
			break
		}
	}
	if !found {
		entry := models.LectureProgress{LectureID: lectureID}
		applyLectureProgress(&entry, request, now)
		existingProgress.Lectures = append(existingProgress.Lectures, entry)
	}

	existingProgress.LastAccessed = now
	existingProgress.Recompute(existingCourse.TotalLectures)

	if err := uc.ProgressRepository.UpdateProgress(ctx, existingProgress); err != nil {
		return nil, err
	}
	return existingProgress, nil
}

func (uc *progressUsecase) MarkCourseCompleted(ctx context.Context, userID, courseID string) (*models.CourseProgress, error) {
	existingCourse, err := uc.requirePurchasedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	existingProgress, err := uc.ProgressRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existingProgress == nil {
		existingProgress, err = uc.createEmptyProgress(ctx, userID, existingCourse)
		if err != nil {
			return nil, err
		}
	}

	// Every lecture in the course gets a completed entry, keeping
	// watch positions already recorded.
	now := time.Now()
	entries := make(map[string]int, len(existingProgress.Lectures))
	for i, lp := range existingProgress.Lectures {
		entries[lp.LectureID] = i
	}
	for _, lectureID := range existingCourse.LectureIDs {
		if i, ok := entries[lectureID]; ok {
			if !existingProgress.Lectures[i].IsCompleted {
				existingProgress.Lectures[i].IsCompleted = true
				watchedAt := now
				existingProgress.Lectures[i].WatchedAt = &watchedAt
			}
			continue
		}
		watchedAt := now
		existingProgress.Lectures = append(existingProgress.Lectures, models.LectureProgress{
			LectureID:   lectureID,
			IsCompleted: true,
			WatchedAt:   &watchedAt,
		})
	}

	existingProgress.LastAccessed = now
	existingProgress.Recompute(existingCourse.TotalLectures)

	if err := uc.ProgressRepository.UpdateProgress(ctx, existingProgress); err != nil {
		return nil, err
	}
	return existingProgress, nil
}

func (uc *progressUsecase) ResetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error) {
	existingCourse, err := uc.requirePurchasedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	existingProgress, err := uc.ProgressRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existingProgress == nil {
		return uc.createEmptyProgress(ctx, userID, existingCourse)
	}

	existingProgress.Lectures = []models.LectureProgress{}
	existingProgress.LastAccessed = time.Now()
	existingProgress.Recompute(existingCourse.TotalLectures)

	if err := uc.ProgressRepository.UpdateProgress(ctx, existingProgress); err != nil {
		return nil, err
	}
	return existingProgress, nil
}

func (uc *progressUsecase) requirePurchasedCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	existingCourse, err := uc.CourseRepository.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, exceptions.ErrCourseNotFound(nil)
	}

	// Instructors track their own courses without a purchase record
	if existingCourse.InstructorID == userID {
		return existingCourse, nil
	}

	purchase, err := uc.PurchaseRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.Status != models.PaymentStatusCompleted {
		return nil, exceptions.ErrCourseNotPurchased(nil)
	}
	return existingCourse, nil
}

func (uc *progressUsecase) createEmptyProgress(ctx context.Context, userID string, course *models.Course) (*models.CourseProgress, error) {
	progressModel := &models.CourseProgress{
		UserID:       userID,
		CourseID:     course.ID,
		Lectures:     []models.LectureProgress{},
		LastAccessed: time.Now(),
	}
	progressModel.Recompute(course.TotalLectures)

	progressID, err := uc.ProgressRepository.CreateProgress(ctx, progressModel)
	if err != nil {
		return nil, err
	}
	progressModel.ID = progressID
	return progressModel, nil
}

func applyLectureProgress(entry *models.LectureProgress, request *requests.UpdateLectureProgress, now time.Time) {
	if request.LastWatched != nil {
		entry.LastWatched = *request.LastWatched
	}
	if request.IsCompleted != nil {
		entry.IsCompleted = *request.IsCompleted
		if *request.IsCompleted {
			watchedAt := now
			entry.WatchedAt = &watchedAt
		} else {
			entry.WatchedAt = nil
		}
	}
}
