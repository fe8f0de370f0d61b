package controllers

import (
	"context"
	"encoding/json"
	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseController struct {
	Log           *zap.Logger
	CourseUsecase contracts.CourseUsecase
}

var (
	courseControllerInstance *CourseController
	onceCourseController     sync.Once
)

func NewCourseController(logger *zap.Logger, courseUsecase contracts.CourseUsecase) *CourseController {
	onceCourseController.Do(func() {
		instance := &CourseController{
			Log:           logger,
			CourseUsecase: courseUsecase,
		}
		courseControllerInstance = instance
	})
	return courseControllerInstance
}

func (ctrl *CourseController) CreateCourse(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.CreateCourse requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.CreateCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.CreateCourse)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("CourseController.CreateCourse error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("CourseController.CreateCourse validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("CourseController.CreateCourse userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.CreateCourse(ctx, instructorID, reqPayload)
	if err != nil {
		ctrl.Log.Error("CourseController.CreateCourse error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.CreateCourse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CourseCreatedSuccess, result)
}

func (ctrl *CourseController) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.UpdateCourse requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.UpdateCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.UpdateCourse)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("CourseController.UpdateCourse error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("CourseController.UpdateCourse validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("CourseController.UpdateCourse userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.UpdateCourse(ctx, instructorID, courseID, reqPayload)
	if err != nil {
		ctrl.Log.Error("CourseController.UpdateCourse error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.UpdateCourse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseUpdatedSuccess, result)
}

func (ctrl *CourseController) TogglePublish(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.TogglePublish requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.TogglePublish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("CourseController.TogglePublish userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.TogglePublish(ctx, instructorID, courseID)
	if err != nil {
		ctrl.Log.Error("CourseController.TogglePublish error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.TogglePublish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseUpdatedSuccess, result)
}

func (ctrl *CourseController) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.DeleteCourse requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.DeleteCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("CourseController.DeleteCourse userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CourseUsecase.DeleteCourse(ctx, instructorID, courseID); err != nil {
		ctrl.Log.Error("CourseController.DeleteCourse error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.DeleteCourse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseDeletedSuccess, nil)
}

func (ctrl *CourseController) GetPublishedCourses(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.GetPublishedCourses requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.GetPublishedCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.GetPublishedCourses(ctx)
	if err != nil {
		ctrl.Log.Error("CourseController.GetPublishedCourses error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.GetPublishedCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CoursesFetchedSuccess, result)
}

func (ctrl *CourseController) GetCourseBySlug(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.GetCourseBySlug requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.GetCourseBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.GetCourseBySlug(ctx, slug)
	if err != nil {
		ctrl.Log.Error("CourseController.GetCourseBySlug error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.GetCourseBySlug succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseFetchedSuccess, result)
}

func (ctrl *CourseController) GetInstructorCourses(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.GetInstructorCourses requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.GetInstructorCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("CourseController.GetInstructorCourses userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.GetInstructorCourses(ctx, instructorID)
	if err != nil {
		ctrl.Log.Error("CourseController.GetInstructorCourses error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.GetInstructorCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CoursesFetchedSuccess, result)
}

func (ctrl *CourseController) SearchCourses(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CourseController.SearchCourses requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CourseController.SearchCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CourseUsecase.SearchCourses(ctx, query)
	if err != nil {
		ctrl.Log.Error("CourseController.SearchCourses error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CourseController.SearchCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CoursesFetchedSuccess, result)
}
