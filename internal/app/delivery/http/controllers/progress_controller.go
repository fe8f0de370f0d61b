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

type ProgressController struct {
	Log             *zap.Logger
	ProgressUsecase contracts.ProgressUsecase
}

var (
	progressControllerInstance *ProgressController
	onceProgressController     sync.Once
)

func NewProgressController(logger *zap.Logger, progressUsecase contracts.ProgressUsecase) *ProgressController {
	onceProgressController.Do(func() {
		instance := &ProgressController{
			Log:             logger,
			ProgressUsecase: progressUsecase,
		}
		progressControllerInstance = instance
	})
	return progressControllerInstance
}

func (ctrl *ProgressController) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.GetCourseProgress requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.GetCourseProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("ProgressController.GetCourseProgress userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.GetCourseProgress(ctx, userID, courseID)
	if err != nil {
		ctrl.Log.Error("ProgressController.GetCourseProgress error from usecase",
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

	ctrl.Log.Info("ProgressController.GetCourseProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressFetchedSuccess, result)
}

func (ctrl *ProgressController) UpdateLectureProgress(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.UpdateLectureProgress requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.UpdateLectureProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.UpdateLectureProgress)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("ProgressController.UpdateLectureProgress error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("ProgressController.UpdateLectureProgress validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("ProgressController.UpdateLectureProgress userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")
	lectureID := chi.URLParam(r, "lectureId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.UpdateLectureProgress(ctx, userID, courseID, lectureID, reqPayload)
	if err != nil {
		ctrl.Log.Error("ProgressController.UpdateLectureProgress error from usecase",
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

	ctrl.Log.Info("ProgressController.UpdateLectureProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressUpdatedSuccess, result)
}

func (ctrl *ProgressController) ResetCourseProgress(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.ResetCourseProgress requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.ResetCourseProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("ProgressController.ResetCourseProgress userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.ResetCourseProgress(ctx, userID, courseID)
	if err != nil {
		ctrl.Log.Error("ProgressController.ResetCourseProgress error from usecase",
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

	ctrl.Log.Info("ProgressController.ResetCourseProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressResetSuccess, result)
}

func (ctrl *ProgressController) MarkCourseCompleted(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.MarkCourseCompleted requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.MarkCourseCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("ProgressController.MarkCourseCompleted userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.MarkCourseCompleted(ctx, userID, courseID)
	if err != nil {
		ctrl.Log.Error("ProgressController.MarkCourseCompleted error from usecase",
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

	ctrl.Log.Info("ProgressController.MarkCourseCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressCompletedSuccess, result)
}
