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

type LectureController struct {
	Log            *zap.Logger
	LectureUsecase contracts.LectureUsecase
}

var (
	lectureControllerInstance *LectureController
	onceLectureController     sync.Once
)

func NewLectureController(logger *zap.Logger, lectureUsecase contracts.LectureUsecase) *LectureController {
	onceLectureController.Do(func() {
		instance := &LectureController{
			Log:            logger,
			LectureUsecase: lectureUsecase,
		}
		lectureControllerInstance = instance
	})
	return lectureControllerInstance
}

func (ctrl *LectureController) AddLecture(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LectureController.AddLecture requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LectureController.AddLecture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.AddLecture)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("LectureController.AddLecture error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("LectureController.AddLecture validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("LectureController.AddLecture userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LectureUsecase.AddLecture(ctx, instructorID, courseID, reqPayload)
	if err != nil {
		ctrl.Log.Error("LectureController.AddLecture error from usecase",
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

	ctrl.Log.Info("LectureController.AddLecture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LectureAddedSuccess, result)
}

func (ctrl *LectureController) GetCourseLectures(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LectureController.GetCourseLectures requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LectureController.GetCourseLectures called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LectureUsecase.GetCourseLectures(ctx, courseID)
	if err != nil {
		ctrl.Log.Error("LectureController.GetCourseLectures error from usecase",
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

	ctrl.Log.Info("LectureController.GetCourseLectures succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LecturesFetchedSuccess, result)
}

func (ctrl *LectureController) DeleteLecture(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LectureController.DeleteLecture requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LectureController.DeleteLecture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	instructorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || instructorID == "" {
		ctrl.Log.Error("LectureController.DeleteLecture userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	lectureID := chi.URLParam(r, "lectureId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.LectureUsecase.DeleteLecture(ctx, instructorID, lectureID); err != nil {
		ctrl.Log.Error("LectureController.DeleteLecture error from usecase",
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

	ctrl.Log.Info("LectureController.DeleteLecture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LectureDeletedSuccess, nil)
}

func (ctrl *LectureController) GetLecture(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LectureController.GetLecture requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LectureController.GetLecture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lectureID := chi.URLParam(r, "lectureId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LectureUsecase.GetLectureDetails(ctx, lectureID)
	if err != nil {
		ctrl.Log.Error("LectureController.GetLecture error from usecase",
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

	ctrl.Log.Info("LectureController.GetLecture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LectureFetchedSuccess, result)
}
