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

type CommentController struct {
	Log            *zap.Logger
	CommentUsecase contracts.CommentUsecase
}

var (
	commentControllerInstance *CommentController
	onceCommentController     sync.Once
)

func NewCommentController(logger *zap.Logger, commentUsecase contracts.CommentUsecase) *CommentController {
	onceCommentController.Do(func() {
		instance := &CommentController{
			Log:            logger,
			CommentUsecase: commentUsecase,
		}
		commentControllerInstance = instance
	})
	return commentControllerInstance
}

func (ctrl *CommentController) WriteComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CommentController.WriteComment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CommentController.WriteComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.WriteComment)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("CommentController.WriteComment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("CommentController.WriteComment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("CommentController.WriteComment userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CommentUsecase.WriteComment(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("CommentController.WriteComment error from usecase",
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

	ctrl.Log.Info("CommentController.WriteComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CommentCreatedSuccess, result)
}

func (ctrl *CommentController) GetLectureComments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CommentController.GetLectureComments requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CommentController.GetLectureComments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lectureID := chi.URLParam(r, "lectureId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CommentUsecase.GetLectureComments(ctx, lectureID)
	if err != nil {
		ctrl.Log.Error("CommentController.GetLectureComments error from usecase",
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

	ctrl.Log.Info("CommentController.GetLectureComments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommentsFetchedSuccess, result)
}

func (ctrl *CommentController) LikeComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CommentController.LikeComment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CommentController.LikeComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.ReactToComment)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("CommentController.LikeComment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("CommentController.LikeComment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("CommentController.LikeComment userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CommentUsecase.LikeComment(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("CommentController.LikeComment error from usecase",
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

	ctrl.Log.Info("CommentController.LikeComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommentLikedSuccess, result)
}

func (ctrl *CommentController) DislikeComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CommentController.DislikeComment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CommentController.DislikeComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.ReactToComment)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("CommentController.DislikeComment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("CommentController.DislikeComment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("CommentController.DislikeComment userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CommentUsecase.DislikeComment(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("CommentController.DislikeComment error from usecase",
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

	ctrl.Log.Info("CommentController.DislikeComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommentDislikedSuccess, result)
}

func (ctrl *CommentController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CommentController.DeleteComment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CommentController.DeleteComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("CommentController.DeleteComment userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	commentID := chi.URLParam(r, "commentId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CommentUsecase.DeleteComment(ctx, userID, commentID); err != nil {
		ctrl.Log.Error("CommentController.DeleteComment error from usecase",
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

	ctrl.Log.Info("CommentController.DeleteComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommentDeletedSuccess, nil)
}
