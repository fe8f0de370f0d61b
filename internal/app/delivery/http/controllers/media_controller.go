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

	"go.uber.org/zap"
)

type MediaController struct {
	Log          *zap.Logger
	MediaUsecase contracts.MediaUsecase
}

var (
	mediaControllerInstance *MediaController
	onceMediaController     sync.Once
)

func NewMediaController(logger *zap.Logger, mediaUsecase contracts.MediaUsecase) *MediaController {
	onceMediaController.Do(func() {
		instance := &MediaController{
			Log:          logger,
			MediaUsecase: mediaUsecase,
		}
		mediaControllerInstance = instance
	})
	return mediaControllerInstance
}

func (ctrl *MediaController) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MediaController.CreateUploadURL requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MediaController.CreateUploadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.CreateUploadURL)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("MediaController.CreateUploadURL error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("MediaController.CreateUploadURL validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("MediaController.CreateUploadURL userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MediaUsecase.CreateUploadURL(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("MediaController.CreateUploadURL error from usecase",
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

	ctrl.Log.Info("MediaController.CreateUploadURL succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadURLCreatedSuccess, result)
}

func (ctrl *MediaController) VerifyUpload(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MediaController.VerifyUpload requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MediaController.VerifyUpload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.VerifyUpload)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("MediaController.VerifyUpload error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("MediaController.VerifyUpload validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("MediaController.VerifyUpload userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MediaUsecase.VerifyUpload(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("MediaController.VerifyUpload error from usecase",
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

	ctrl.Log.Info("MediaController.VerifyUpload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadVerifiedSuccess, result)
}

func (ctrl *MediaController) HandleUploadWebhook(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MediaController.HandleUploadWebhook requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MediaController.HandleUploadWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.UploadWebhook)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("MediaController.HandleUploadWebhook error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("MediaController.HandleUploadWebhook validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.MediaUsecase.HandleUploadWebhook(ctx, reqPayload); err != nil {
		ctrl.Log.Error("MediaController.HandleUploadWebhook error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MediaController.HandleUploadWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookReceivedSuccess, nil)
}
