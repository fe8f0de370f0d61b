package controllers

import (
	"context"
	"encoding/json"
	"io"
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

type PaymentController struct {
	Log             *zap.Logger
	PurchaseUsecase contracts.PurchaseUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, purchaseUsecase contracts.PurchaseUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:             logger,
			PurchaseUsecase: purchaseUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) InitiateCheckout(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.InitiateCheckout requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.InitiateCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.InitiateCheckout)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.InitiateCheckout error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.InitiateCheckout validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("PaymentController.InitiateCheckout userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PurchaseUsecase.InitiateCheckout(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("PaymentController.InitiateCheckout error from usecase",
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

	ctrl.Log.Info("PaymentController.InitiateCheckout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckoutSessionCreatedSuccess, result)
}

// HandleWebhook receives provider notifications. The raw body is needed
// untouched because the signature covers the exact bytes on the wire.
func (ctrl *PaymentController) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.HandleWebhook requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.HandleWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("PaymentController.HandleWebhook error reading body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}
	defer r.Body.Close()

	signatureHeader := r.Header.Get(constvars.HeaderStripeSignature)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.PurchaseUsecase.HandleProviderWebhook(ctx, payload, signatureHeader); err != nil {
		ctrl.Log.Error("PaymentController.HandleWebhook error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.HandleWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookReceivedSuccess, nil)
}

func (ctrl *PaymentController) VerifySession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.VerifySession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.VerifySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.VerifySession)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.VerifySession error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.VerifySession validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("PaymentController.VerifySession userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PurchaseUsecase.VerifySession(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("PaymentController.VerifySession error from usecase",
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

	ctrl.Log.Info("PaymentController.VerifySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionVerifiedSuccess, result)
}

func (ctrl *PaymentController) GetPurchaseStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.GetPurchaseStatus requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.GetPurchaseStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("PaymentController.GetPurchaseStatus userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	courseID := chi.URLParam(r, "courseId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PurchaseUsecase.GetPurchaseStatus(ctx, userID, courseID)
	if err != nil {
		ctrl.Log.Error("PaymentController.GetPurchaseStatus error from usecase",
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

	ctrl.Log.Info("PaymentController.GetPurchaseStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PurchaseStatusFetchedSuccess, result)
}

func (ctrl *PaymentController) GetPurchasedCourses(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.GetPurchasedCourses requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.GetPurchasedCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("PaymentController.GetPurchasedCourses userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PurchaseUsecase.GetPurchasedCourses(ctx, userID)
	if err != nil {
		ctrl.Log.Error("PaymentController.GetPurchasedCourses error from usecase",
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

	ctrl.Log.Info("PaymentController.GetPurchasedCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PurchasedCoursesFetchedSuccess, result)
}

func (ctrl *PaymentController) ProcessRefund(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.ProcessRefund requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.ProcessRefund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.ProcessRefund)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.ProcessRefund error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("PaymentController.ProcessRefund validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		ctrl.Log.Error("PaymentController.ProcessRefund userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PurchaseUsecase.ProcessRefund(ctx, userID, reqPayload)
	if err != nil {
		ctrl.Log.Error("PaymentController.ProcessRefund error from usecase",
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

	ctrl.Log.Info("PaymentController.ProcessRefund succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefundProcessedSuccess, result)
}
