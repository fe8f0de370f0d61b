package purchases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type purchaseUsecase struct {
	PurchaseRepository contracts.PurchaseRepository
	CourseRepository   contracts.CourseRepository
	UserRepository     contracts.UserRepository
	PaymentGateway     contracts.PaymentGatewayService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewPurchaseUsecase(
	purchaseMongoRepository contracts.PurchaseRepository,
	courseMongoRepository contracts.CourseRepository,
	userMongoRepository contracts.UserRepository,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PurchaseUsecase {
	return &purchaseUsecase{
		PurchaseRepository: purchaseMongoRepository,
		CourseRepository:   courseMongoRepository,
		UserRepository:     userMongoRepository,
		PaymentGateway:     paymentGateway,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *purchaseUsecase) InitiateCheckout(ctx context.Context, userID string, request *requests.InitiateCheckout) (*responses.InitiateCheckout, error) {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	existingCourse, err := uc.CourseRepository.FindByID(ctx, request.CourseID)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, exceptions.ErrCourseNotFound(nil)
	}

	// A completed purchase blocks a new checkout; pending or failed records
	// are reused with the current course price.
	purchase, err := uc.PurchaseRepository.FindByUserAndCourse(ctx, userID, request.CourseID)
	if err != nil {
		return nil, err
	}
	if purchase != nil && purchase.Status == models.PaymentStatusCompleted {
		return nil, exceptions.ErrCourseAlreadyPurchased(nil)
	}

	// The id is minted before the provider call so the session metadata can
	// carry it, but nothing is persisted until the session exists. A gateway
	// failure must not leave an orphan pending record behind.
	isNewRecord := purchase == nil
	if isNewRecord {
		purchase = &models.CoursePurchase{
			ID:            primitive.NewObjectID().Hex(),
			CourseID:      request.CourseID,
			UserID:        userID,
			Currency:      constvars.PurchaseCurrency,
			Status:        models.PaymentStatusPending,
			PaymentMethod: constvars.PaymentMethodCard,
			PaymentID:     constvars.PaymentIDSentinel,
		}
	}
	purchase.Amount = existingCourse.Price
	purchase.Status = models.PaymentStatusPending

	session, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &requests.CreateCheckoutSession{
		CustomerEmail: existingUser.Email,
		ProductName:   existingCourse.Title,
		UnitAmount:    existingCourse.Price * 100,
		Currency:      purchase.Currency,
		SuccessURL:    uc.InternalConfig.ClientApp.CheckoutSuccessURL,
		CancelURL:     uc.InternalConfig.ClientApp.CheckoutCancelURL,
		Metadata: map[string]string{
			constvars.StripeMetadataCourseOrderIDKey: purchase.ID,
			constvars.StripeMetadataUserIDKey:        userID,
			constvars.StripeMetadataCourseIDKey:      request.CourseID,
		},
	})
	if err != nil {
		return nil, err
	}

	purchase.SessionID = session.ID
	if isNewRecord {
		if _, err := uc.PurchaseRepository.CreatePurchase(ctx, purchase); err != nil {
			return nil, err
		}
	} else if err := uc.PurchaseRepository.UpdatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	return &responses.InitiateCheckout{URL: session.URL}, nil
}

// HandleProviderWebhook is the push entry point of the reconciliation flow.
// Signature failures are the only errors surfaced to the provider; every
// authenticated-but-unprocessable event is acknowledged so the provider does
// not retry a delivery that can never succeed.
func (uc *purchaseUsecase) HandleProviderWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event, err := uc.PaymentGateway.VerifyWebhookSignature(payload, signatureHeader)
	if err != nil {
		return err
	}

	uc.Log.Info("purchaseUsecase.HandleProviderWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingSessionIDKey, event.Session.ID),
	)

	switch event.Type {
	case constvars.StripeEventCheckoutSessionCompleted, constvars.StripeEventAsyncPaymentSucceeded:
		uc.reconcileSuccess(ctx, requestID, &event.Session)
	case constvars.StripeEventAsyncPaymentFailed, constvars.StripeEventCheckoutSessionExpired:
		uc.reconcileFailure(ctx, requestID, &event.Session)
	default:
		// Unactionable event types are acknowledged and dropped
	}
	return nil
}

func (uc *purchaseUsecase) reconcileSuccess(ctx context.Context, requestID string, session *responses.CheckoutSession) {
	purchase := uc.lookupFromMetadata(ctx, requestID, session)
	if purchase == nil {
		return
	}
	if purchase.Status == models.PaymentStatusCompleted {
		// Replayed success deliveries stop here
		return
	}

	if err := crossCheck(purchase, session); err != nil {
		uc.Log.Warn("purchaseUsecase.reconcileSuccess cross-check failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPurchaseIDKey, purchase.ID),
			zap.Error(err),
		)
		if _, err := uc.PurchaseRepository.FailIfPending(ctx, purchase.ID, ""); err != nil {
			uc.Log.Error("purchaseUsecase.reconcileSuccess failed to mark purchase failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return
	}

	modified, err := uc.PurchaseRepository.CompleteIfPending(ctx, purchase.ID, session.PaymentIntent)
	if err != nil {
		uc.Log.Error("purchaseUsecase.reconcileSuccess failed to complete purchase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if modified {
		uc.grantEnrollment(ctx, requestID, purchase.UserID, purchase.CourseID)
	}
}

func (uc *purchaseUsecase) reconcileFailure(ctx context.Context, requestID string, session *responses.CheckoutSession) {
	purchase := uc.lookupFromMetadata(ctx, requestID, session)
	if purchase == nil {
		return
	}
	// The payment reference rides along inside the conditional transition.
	// Records already in a terminal status stay untouched.
	if _, err := uc.PurchaseRepository.FailIfPending(ctx, purchase.ID, session.PaymentIntent); err != nil {
		uc.Log.Error("purchaseUsecase.reconcileFailure failed to mark purchase failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *purchaseUsecase) lookupFromMetadata(ctx context.Context, requestID string, session *responses.CheckoutSession) *models.CoursePurchase {
	purchaseID := session.Metadata[constvars.StripeMetadataCourseOrderIDKey]
	if purchaseID == "" {
		// Some event payloads arrive without metadata. The session id was
		// persisted at checkout and still keys the record.
		purchase, err := uc.PurchaseRepository.FindBySessionID(ctx, session.ID)
		if err != nil || purchase == nil {
			uc.Log.Warn("purchaseUsecase webhook event has no resolvable purchase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, session.ID),
			)
			return nil
		}
		return purchase
	}
	purchase, err := uc.PurchaseRepository.FindByID(ctx, purchaseID)
	if err != nil || purchase == nil {
		// Unknown records are acknowledged and dropped
		uc.Log.Warn("purchaseUsecase webhook event references unknown purchase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPurchaseIDKey, purchaseID),
		)
		return nil
	}
	return purchase
}

// crossCheck validates a pushed success event against the locally stored
// record. The stored amount and currency are authoritative.
func crossCheck(purchase *models.CoursePurchase, session *responses.CheckoutSession) error {
	if purchase.Amount*100 != session.AmountTotal {
		return fmt.Errorf("amount mismatch: record %d vs session total %d", purchase.Amount*100, session.AmountTotal)
	}
	if !strings.EqualFold(purchase.Currency, session.Currency) {
		return fmt.Errorf("currency mismatch: record %s vs session %s", purchase.Currency, session.Currency)
	}
	if session.PaymentStatus != constvars.StripePaymentStatusPaid {
		return fmt.Errorf("payment status is %q, not paid", session.PaymentStatus)
	}
	if session.Metadata[constvars.StripeMetadataUserIDKey] != purchase.UserID {
		return fmt.Errorf("metadata user id does not match record")
	}
	if session.Metadata[constvars.StripeMetadataCourseIDKey] != purchase.CourseID {
		return fmt.Errorf("metadata course id does not match record")
	}
	if session.PaymentIntent == "" {
		return fmt.Errorf("payment reference missing from session")
	}
	return nil
}

// VerifySession is the pull entry point of the reconciliation flow. It
// trusts the session fetched live from the provider and runs a narrower
// check set than the webhook path.
func (uc *purchaseUsecase) VerifySession(ctx context.Context, userID string, request *requests.VerifySession) (*responses.VerifySession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("purchaseUsecase.VerifySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
	)

	session, err := uc.PaymentGateway.RetrieveCheckoutSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Metadata[constvars.StripeMetadataUserIDKey] != userID {
		return nil, exceptions.ErrSessionNotOwned(nil)
	}

	if session.PaymentStatus != constvars.StripePaymentStatusPaid {
		return &responses.VerifySession{Paid: false}, nil
	}

	purchaseID := session.Metadata[constvars.StripeMetadataCourseOrderIDKey]
	purchase, err := uc.PurchaseRepository.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, exceptions.ErrPurchaseNotFound(nil)
	}
	if purchase.Status == models.PaymentStatusCompleted {
		return &responses.VerifySession{Paid: true}, nil
	}

	if purchase.Amount*100 != session.AmountTotal {
		return nil, exceptions.ErrCourseAmountMismatch(nil)
	}

	modified, err := uc.PurchaseRepository.CompleteIfPending(ctx, purchase.ID, session.PaymentIntent)
	if err != nil {
		return nil, err
	}
	if modified {
		uc.grantEnrollment(ctx, requestID, purchase.UserID, purchase.CourseID)
	}
	return &responses.VerifySession{Paid: true}, nil
}

func (uc *purchaseUsecase) GetPurchaseStatus(ctx context.Context, userID, courseID string) (*responses.PurchaseStatus, error) {
	purchase, err := uc.PurchaseRepository.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, exceptions.ErrPurchaseNotFound(nil)
	}
	return &responses.PurchaseStatus{Status: string(purchase.Status)}, nil
}

func (uc *purchaseUsecase) GetPurchasedCourses(ctx context.Context, userID string) ([]models.Course, error) {
	purchases, err := uc.PurchaseRepository.FindCompletedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(purchases))
	for _, purchase := range purchases {
		course, err := uc.CourseRepository.FindByID(ctx, purchase.CourseID)
		if err != nil {
			return nil, err
		}
		if course != nil {
			courses = append(courses, *course)
		}
	}
	return courses, nil
}

func (uc *purchaseUsecase) ProcessRefund(ctx context.Context, userID string, request *requests.ProcessRefund) (*responses.Refund, error) {
	purchase, err := uc.PurchaseRepository.FindByUserAndCourse(ctx, userID, request.CourseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, exceptions.ErrPurchaseNotFound(nil)
	}
	if !purchase.IsRefundable(time.Now()) {
		return nil, exceptions.ErrPurchaseNotRefundable(nil)
	}

	refundAmount := request.Amount
	if refundAmount == 0 || refundAmount > purchase.Amount {
		refundAmount = purchase.Amount
	}

	refundID, err := uc.PaymentGateway.CreateRefund(ctx, purchase.PaymentID, request.Reason)
	if err != nil {
		return nil, err
	}

	if err := uc.PurchaseRepository.MarkRefunded(ctx, purchase.ID, refundID, request.Reason, refundAmount); err != nil {
		return nil, err
	}
	uc.revokeEnrollment(ctx, purchase.UserID, purchase.CourseID)

	return &responses.Refund{
		RefundID:     refundID,
		RefundAmount: refundAmount,
		Status:       string(models.PaymentStatusRefunded),
	}, nil
}

// grantEnrollment records the entitlement on the user document. Guarded by
// the conditional status transition, so a replayed event never appends the
// course twice.
func (uc *purchaseUsecase) grantEnrollment(ctx context.Context, requestID, userID, courseID string) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil || user == nil {
		uc.Log.Error("purchaseUsecase.grantEnrollment could not load user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return
	}
	for _, id := range user.EnrolledCourses {
		if id == courseID {
			return
		}
	}
	user.EnrolledCourses = append(user.EnrolledCourses, courseID)
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("purchaseUsecase.grantEnrollment could not update user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}

func (uc *purchaseUsecase) revokeEnrollment(ctx context.Context, userID, courseID string) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil || user == nil {
		return
	}
	remaining := user.EnrolledCourses[:0]
	for _, id := range user.EnrolledCourses {
		if id != courseID {
			remaining = append(remaining, id)
		}
	}
	user.EnrolledCourses = remaining
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("purchaseUsecase.revokeEnrollment could not update user",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}
