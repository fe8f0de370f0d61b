package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type PurchaseUsecase interface {
	InitiateCheckout(ctx context.Context, userID string, request *requests.InitiateCheckout) (*responses.InitiateCheckout, error)
	HandleProviderWebhook(ctx context.Context, payload []byte, signatureHeader string) error
	VerifySession(ctx context.Context, userID string, request *requests.VerifySession) (*responses.VerifySession, error)
	GetPurchaseStatus(ctx context.Context, userID, courseID string) (*responses.PurchaseStatus, error)
	GetPurchasedCourses(ctx context.Context, userID string) ([]models.Course, error)
	ProcessRefund(ctx context.Context, userID string, request *requests.ProcessRefund) (*responses.Refund, error)
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchaseModel *models.CoursePurchase) (purchaseID string, err error)
	FindByID(ctx context.Context, purchaseID string) (*models.CoursePurchase, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.CoursePurchase, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CoursePurchase, error)
	FindCompletedByUserID(ctx context.Context, userID string) ([]models.CoursePurchase, error)
	UpdatePurchase(ctx context.Context, purchaseModel *models.CoursePurchase) error

	// CompleteIfPending and FailIfPending transition the record with a
	// single conditional update so concurrent webhook deliveries cannot
	// double-apply. Both report whether the document was modified.
	CompleteIfPending(ctx context.Context, purchaseID, paymentID string) (bool, error)
	FailIfPending(ctx context.Context, purchaseID, paymentID string) (bool, error)
	MarkRefunded(ctx context.Context, purchaseID, refundID, reason string, amount int64) error
}
