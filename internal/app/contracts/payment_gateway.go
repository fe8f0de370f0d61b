package contracts

import (
	"context"

	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*responses.CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signatureHeader string) (*responses.WebhookEvent, error)
	CreateRefund(ctx context.Context, paymentIntentID, reason string) (refundID string, err error)
}
