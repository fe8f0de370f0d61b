package contracts

import (
	"context"

	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type MediaUsecase interface {
	CreateUploadURL(ctx context.Context, userID string, request *requests.CreateUploadURL) (*responses.UploadURL, error)
	VerifyUpload(ctx context.Context, userID string, request *requests.VerifyUpload) (*responses.UploadVerified, error)
	HandleUploadWebhook(ctx context.Context, request *requests.UploadWebhook) error
}
