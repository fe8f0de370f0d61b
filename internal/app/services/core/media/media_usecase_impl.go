package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type uploadTicket struct {
	ObjectName  string `json:"object_name"`
	ContentType string `json:"content_type"`
	UserID      string `json:"user_id"`
}

type mediaUsecase struct {
	Storage         contracts.Storage
	RedisRepository contracts.RedisRepository
	UploadNotifier  contracts.UploadNotifier
	InternalConfig  *config.InternalConfig
	DriverConfig    *config.DriverConfig
	Log             *zap.Logger
}

func NewMediaUsecase(
	minioStorage contracts.Storage,
	redisRepository contracts.RedisRepository,
	uploadNotifier contracts.UploadNotifier,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.MediaUsecase {
	return &mediaUsecase{
		Storage:         minioStorage,
		RedisRepository: redisRepository,
		UploadNotifier:  uploadNotifier,
		InternalConfig:  internalConfig,
		DriverConfig:    driverConfig,
		Log:             logger,
	}
}

// CreateUploadURL hands the client a presigned PUT URL so the video bytes
// never pass through this service. The upload id ties the later verify call
// back to the object name.
func (uc *mediaUsecase) CreateUploadURL(ctx context.Context, userID string, request *requests.CreateUploadURL) (*responses.UploadURL, error) {
	uploadID := utils.GenerateRequestID()
	objectName := utils.GenerateObjectName(userID, request.FileName)
	expiry := time.Duration(uc.InternalConfig.Media.UploadURLExpiryTimeInMinutes) * time.Minute

	presignedURL, err := uc.Storage.PresignedPutURL(ctx, uc.DriverConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	ticket := uploadTicket{
		ObjectName:  objectName,
		ContentType: request.ContentType,
		UserID:      userID,
	}
	err = uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisUploadKeyFormat, uploadID), ticket, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.UploadURL{
		UploadID:  uploadID,
		URL:       presignedURL,
		ExpiresIn: int64(expiry.Seconds()),
	}, nil
}

func (uc *mediaUsecase) VerifyUpload(ctx context.Context, userID string, request *requests.VerifyUpload) (*responses.UploadVerified, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ticket, err := uc.loadTicket(ctx, request.UploadID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, exceptions.ErrNotCourseOwner(nil)
	}

	objectInfo, err := uc.Storage.StatObject(ctx, uc.DriverConfig.Minio.BucketName, ticket.ObjectName)
	if err != nil {
		return nil, err
	}

	maxSize := uc.InternalConfig.Media.VideoMaxUploadSizeInMB * 1024 * 1024
	if strings.HasPrefix(ticket.ContentType, "image/") {
		maxSize = uc.InternalConfig.Media.ThumbnailMaxUploadSizeInMB * 1024 * 1024
	}
	if objectInfo.Size > maxSize {
		// Oversized uploads are removed so the bucket never keeps them
		if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, ticket.ObjectName); err != nil {
			uc.Log.Error("mediaUsecase.VerifyUpload failed to remove oversized object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUploadIDKey, request.UploadID),
				zap.Error(err),
			)
		}
		return nil, exceptions.ErrUploadTooLarge(nil)
	}

	playbackExpiry := time.Duration(uc.InternalConfig.Media.PlaybackURLExpiryTimeInHours) * time.Hour
	videoURL, err := uc.Storage.PresignedGetURL(ctx, uc.DriverConfig.Minio.BucketName, ticket.ObjectName, playbackExpiry)
	if err != nil {
		return nil, err
	}

	err = uc.UploadNotifier.PublishUploadStatus(ctx, &contracts.UploadStatusMessage{
		UploadID:   request.UploadID,
		ObjectName: ticket.ObjectName,
		Status:     "verified",
		VideoURL:   videoURL,
	})
	if err != nil {
		uc.Log.Error("mediaUsecase.VerifyUpload failed to publish upload status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUploadIDKey, request.UploadID),
			zap.Error(err),
		)
	}

	return &responses.UploadVerified{
		Verified: true,
		UploadID: request.UploadID,
		Size:     objectInfo.Size,
	}, nil
}

// HandleUploadWebhook relays storage gateway notifications onto the upload
// status exchange keyed by upload id.
func (uc *mediaUsecase) HandleUploadWebhook(ctx context.Context, request *requests.UploadWebhook) error {
	ticket, err := uc.loadTicket(ctx, request.UploadID)
	if err != nil {
		return err
	}

	return uc.UploadNotifier.PublishUploadStatus(ctx, &contracts.UploadStatusMessage{
		UploadID:   request.UploadID,
		ObjectName: ticket.ObjectName,
		Status:     "uploaded",
		VideoURL:   request.URL,
	})
}

func (uc *mediaUsecase) loadTicket(ctx context.Context, uploadID string) (*uploadTicket, error) {
	data, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisUploadKeyFormat, uploadID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrMinioStatObject(fmt.Errorf("upload id %s unknown or expired", uploadID), uc.DriverConfig.Minio.BucketName)
	}

	var ticket uploadTicket
	if err := json.Unmarshal([]byte(data), &ticket); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &ticket, nil
}
