package storage

import (
	"context"
	"net/url"
	"time"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PresignedPutURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedPutObject(ctx, bucketName, objectName, expiry)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) StatObject(ctx context.Context, bucketName, objectName string) (*contracts.ObjectInfo, error) {
	objectInfo, err := m.MinioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioStatObject(err, bucketName)
	}
	return &contracts.ObjectInfo{
		Size:        objectInfo.Size,
		ContentType: objectInfo.ContentType,
	}, nil
}

func (m *minioStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, bucketName)
	}
	return nil
}
