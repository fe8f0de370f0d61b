package contracts

import (
	"context"
	"time"
)

type ObjectInfo struct {
	Size        int64
	ContentType string
}

type Storage interface {
	PresignedPutURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	StatObject(ctx context.Context, bucketName, objectName string) (*ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string) error
}
