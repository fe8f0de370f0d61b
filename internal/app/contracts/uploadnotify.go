package contracts

import "context"

type UploadStatusMessage struct {
	UploadID   string `json:"upload_id"`
	ObjectName string `json:"object_name"`
	Status     string `json:"status"`
	VideoURL   string `json:"video_url,omitempty"`
}

// UploadNotifier fans upload status changes out to interested consumers,
// keyed by upload id.
type UploadNotifier interface {
	PublishUploadStatus(ctx context.Context, message *UploadStatusMessage) error
	Close() error
}
