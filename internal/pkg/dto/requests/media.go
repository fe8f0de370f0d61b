package requests

type CreateUploadURL struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

type VerifyUpload struct {
	UploadID string `json:"uploadId" validate:"required"`
}

// UploadWebhook is the notification posted by the storage gateway once an
// object has landed in the bucket.
type UploadWebhook struct {
	UploadID    string `json:"uploadId" validate:"required"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
