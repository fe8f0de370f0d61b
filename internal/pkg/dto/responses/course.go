package responses

import "learnhub-service/internal/app/models"

// CourseLectures is the composed course-with-lectures view built from
// explicit lookups, one find for the course and one for its lecture ids.
type CourseLectures struct {
	CourseID string           `json:"courseId"`
	Lectures []models.Lecture `json:"lectures"`
}

// CommentView composes a comment with the commenter's display name.
type CommentView struct {
	models.Comment `json:",inline"`
	AuthorName     string `json:"authorName"`
}

type UploadURL struct {
	UploadID  string `json:"uploadId"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"`
}

type UploadVerified struct {
	Verified bool   `json:"verified"`
	UploadID string `json:"uploadId"`
	Size     int64  `json:"size"`
}

type Health struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
	Redis  string `json:"redis"`
}
