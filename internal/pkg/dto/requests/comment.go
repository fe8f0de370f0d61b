package requests

type WriteComment struct {
	LectureID       string `json:"lectureId" validate:"required"`
	Content         string `json:"content" validate:"required,max=500"`
	ParentCommentID string `json:"parentCommentId" validate:"omitempty"`
}

type ReactToComment struct {
	LectureID string `json:"lectureId" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
}

type DeleteComment struct {
	LectureID string `json:"lectureId" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
}
