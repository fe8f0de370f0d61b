package models

type Comment struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	LectureID       string `json:"lectureId" bson:"lectureId"`
	UserID          string `json:"userId" bson:"userId"`
	Content         string `json:"content" bson:"content"`
	ParentCommentID string `json:"parentCommentId,omitempty" bson:"parentCommentId,omitempty"`
	ReplyCount      int64  `json:"replyCount" bson:"replyCount"`
	Likes           int64  `json:"likes" bson:"likes"`
	Dislikes        int64  `json:"dislikes" bson:"dislikes"`
	TimeModel       `bson:",inline"`
}

// CommentReaction is a row in either comment_likes or comment_dislikes.
// A unique index on (commentId, userId) makes each reaction single-shot.
type CommentReaction struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	CommentID string `json:"commentId" bson:"commentId"`
	UserID    string `json:"userId" bson:"userId"`
	TimeModel `bson:",inline"`
}
