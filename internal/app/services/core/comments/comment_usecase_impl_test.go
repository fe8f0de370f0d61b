package comments

import (
	"context"
	"fmt"
	"testing"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

type reactionKey struct {
	commentID string
	userID    string
}

type commentRepoStub struct {
	comments map[string]*models.Comment
	likes    map[reactionKey]bool
	dislikes map[reactionKey]bool
	nextID   int
}

func newCommentRepoStub() *commentRepoStub {
	return &commentRepoStub{
		comments: make(map[string]*models.Comment),
		likes:    make(map[reactionKey]bool),
		dislikes: make(map[reactionKey]bool),
	}
}

func (s *commentRepoStub) CreateComment(_ context.Context, comment *models.Comment) (string, error) {
	s.nextID++
	comment.ID = fmt.Sprintf("comment-%d", s.nextID)
	clone := *comment
	s.comments[comment.ID] = &clone
	return comment.ID, nil
}

func (s *commentRepoStub) FindByID(_ context.Context, commentID string) (*models.Comment, error) {
	comment, found := s.comments[commentID]
	if !found {
		return nil, nil
	}
	clone := *comment
	return &clone, nil
}

func (s *commentRepoStub) FindByLectureID(_ context.Context, lectureID string) ([]models.Comment, error) {
	var result []models.Comment
	for _, comment := range s.comments {
		if comment.LectureID == lectureID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func (s *commentRepoStub) DeleteByID(_ context.Context, commentID string) error {
	delete(s.comments, commentID)
	return nil
}

func (s *commentRepoStub) AdjustReplyCount(_ context.Context, commentID string, delta int64) error {
	if comment, found := s.comments[commentID]; found {
		comment.ReplyCount += delta
	}
	return nil
}

func (s *commentRepoStub) FindLike(_ context.Context, commentID, userID string) (*models.CommentReaction, error) {
	if s.likes[reactionKey{commentID, userID}] {
		return &models.CommentReaction{CommentID: commentID, UserID: userID}, nil
	}
	return nil, nil
}

func (s *commentRepoStub) FindDislike(_ context.Context, commentID, userID string) (*models.CommentReaction, error) {
	if s.dislikes[reactionKey{commentID, userID}] {
		return &models.CommentReaction{CommentID: commentID, UserID: userID}, nil
	}
	return nil, nil
}

func (s *commentRepoStub) InsertLike(_ context.Context, commentID, userID string) error {
	s.likes[reactionKey{commentID, userID}] = true
	return nil
}

func (s *commentRepoStub) InsertDislike(_ context.Context, commentID, userID string) error {
	s.dislikes[reactionKey{commentID, userID}] = true
	return nil
}

func (s *commentRepoStub) RemoveLike(_ context.Context, commentID, userID string) error {
	delete(s.likes, reactionKey{commentID, userID})
	return nil
}

func (s *commentRepoStub) RemoveDislike(_ context.Context, commentID, userID string) error {
	delete(s.dislikes, reactionKey{commentID, userID})
	return nil
}

func (s *commentRepoStub) AdjustCounters(_ context.Context, commentID string, likesDelta, dislikesDelta int64) (*models.Comment, error) {
	comment, found := s.comments[commentID]
	if !found {
		return nil, nil
	}
	comment.Likes += likesDelta
	comment.Dislikes += dislikesDelta
	clone := *comment
	return &clone, nil
}

func (s *commentRepoStub) DeleteReactionsByCommentID(_ context.Context, commentID string) error {
	for key := range s.likes {
		if key.commentID == commentID {
			delete(s.likes, key)
		}
	}
	for key := range s.dislikes {
		if key.commentID == commentID {
			delete(s.dislikes, key)
		}
	}
	return nil
}

type lectureRepoStub struct {
	lectures map[string]*models.Lecture
}

func (s *lectureRepoStub) CreateLecture(_ context.Context, lecture *models.Lecture) (string, error) {
	return lecture.ID, nil
}

func (s *lectureRepoStub) FindByID(_ context.Context, lectureID string) (*models.Lecture, error) {
	lecture, found := s.lectures[lectureID]
	if !found {
		return nil, nil
	}
	return lecture, nil
}

func (s *lectureRepoStub) FindByCourseID(_ context.Context, _ string) ([]models.Lecture, error) {
	return nil, nil
}

func (s *lectureRepoStub) FindByIDs(_ context.Context, _ []string) ([]models.Lecture, error) {
	return nil, nil
}

func (s *lectureRepoStub) UpdateLecture(_ context.Context, _ *models.Lecture) error { return nil }

func (s *lectureRepoStub) DeleteByID(_ context.Context, _ string) error { return nil }

type authorRepoStub struct {
	users map[string]*models.User
}

func (s *authorRepoStub) CreateUser(_ context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (s *authorRepoStub) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *authorRepoStub) FindByID(_ context.Context, userID string) (*models.User, error) {
	user, found := s.users[userID]
	if !found {
		return nil, nil
	}
	return user, nil
}

func (s *authorRepoStub) FindByResetToken(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *authorRepoStub) UpdateUser(_ context.Context, _ *models.User) error { return nil }

func (s *authorRepoStub) DeleteByID(_ context.Context, _ string) error { return nil }

func newTestCommentUsecase(commentRepo *commentRepoStub) *commentUsecase {
	lectureRepo := &lectureRepoStub{lectures: map[string]*models.Lecture{
		"lecture-1": {ID: "lecture-1", CourseID: "course-1", Title: "Intro"},
	}}
	userRepo := &authorRepoStub{users: map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Asha"},
	}}
	uc := NewCommentUsecase(commentRepo, lectureRepo, userRepo)
	return uc.(*commentUsecase)
}

func seedComment(repo *commentRepoStub, likes, dislikes int64) string {
	repo.nextID++
	id := fmt.Sprintf("comment-%d", repo.nextID)
	repo.comments[id] = &models.Comment{
		ID:        id,
		LectureID: "lecture-1",
		UserID:    "author-1",
		Content:   "nice lecture",
		Likes:     likes,
		Dislikes:  dislikes,
	}
	return id
}

func TestLikeComment(t *testing.T) {
	t.Run("Fresh Like Increments Counter", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)

		result, err := uc.LikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Likes)
		assert.Equal(t, int64(0), result.Dislikes)
		assert.True(t, repo.likes[reactionKey{commentID, "user-1"}], "like row should exist")
	})

	t.Run("Second Like Toggles Off", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 1, 0)
		repo.likes[reactionKey{commentID, "user-1"}] = true
		uc := newTestCommentUsecase(repo)

		result, err := uc.LikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Likes, "toggling off removes the like")
		assert.False(t, repo.likes[reactionKey{commentID, "user-1"}], "like row should be gone")
	})

	t.Run("Like Switches An Existing Dislike", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 0, 1)
		repo.dislikes[reactionKey{commentID, "user-1"}] = true
		uc := newTestCommentUsecase(repo)

		result, err := uc.LikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Likes)
		assert.Equal(t, int64(0), result.Dislikes, "switch decrements the opposite counter in the same call")
		assert.True(t, repo.likes[reactionKey{commentID, "user-1"}])
		assert.False(t, repo.dislikes[reactionKey{commentID, "user-1"}])
	})

	t.Run("Unknown Comment", func(t *testing.T) {
		repo := newCommentRepoStub()
		uc := newTestCommentUsecase(repo)

		result, err := uc.LikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: "missing"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDislikeComment(t *testing.T) {
	t.Run("Fresh Dislike Increments Counter", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)

		result, err := uc.DislikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Dislikes)
	})

	t.Run("Second Dislike Toggles Off", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 0, 1)
		repo.dislikes[reactionKey{commentID, "user-1"}] = true
		uc := newTestCommentUsecase(repo)

		result, err := uc.DislikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Dislikes)
		assert.False(t, repo.dislikes[reactionKey{commentID, "user-1"}])
	})

	t.Run("Dislike Switches An Existing Like", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 1, 0)
		repo.likes[reactionKey{commentID, "user-1"}] = true
		uc := newTestCommentUsecase(repo)

		result, err := uc.DislikeComment(context.Background(), "user-1", &requests.ReactToComment{LectureID: "lecture-1", CommentID: commentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Likes)
		assert.Equal(t, int64(1), result.Dislikes)
		assert.False(t, repo.likes[reactionKey{commentID, "user-1"}])
		assert.True(t, repo.dislikes[reactionKey{commentID, "user-1"}])
	})
}

func TestWriteComment(t *testing.T) {
	t.Run("Creates Comment On Existing Lecture", func(t *testing.T) {
		repo := newCommentRepoStub()
		uc := newTestCommentUsecase(repo)

		result, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "lecture-1", Content: "great"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Rejects Unknown Lecture", func(t *testing.T) {
		repo := newCommentRepoStub()
		uc := newTestCommentUsecase(repo)

		_, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "missing", Content: "great"})

		assert.Error(t, err)
	})

	t.Run("Rejects Unknown Parent Comment", func(t *testing.T) {
		repo := newCommentRepoStub()
		uc := newTestCommentUsecase(repo)

		_, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "lecture-1", Content: "reply", ParentCommentID: "missing"})

		assert.Error(t, err)
	})

	t.Run("Threads Under Existing Parent", func(t *testing.T) {
		repo := newCommentRepoStub()
		parentID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)

		result, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "lecture-1", Content: "reply", ParentCommentID: parentID})

		assert.NoError(t, err)
		assert.Equal(t, parentID, result.ParentCommentID)
		assert.Equal(t, int64(1), repo.comments[parentID].ReplyCount, "parent reply count tracks the new reply")
	})

	t.Run("Top-Level Comment Leaves Reply Counts Alone", func(t *testing.T) {
		repo := newCommentRepoStub()
		otherID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)

		_, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "lecture-1", Content: "great"})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), repo.comments[otherID].ReplyCount)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("Author Deletes Comment And Reactions", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 2, 1)
		repo.likes[reactionKey{commentID, "user-1"}] = true
		repo.dislikes[reactionKey{commentID, "user-2"}] = true
		uc := newTestCommentUsecase(repo)

		err := uc.DeleteComment(context.Background(), "author-1", commentID)

		assert.NoError(t, err)
		assert.NotContains(t, repo.comments, commentID)
		assert.Empty(t, repo.likes, "reaction rows are removed with the comment")
		assert.Empty(t, repo.dislikes)
	})

	t.Run("Deleting A Reply Decrements Parent Reply Count", func(t *testing.T) {
		repo := newCommentRepoStub()
		parentID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)
		reply, err := uc.WriteComment(context.Background(), "user-1", &requests.WriteComment{LectureID: "lecture-1", Content: "reply", ParentCommentID: parentID})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), repo.comments[parentID].ReplyCount)

		err = uc.DeleteComment(context.Background(), "user-1", reply.ID)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), repo.comments[parentID].ReplyCount, "delete undoes the increment")
	})

	t.Run("Non-Author Is Rejected", func(t *testing.T) {
		repo := newCommentRepoStub()
		commentID := seedComment(repo, 0, 0)
		uc := newTestCommentUsecase(repo)

		err := uc.DeleteComment(context.Background(), "someone-else", commentID)

		assert.Error(t, err)
		assert.Contains(t, repo.comments, commentID)
	})
}
