package comments

import (
	"context"
	"time"

	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentMongoRepository struct {
	Comments *mongo.Collection
	Likes    *mongo.Collection
	Dislikes *mongo.Collection
}

func NewCommentMongoRepository(db *mongo.Client, dbName string) contracts.CommentRepository {
	database := db.Database(dbName)
	return &CommentMongoRepository{
		Comments: database.Collection(constvars.MongoCollectionComments),
		Likes:    database.Collection(constvars.MongoCollectionCommentLikes),
		Dislikes: database.Collection(constvars.MongoCollectionCommentDislikes),
	}
}

func (r *CommentMongoRepository) CreateComment(ctx context.Context, commentModel *models.Comment) (string, error) {
	now := time.Now()
	commentModel.CreatedAt = now
	commentModel.UpdatedAt = now
	result, err := r.Comments.InsertOne(ctx, commentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CommentMongoRepository) FindByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment
	objectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Comments.FindOne(ctx, bson.M{"_id": objectID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &comment, nil
}

func (r *CommentMongoRepository) FindByLectureID(ctx context.Context, lectureID string) ([]models.Comment, error) {
	cursor, err := r.Comments.Find(ctx, bson.M{"lectureId": lectureID}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return comments, nil
}

func (r *CommentMongoRepository) DeleteByID(ctx context.Context, commentID string) error {
	objectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Comments.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// AdjustReplyCount moves the denormalized reply counter on a parent comment.
// Callers pass +1 when a reply lands and -1 when one is deleted.
func (r *CommentMongoRepository) AdjustReplyCount(ctx context.Context, commentID string, delta int64) error {
	objectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$inc": bson.M{"replyCount": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Comments.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CommentMongoRepository) FindLike(ctx context.Context, commentID, userID string) (*models.CommentReaction, error) {
	return findReaction(ctx, r.Likes, commentID, userID)
}

func (r *CommentMongoRepository) FindDislike(ctx context.Context, commentID, userID string) (*models.CommentReaction, error) {
	return findReaction(ctx, r.Dislikes, commentID, userID)
}

func (r *CommentMongoRepository) InsertLike(ctx context.Context, commentID, userID string) error {
	return insertReaction(ctx, r.Likes, commentID, userID)
}

func (r *CommentMongoRepository) InsertDislike(ctx context.Context, commentID, userID string) error {
	return insertReaction(ctx, r.Dislikes, commentID, userID)
}

func (r *CommentMongoRepository) RemoveLike(ctx context.Context, commentID, userID string) error {
	return removeReaction(ctx, r.Likes, commentID, userID)
}

func (r *CommentMongoRepository) RemoveDislike(ctx context.Context, commentID, userID string) error {
	return removeReaction(ctx, r.Dislikes, commentID, userID)
}

// AdjustCounters applies like/dislike deltas in one update and returns the
// comment as it stands after the adjustment.
func (r *CommentMongoRepository) AdjustCounters(ctx context.Context, commentID string, likesDelta, dislikesDelta int64) (*models.Comment, error) {
	objectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$inc": bson.M{"likes": likesDelta, "dislikes": dislikesDelta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	var comment models.Comment
	err = r.Comments.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &comment, nil
}

func (r *CommentMongoRepository) DeleteReactionsByCommentID(ctx context.Context, commentID string) error {
	filter := bson.M{"commentId": commentID}
	if _, err := r.Likes.DeleteMany(ctx, filter); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if _, err := r.Dislikes.DeleteMany(ctx, filter); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func findReaction(ctx context.Context, collection *mongo.Collection, commentID, userID string) (*models.CommentReaction, error) {
	var reaction models.CommentReaction
	err := collection.FindOne(ctx, bson.M{"commentId": commentID, "userId": userID}).Decode(&reaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &reaction, nil
}

func insertReaction(ctx context.Context, collection *mongo.Collection, commentID, userID string) error {
	now := time.Now()
	reaction := models.CommentReaction{
		CommentID: commentID,
		UserID:    userID,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	_, err := collection.InsertOne(ctx, reaction)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func removeReaction(ctx context.Context, collection *mongo.Collection, commentID, userID string) error {
	_, err := collection.DeleteOne(ctx, bson.M{"commentId": commentID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
