package progress

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

type ProgressMongoRepository struct {
	Collection *mongo.Collection
}

func NewProgressMongoRepository(db *mongo.Client, dbName string) contracts.ProgressRepository {
	return &ProgressMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCourseProgress),
	}
}

func (r *ProgressMongoRepository) CreateProgress(ctx context.Context, progressModel *models.CourseProgress) (string, error) {
	now := time.Now()
	progressModel.CreatedAt = now
	progressModel.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, progressModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProgressMongoRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CourseProgress, error) {
	var progress models.CourseProgress
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &progress, nil
}

func (r *ProgressMongoRepository) UpdateProgress(ctx context.Context, progress *models.CourseProgress) error {
	objectID, err := primitive.ObjectIDFromHex(progress.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	progress.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"isCompleted":          progress.IsCompleted,
		"completionPercentage": progress.CompletionPercentage,
		"lectureProgress":      progress.Lectures,
		"lastAccessed":         progress.LastAccessed,
		"updatedAt":            progress.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
