package lectures

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

type LectureMongoRepository struct {
	Collection *mongo.Collection
}

func NewLectureMongoRepository(db *mongo.Client, dbName string) contracts.LectureRepository {
	return &LectureMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLectures),
	}
}

func (r *LectureMongoRepository) CreateLecture(ctx context.Context, lectureModel *models.Lecture) (string, error) {
	now := time.Now()
	lectureModel.CreatedAt = now
	lectureModel.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, lectureModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LectureMongoRepository) FindByID(ctx context.Context, lectureID string) (*models.Lecture, error) {
	var lecture models.Lecture
	objectID, err := primitive.ObjectIDFromHex(lectureID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&lecture)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &lecture, nil
}

func (r *LectureMongoRepository) FindByCourseID(ctx context.Context, courseID string) ([]models.Lecture, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"courseId": courseID}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var lectures []models.Lecture
	if err := cursor.All(ctx, &lectures); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return lectures, nil
}

func (r *LectureMongoRepository) FindByIDs(ctx context.Context, lectureIDs []string) ([]models.Lecture, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(lectureIDs))
	for _, lectureID := range lectureIDs {
		objectID, err := primitive.ObjectIDFromHex(lectureID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var lectures []models.Lecture
	if err := cursor.All(ctx, &lectures); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return lectures, nil
}

func (r *LectureMongoRepository) UpdateLecture(ctx context.Context, lecture *models.Lecture) error {
	objectID, err := primitive.ObjectIDFromHex(lecture.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	lecture.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"slug":        lecture.Slug,
		"title":       lecture.Title,
		"description": lecture.Description,
		"videoUrl":    lecture.VideoURL,
		"duration":    lecture.Duration,
		"isPreview":   lecture.IsPreview,
		"publicId":    lecture.PublicID,
		"order":       lecture.Order,
		"updatedAt":   lecture.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *LectureMongoRepository) DeleteByID(ctx context.Context, lectureID string) error {
	objectID, err := primitive.ObjectIDFromHex(lectureID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
