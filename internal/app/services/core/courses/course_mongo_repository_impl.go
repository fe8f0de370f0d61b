package courses

import (
	"context"
	"regexp"
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

type CourseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCourseMongoRepository(db *mongo.Client, dbName string) contracts.CourseRepository {
	return &CourseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCourses),
	}
}

func (r *CourseMongoRepository) CreateCourse(ctx context.Context, courseModel *models.Course) (string, error) {
	now := time.Now()
	courseModel.CreatedAt = now
	courseModel.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, courseModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CourseMongoRepository) FindByID(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &course, nil
}

func (r *CourseMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &course, nil
}

func (r *CourseMongoRepository) FindPublished(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"isPublished": true}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return courses, nil
}

func (r *CourseMongoRepository) SearchPublished(ctx context.Context, query string) ([]models.Course, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"isPublished": true,
		"$or": []bson.M{
			{"title": pattern},
			{"subtitle": pattern},
			{"description": pattern},
			{"category": pattern},
		},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return courses, nil
}

func (r *CourseMongoRepository) FindByInstructorID(ctx context.Context, instructorID string) ([]models.Course, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"instructor": instructorID}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return courses, nil
}

func (r *CourseMongoRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	objectID, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	course.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"slug":          course.Slug,
		"title":         course.Title,
		"subtitle":      course.Subtitle,
		"description":   course.Description,
		"category":      course.Category,
		"level":         course.Level,
		"price":         course.Price,
		"thumbnail":     course.Thumbnail,
		"lectures":      course.LectureIDs,
		"isPublished":   course.IsPublished,
		"totalLectures": course.TotalLectures,
		"totalDuration": course.TotalDuration,
		"updatedAt":     course.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CourseMongoRepository) DeleteByID(ctx context.Context, courseID string) error {
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
