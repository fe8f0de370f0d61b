package purchases

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

type PurchaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewPurchaseMongoRepository(db *mongo.Client, dbName string) contracts.PurchaseRepository {
	return &PurchaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCoursePurchases),
	}
}

// CreatePurchase inserts the record under the caller's id when one is set.
// Checkout mints the id up front so the provider session metadata can carry
// it before the record exists.
func (r *PurchaseMongoRepository) CreatePurchase(ctx context.Context, purchaseModel *models.CoursePurchase) (string, error) {
	objectID := primitive.NewObjectID()
	if purchaseModel.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(purchaseModel.ID)
		if err != nil {
			return "", exceptions.ErrMongoDBNotObjectID(err)
		}
		objectID = parsed
	}
	now := time.Now()
	purchaseModel.CreatedAt = now
	purchaseModel.UpdatedAt = now
	document := bson.M{
		"_id":           objectID,
		"courseId":      purchaseModel.CourseID,
		"userId":        purchaseModel.UserID,
		"amount":        purchaseModel.Amount,
		"currency":      purchaseModel.Currency,
		"status":        purchaseModel.Status,
		"paymentMethod": purchaseModel.PaymentMethod,
		"paymentId":     purchaseModel.PaymentID,
		"sessionId":     purchaseModel.SessionID,
		"createdAt":     purchaseModel.CreatedAt,
		"updatedAt":     purchaseModel.UpdatedAt,
	}
	if _, err := r.Collection.InsertOne(ctx, document); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	purchaseModel.ID = objectID.Hex()
	return purchaseModel.ID, nil
}

func (r *PurchaseMongoRepository) FindByID(ctx context.Context, purchaseID string) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	objectID, err := primitive.ObjectIDFromHex(purchaseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &purchase, nil
}

func (r *PurchaseMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	err := r.Collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &purchase, nil
}

func (r *PurchaseMongoRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &purchase, nil
}

func (r *PurchaseMongoRepository) FindCompletedByUserID(ctx context.Context, userID string) ([]models.CoursePurchase, error) {
	filter := bson.M{"userId": userID, "status": models.PaymentStatusCompleted}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var purchases []models.CoursePurchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return purchases, nil
}

// UpdatePurchase rewrites the checkout fields, including status, so a failed
// record reopens to pending when its checkout is retried. Completed records
// are excluded from the filter; a confirmation that lands concurrently must
// not be rolled back.
func (r *PurchaseMongoRepository) UpdatePurchase(ctx context.Context, purchase *models.CoursePurchase) error {
	objectID, err := primitive.ObjectIDFromHex(purchase.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	purchase.UpdatedAt = time.Now()
	filter := bson.M{"_id": objectID, "status": bson.M{"$ne": models.PaymentStatusCompleted}}
	update := bson.M{"$set": bson.M{
		"amount":        purchase.Amount,
		"currency":      purchase.Currency,
		"status":        purchase.Status,
		"paymentMethod": purchase.PaymentMethod,
		"paymentId":     purchase.PaymentID,
		"sessionId":     purchase.SessionID,
		"updatedAt":     purchase.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// CompleteIfPending moves the record to completed only when it still reads
// pending, in a single conditional update. Concurrent webhook and poll
// deliveries race on this filter and exactly one of them modifies the
// document.
func (r *PurchaseMongoRepository) CompleteIfPending(ctx context.Context, purchaseID, paymentID string) (bool, error) {
	return r.transitionIfPending(ctx, purchaseID, bson.M{
		"status":    models.PaymentStatusCompleted,
		"paymentId": paymentID,
		"updatedAt": time.Now(),
	})
}

// FailIfPending is the failure-class counterpart of CompleteIfPending. A
// non-empty paymentID is recorded alongside the transition so failed records
// keep a trace of the attempt that sank them.
func (r *PurchaseMongoRepository) FailIfPending(ctx context.Context, purchaseID, paymentID string) (bool, error) {
	fields := bson.M{
		"status":    models.PaymentStatusFailed,
		"updatedAt": time.Now(),
	}
	if paymentID != "" {
		fields["paymentId"] = paymentID
	}
	return r.transitionIfPending(ctx, purchaseID, fields)
}

func (r *PurchaseMongoRepository) transitionIfPending(ctx context.Context, purchaseID string, fields bson.M) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(purchaseID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "status": models.PaymentStatusPending}
	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *PurchaseMongoRepository) MarkRefunded(ctx context.Context, purchaseID, refundID, reason string, amount int64) error {
	objectID, err := primitive.ObjectIDFromHex(purchaseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	now := time.Now()
	filter := bson.M{"_id": objectID, "status": models.PaymentStatusCompleted}
	update := bson.M{"$set": bson.M{
		"status":       models.PaymentStatusRefunded,
		"refundId":     refundID,
		"refundAmount": amount,
		"refundReason": reason,
		"refundedAt":   now,
		"updatedAt":    now,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.ModifiedCount == 0 {
		return exceptions.ErrPurchaseNotRefundable(nil)
	}
	return nil
}
