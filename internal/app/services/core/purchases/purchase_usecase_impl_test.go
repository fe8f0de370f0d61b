package purchases

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type purchaseRepoStub struct {
	records map[string]*models.CoursePurchase
	nextID  int
}

func newPurchaseRepoStub() *purchaseRepoStub {
	return &purchaseRepoStub{records: make(map[string]*models.CoursePurchase)}
}

func (s *purchaseRepoStub) put(purchase *models.CoursePurchase) *models.CoursePurchase {
	clone := *purchase
	s.records[clone.ID] = &clone
	return &clone
}

func (s *purchaseRepoStub) CreatePurchase(_ context.Context, purchase *models.CoursePurchase) (string, error) {
	if purchase.ID == "" {
		s.nextID++
		purchase.ID = fmt.Sprintf("purchase-%d", s.nextID)
	}
	clone := *purchase
	s.records[purchase.ID] = &clone
	return purchase.ID, nil
}

func (s *purchaseRepoStub) FindByID(_ context.Context, purchaseID string) (*models.CoursePurchase, error) {
	purchase, found := s.records[purchaseID]
	if !found {
		return nil, nil
	}
	clone := *purchase
	return &clone, nil
}

func (s *purchaseRepoStub) FindBySessionID(_ context.Context, sessionID string) (*models.CoursePurchase, error) {
	for _, purchase := range s.records {
		if purchase.SessionID == sessionID {
			clone := *purchase
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *purchaseRepoStub) FindByUserAndCourse(_ context.Context, userID, courseID string) (*models.CoursePurchase, error) {
	for _, purchase := range s.records {
		if purchase.UserID == userID && purchase.CourseID == courseID {
			clone := *purchase
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *purchaseRepoStub) FindCompletedByUserID(_ context.Context, userID string) ([]models.CoursePurchase, error) {
	var result []models.CoursePurchase
	for _, purchase := range s.records {
		if purchase.UserID == userID && purchase.Status == models.PaymentStatusCompleted {
			result = append(result, *purchase)
		}
	}
	return result, nil
}

// UpdatePurchase mirrors the exact field list the mongo repository writes,
// so a field dropped there goes missing here too.
func (s *purchaseRepoStub) UpdatePurchase(_ context.Context, purchase *models.CoursePurchase) error {
	record, found := s.records[purchase.ID]
	if !found || record.Status == models.PaymentStatusCompleted {
		return nil
	}
	record.Amount = purchase.Amount
	record.Currency = purchase.Currency
	record.Status = purchase.Status
	record.PaymentMethod = purchase.PaymentMethod
	record.PaymentID = purchase.PaymentID
	record.SessionID = purchase.SessionID
	return nil
}

func (s *purchaseRepoStub) CompleteIfPending(_ context.Context, purchaseID, paymentID string) (bool, error) {
	purchase, found := s.records[purchaseID]
	if !found || purchase.Status != models.PaymentStatusPending {
		return false, nil
	}
	purchase.Status = models.PaymentStatusCompleted
	purchase.PaymentID = paymentID
	return true, nil
}

func (s *purchaseRepoStub) FailIfPending(_ context.Context, purchaseID, paymentID string) (bool, error) {
	purchase, found := s.records[purchaseID]
	if !found || purchase.Status != models.PaymentStatusPending {
		return false, nil
	}
	purchase.Status = models.PaymentStatusFailed
	if paymentID != "" {
		purchase.PaymentID = paymentID
	}
	return true, nil
}

func (s *purchaseRepoStub) MarkRefunded(_ context.Context, purchaseID, refundID, reason string, amount int64) error {
	purchase, found := s.records[purchaseID]
	if !found || purchase.Status != models.PaymentStatusCompleted {
		return exceptions.ErrPurchaseNotRefundable(nil)
	}
	now := time.Now()
	purchase.Status = models.PaymentStatusRefunded
	purchase.RefundID = refundID
	purchase.RefundReason = reason
	purchase.RefundAmount = amount
	purchase.RefundedAt = &now
	return nil
}

type courseRepoStub struct {
	courses map[string]*models.Course
}

func (s *courseRepoStub) CreateCourse(_ context.Context, course *models.Course) (string, error) {
	return course.ID, nil
}

func (s *courseRepoStub) FindByID(_ context.Context, courseID string) (*models.Course, error) {
	course, found := s.courses[courseID]
	if !found {
		return nil, nil
	}
	return course, nil
}

func (s *courseRepoStub) FindBySlug(_ context.Context, _ string) (*models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) FindPublished(_ context.Context) ([]models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) SearchPublished(_ context.Context, _ string) ([]models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) FindByInstructorID(_ context.Context, _ string) ([]models.Course, error) {
	return nil, nil
}

func (s *courseRepoStub) UpdateCourse(_ context.Context, _ *models.Course) error { return nil }

func (s *courseRepoStub) DeleteByID(_ context.Context, _ string) error { return nil }

type userRepoStub struct {
	users map[string]*models.User
}

func (s *userRepoStub) CreateUser(_ context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (s *userRepoStub) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *userRepoStub) FindByID(_ context.Context, userID string) (*models.User, error) {
	user, found := s.users[userID]
	if !found {
		return nil, nil
	}
	return user, nil
}

func (s *userRepoStub) FindByResetToken(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *userRepoStub) UpdateUser(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) DeleteByID(_ context.Context, _ string) error { return nil }

type gatewayStub struct {
	event          *responses.WebhookEvent
	verifyErr      error
	session        *responses.CheckoutSession
	retrieveErr    error
	refundID       string
	refundErr      error
	createdSession *responses.CheckoutSession
}

func (s *gatewayStub) CreateCheckoutSession(_ context.Context, _ *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	if s.createdSession == nil {
		return nil, errors.New("no session configured")
	}
	return s.createdSession, nil
}

func (s *gatewayStub) RetrieveCheckoutSession(_ context.Context, _ string) (*responses.CheckoutSession, error) {
	return s.session, s.retrieveErr
}

func (s *gatewayStub) VerifyWebhookSignature(_ []byte, _ string) (*responses.WebhookEvent, error) {
	return s.event, s.verifyErr
}

func (s *gatewayStub) CreateRefund(_ context.Context, _, _ string) (string, error) {
	return s.refundID, s.refundErr
}

func pendingPurchase(id string) *models.CoursePurchase {
	return &models.CoursePurchase{
		ID:            id,
		CourseID:      "course-1",
		UserID:        "user-1",
		Amount:        500,
		Currency:      constvars.PurchaseCurrency,
		Status:        models.PaymentStatusPending,
		PaymentMethod: constvars.PaymentMethodCard,
		PaymentID:     constvars.PaymentIDSentinel,
		SessionID:     "cs_test_1",
		TimeModel:     models.TimeModel{CreatedAt: time.Now()},
	}
}

func paidSession(purchaseID string) *responses.CheckoutSession {
	return &responses.CheckoutSession{
		ID:            "cs_test_1",
		AmountTotal:   50000,
		Currency:      "inr",
		PaymentStatus: "paid",
		PaymentIntent: "pi_123",
		Metadata: map[string]string{
			constvars.StripeMetadataCourseOrderIDKey: purchaseID,
			constvars.StripeMetadataUserIDKey:        "user-1",
			constvars.StripeMetadataCourseIDKey:      "course-1",
		},
	}
}

func newTestUsecase(purchaseRepo *purchaseRepoStub, userRepo *userRepoStub, gateway *gatewayStub) *purchaseUsecase {
	courseRepo := &courseRepoStub{courses: map[string]*models.Course{
		"course-1": {ID: "course-1", Title: "Go From Scratch", Price: 500},
	}}
	uc := NewPurchaseUsecase(purchaseRepo, courseRepo, userRepo, gateway, &config.InternalConfig{}, zap.NewNop())
	return uc.(*purchaseUsecase)
}

func TestHandleProviderWebhook(t *testing.T) {
	t.Run("Success Event Completes Pending Purchase", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *paidSession("purchase-1"),
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err, "authenticated event should be acknowledged")
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusCompleted, record.Status, "purchase should be completed")
		assert.Equal(t, "pi_123", record.PaymentID, "payment reference should be recorded")
		assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses, "enrollment should be granted")
	})

	t.Run("Replayed Success Event Is A No-Op", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		completed.PaymentID = "pi_123"
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", EnrolledCourses: []string{"course-1"}}}}
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *paidSession("purchase-1"),
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusCompleted, record.Status)
		assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses, "replay must not enroll twice")
	})

	t.Run("Amount Tampering Marks Purchase Failed", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.AmountTotal = 100
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *session,
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err, "tampered event is still acknowledged")
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusFailed, record.Status, "cross-check failure should fail the purchase")
		assert.Empty(t, userRepo.users["user-1"].EnrolledCourses, "no enrollment on failed cross-check")
	})

	t.Run("Missing Payment Reference Fails Cross-Check", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.PaymentIntent = ""
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *session,
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, purchaseRepo.records["purchase-1"].Status)
	})

	t.Run("Currency Comparison Is Case-Insensitive", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.Currency = "InR"
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *session,
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCompleted, purchaseRepo.records["purchase-1"].Status)
	})

	t.Run("Signature Failure Is Rejected", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		userRepo := &userRepoStub{users: map[string]*models.User{}}
		gateway := &gatewayStub{verifyErr: exceptions.ErrStripeBadSignature(nil)}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "bad-sig")

		assert.Error(t, err, "only signature failures bubble up to the controller")
	})

	t.Run("Unknown Purchase Is Acknowledged And Dropped", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		userRepo := &userRepoStub{users: map[string]*models.User{}}
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *paidSession("no-such-purchase"),
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
	})

	t.Run("Unactionable Event Type Is Acknowledged", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    "charge.updated",
			Session: *paidSession("purchase-1"),
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, purchaseRepo.records["purchase-1"].Status, "record must stay untouched")
	})

	t.Run("Failure Event Marks Pending Purchase Failed", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.PaymentStatus = "unpaid"
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventAsyncPaymentFailed,
			Session: *session,
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusFailed, record.Status)
		assert.Equal(t, "pi_123", record.PaymentID, "payment reference is kept for support lookups")
	})

	t.Run("Failure Event Leaves Completed Purchase Alone", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionExpired,
			Session: *paidSession("purchase-1"),
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusCompleted, record.Status, "completed is a terminal state for failure events")
		assert.Equal(t, constvars.PaymentIDSentinel, record.PaymentID, "a terminal record keeps its fields, including the payment reference")
	})

	t.Run("Missing Metadata Falls Back To Session Lookup", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		delete(session.Metadata, constvars.StripeMetadataCourseOrderIDKey)
		gateway := &gatewayStub{event: &responses.WebhookEvent{
			Type:    constvars.StripeEventCheckoutSessionCompleted,
			Session: *session,
		}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		err := uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusCompleted, record.Status, "the session id persisted at checkout resolves the record")
		assert.Equal(t, "pi_123", record.PaymentID)
	})
}

func TestVerifySession(t *testing.T) {
	t.Run("Paid Session Completes Pending Purchase", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{session: paidSession("purchase-1")}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.VerifySession(context.Background(), "user-1", &requests.VerifySession{SessionID: "cs_test_1"})

		assert.NoError(t, err)
		assert.True(t, result.Paid)
		assert.Equal(t, models.PaymentStatusCompleted, purchaseRepo.records["purchase-1"].Status)
		assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses)
	})

	t.Run("Foreign Session Is Rejected", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{session: paidSession("purchase-1")}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.VerifySession(context.Background(), "someone-else", &requests.VerifySession{SessionID: "cs_test_1"})

		assert.Error(t, err, "session ownership is checked before any state change")
		assert.Nil(t, result)
		assert.Equal(t, models.PaymentStatusPending, purchaseRepo.records["purchase-1"].Status)
	})

	t.Run("Unpaid Session Reports Not Paid", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.PaymentStatus = "unpaid"
		gateway := &gatewayStub{session: session}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.VerifySession(context.Background(), "user-1", &requests.VerifySession{SessionID: "cs_test_1"})

		assert.NoError(t, err)
		assert.False(t, result.Paid)
		assert.Equal(t, models.PaymentStatusPending, purchaseRepo.records["purchase-1"].Status, "unpaid poll must not transition the record")
	})

	t.Run("Completed Purchase Polls Idempotently", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", EnrolledCourses: []string{"course-1"}}}}
		gateway := &gatewayStub{session: paidSession("purchase-1")}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.VerifySession(context.Background(), "user-1", &requests.VerifySession{SessionID: "cs_test_1"})

		assert.NoError(t, err)
		assert.True(t, result.Paid)
		assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses, "poll replay must not enroll twice")
	})

	t.Run("Amount Mismatch Is Surfaced", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		session := paidSession("purchase-1")
		session.AmountTotal = 999
		gateway := &gatewayStub{session: session}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.VerifySession(context.Background(), "user-1", &requests.VerifySession{SessionID: "cs_test_1"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

// The webhook and poll entry points race in production. Whichever lands
// second must observe the terminal state and change nothing.
func TestWebhookAndPollCommute(t *testing.T) {
	runWebhook := func(uc *purchaseUsecase) {
		_ = uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")
	}
	runPoll := func(uc *purchaseUsecase) {
		_, _ = uc.VerifySession(context.Background(), "user-1", &requests.VerifySession{SessionID: "cs_test_1"})
	}

	orders := map[string][]func(*purchaseUsecase){
		"Webhook Then Poll": {runWebhook, runPoll},
		"Poll Then Webhook": {runPoll, runWebhook},
	}

	for name, steps := range orders {
		t.Run(name, func(t *testing.T) {
			purchaseRepo := newPurchaseRepoStub()
			purchaseRepo.put(pendingPurchase("purchase-1"))
			userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
			gateway := &gatewayStub{
				event: &responses.WebhookEvent{
					Type:    constvars.StripeEventCheckoutSessionCompleted,
					Session: *paidSession("purchase-1"),
				},
				session: paidSession("purchase-1"),
			}
			uc := newTestUsecase(purchaseRepo, userRepo, gateway)

			for _, step := range steps {
				step(uc)
			}

			record := purchaseRepo.records["purchase-1"]
			assert.Equal(t, models.PaymentStatusCompleted, record.Status)
			assert.Equal(t, "pi_123", record.PaymentID)
			assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses, "both orders must enroll exactly once")
		})
	}
}

func TestProcessRefund(t *testing.T) {
	t.Run("Refunds Completed Purchase Within Window", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		completed.PaymentID = "pi_123"
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", EnrolledCourses: []string{"course-1"}}}}
		gateway := &gatewayStub{refundID: "re_123"}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.ProcessRefund(context.Background(), "user-1", &requests.ProcessRefund{CourseID: "course-1", Reason: "changed my mind"})

		assert.NoError(t, err)
		assert.Equal(t, "re_123", result.RefundID)
		assert.Equal(t, int64(500), result.RefundAmount, "zero requested amount defaults to the full purchase amount")
		assert.Equal(t, models.PaymentStatusRefunded, purchaseRepo.records["purchase-1"].Status)
		assert.Empty(t, userRepo.users["user-1"].EnrolledCourses, "refund revokes the enrollment")
	})

	t.Run("Caps Refund At Purchase Amount", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{refundID: "re_123"}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.ProcessRefund(context.Background(), "user-1", &requests.ProcessRefund{CourseID: "course-1", Amount: 10000, Reason: "partial"})

		assert.NoError(t, err)
		assert.Equal(t, int64(500), result.RefundAmount)
	})

	t.Run("Rejects Refund Outside Window", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		stale := pendingPurchase("purchase-1")
		stale.Status = models.PaymentStatusCompleted
		stale.CreatedAt = time.Now().AddDate(0, 0, -(constvars.RefundWindowInDays + 1))
		purchaseRepo.put(stale)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{refundID: "re_123"}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.ProcessRefund(context.Background(), "user-1", &requests.ProcessRefund{CourseID: "course-1", Reason: "too late"})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, models.PaymentStatusCompleted, purchaseRepo.records["purchase-1"].Status)
	})

	t.Run("Rejects Refund Of Pending Purchase", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		purchaseRepo.put(pendingPurchase("purchase-1"))
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1"}}}
		gateway := &gatewayStub{refundID: "re_123"}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		_, err := uc.ProcessRefund(context.Background(), "user-1", &requests.ProcessRefund{CourseID: "course-1", Reason: "not paid yet"})

		assert.Error(t, err)
	})
}

func TestInitiateCheckout(t *testing.T) {
	t.Run("Completed Purchase Blocks New Checkout", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		completed := pendingPurchase("purchase-1")
		completed.Status = models.PaymentStatusCompleted
		purchaseRepo.put(completed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", Email: "student@example.com"}}}
		gateway := &gatewayStub{createdSession: paidSession("purchase-1")}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.InitiateCheckout(context.Background(), "user-1", &requests.InitiateCheckout{CourseID: "course-1"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Failed Purchase Is Reused With Fresh Price", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		failed := pendingPurchase("purchase-1")
		failed.Status = models.PaymentStatusFailed
		failed.Amount = 300
		purchaseRepo.put(failed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", Email: "student@example.com"}}}
		gateway := &gatewayStub{createdSession: &responses.CheckoutSession{ID: "cs_test_2", URL: "https://pay.example/cs_test_2"}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.InitiateCheckout(context.Background(), "user-1", &requests.InitiateCheckout{CourseID: "course-1"})

		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/cs_test_2", result.URL)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusPending, record.Status, "reused record returns to pending")
		assert.Equal(t, int64(500), record.Amount, "amount refreshes to the current course price")
		assert.Equal(t, "cs_test_2", record.SessionID)
		assert.Len(t, purchaseRepo.records, 1, "no second record is created")
	})

	t.Run("Reused Failed Purchase Can Complete", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		failed := pendingPurchase("purchase-1")
		failed.Status = models.PaymentStatusFailed
		purchaseRepo.put(failed)
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", Email: "student@example.com"}}}
		gateway := &gatewayStub{
			createdSession: &responses.CheckoutSession{ID: "cs_test_2", URL: "https://pay.example/cs_test_2"},
			event: &responses.WebhookEvent{
				Type:    constvars.StripeEventCheckoutSessionCompleted,
				Session: *paidSession("purchase-1"),
			},
		}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		_, err := uc.InitiateCheckout(context.Background(), "user-1", &requests.InitiateCheckout{CourseID: "course-1"})
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, purchaseRepo.records["purchase-1"].Status, "retried checkout reopens the stored record")

		err = uc.HandleProviderWebhook(context.Background(), []byte(`{}`), "sig")

		assert.NoError(t, err)
		record := purchaseRepo.records["purchase-1"]
		assert.Equal(t, models.PaymentStatusCompleted, record.Status, "the reopened record must be completable")
		assert.Equal(t, []string{"course-1"}, userRepo.users["user-1"].EnrolledCourses)
	})

	t.Run("Gateway Failure Leaves No Record", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", Email: "student@example.com"}}}
		gateway := &gatewayStub{}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.InitiateCheckout(context.Background(), "user-1", &requests.InitiateCheckout{CourseID: "course-1"})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, purchaseRepo.records, "nothing is persisted when the provider call fails")
	})

	t.Run("First Checkout Creates Pending Record", func(t *testing.T) {
		purchaseRepo := newPurchaseRepoStub()
		userRepo := &userRepoStub{users: map[string]*models.User{"user-1": {ID: "user-1", Email: "student@example.com"}}}
		gateway := &gatewayStub{createdSession: &responses.CheckoutSession{ID: "cs_test_1", URL: "https://pay.example/cs_test_1"}}
		uc := newTestUsecase(purchaseRepo, userRepo, gateway)

		result, err := uc.InitiateCheckout(context.Background(), "user-1", &requests.InitiateCheckout{CourseID: "course-1"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.URL)
		assert.Len(t, purchaseRepo.records, 1)
		for _, record := range purchaseRepo.records {
			assert.Equal(t, models.PaymentStatusPending, record.Status)
			assert.Equal(t, constvars.PaymentIDSentinel, record.PaymentID)
			assert.Equal(t, constvars.PurchaseCurrency, record.Currency)
			assert.Equal(t, constvars.PaymentMethodCard, record.PaymentMethod)
		}
	})
}
