package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_USER_ID_KEY    ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY  ContextKey = "user_role"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionCourses         = "courses"
	MongoCollectionLectures        = "lectures"
	MongoCollectionComments        = "comments"
	MongoCollectionCommentLikes    = "comment_likes"
	MongoCollectionCommentDislikes = "comment_dislikes"
	MongoCollectionCoursePurchases = "course_purchases"
	MongoCollectionCourseProgress  = "course_progress"
)

const (
	RedisSessionKeyFormat = "session:%s"
	RedisUploadKeyFormat  = "upload:%s"
	RedisPublishedCourses = "published_courses"
)

const (
	// PaymentIDSentinel marks a purchase that has not been confirmed by the
	// payment provider yet.
	PaymentIDSentinel = "not available"

	PaymentMethodCard = "card"
	PurchaseCurrency  = "INR"

	// RefundWindowInDays bounds how long after purchase a refund is allowed.
	RefundWindowInDays = 30
)
