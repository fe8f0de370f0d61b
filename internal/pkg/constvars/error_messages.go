package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUserNotFound                  = "user not found"
	ErrClientCourseNotFound                = "course not found"
	ErrClientCourseAlreadyExists           = "course already exists"
	ErrClientCourseAlreadyPurchased        = "course already purchased"
	ErrClientCourseNotPurchased            = "course not purchased"
	ErrClientCourseAmountMismatch          = "course amount does not match"
	ErrClientLectureNotFound               = "lecture not found"
	ErrClientLectureAlreadyExists          = "lecture with this title already exists"
	ErrClientCommentNotFound               = "comment not found"
	ErrClientParentCommentNotFound         = "parent comment not found"
	ErrClientProgressNotFound              = "course progress not found"
	ErrClientSessionNotOwned               = "session does not belong to the user"
	ErrClientCheckoutSessionNotFound       = "checkout session not found"
	ErrClientPaymentProviderUnavailable    = "payment provider is currently unavailable, please retry"
	ErrClientWebhookSignatureInvalid       = "webhook signature verification failed"
	ErrClientResetPasswordTokenExpired     = "your reset password request already expired"
	ErrClientResetPasswordTokenInvalid     = "invalid reset password token"
	ErrClientPurchaseNotRefundable         = "purchase is not eligible for refund"
	ErrClientPurchaseNotFound              = "purchase record not found"
	ErrClientNotCourseOwner                = "only the course instructor can do this"
	ErrClientNotCommentOwner               = "only the comment author can do this"
	ErrClientUploadNotFound                = "uploaded object not found"
	ErrClientUploadTooLarge                = "uploaded file exceeds the allowed size"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevBuildRequest           = "encountering error while building request DTO"
	ErrDevValidationFailed       = "validation failed"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeHTTPResponse     = "failed to decode HTTP response body"
	ErrDevEmailAlreadyExists     = "email already exists"
	ErrDevUserNotExists          = "user not exists in our system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevReadRequestBody        = "failed to read request body"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject  = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToPresignObject = "failed to presign object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToStatObject    = "failed to stat object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToRemoveObject  = "failed to remove object from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq exchange %s"

	// Payment provider messages
	ErrDevStripeCreateSession   = "failed to create checkout session on payment provider"
	ErrDevStripeRetrieveSession = "failed to retrieve checkout session from payment provider"
	ErrDevStripeBadSignature    = "webhook payload signature verification failed"
	ErrDevStripeParseEvent      = "failed to parse webhook event payload"
	ErrDevStripeCreateRefund    = "failed to create refund on payment provider"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
