package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingUserIDKey     = "user_id"
	LoggingCourseIDKey   = "course_id"
	LoggingLectureIDKey  = "lecture_id"
	LoggingCommentIDKey  = "comment_id"
	LoggingPurchaseIDKey = "purchase_id"
	LoggingSessionIDKey  = "checkout_session_id"
	LoggingEventTypeKey  = "event_type"
	LoggingRedisKey      = "redis_key"
	LoggingUploadIDKey   = "upload_id"
)
