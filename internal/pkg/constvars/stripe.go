package constvars

// Checkout session event types delivered by the payment provider webhook.
const (
	StripeEventCheckoutSessionCompleted      = "checkout.session.completed"
	StripeEventAsyncPaymentSucceeded         = "checkout.session.async_payment_succeeded"
	StripeEventAsyncPaymentFailed            = "checkout.session.async_payment_failed"
	StripeEventCheckoutSessionExpired        = "checkout.session.expired"
	StripePaymentStatusPaid                  = "paid"
	StripeMetadataCourseOrderIDKey           = "courseOrderId"
	StripeMetadataUserIDKey                  = "userId"
	StripeMetadataCourseIDKey                = "courseId"
	StripeSignatureTimestampPrefix           = "t="
	StripeSignatureV1Prefix                  = "v1="
	StripeSignatureToleranceInSeconds  int64 = 300
)
