package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	UserCreatedSuccess     = "user account created successfully"
	UserUpdatedSuccess     = "user profile updated successfully"
	UserDeletedSuccess     = "user deleted successfully"
	ProfileGetSuccess      = "user profile fetched successfully"
	PasswordChangedSuccess = "password changed successfully"
	ResetTokenSuccess      = "reset password token generated"
	ResetTokenValidSuccess = "valid reset password token"

	// Auth messages
	LoginSuccess  = "user logged in successfully"
	LogoutSuccess = "user logged out successfully"

	// Course messages
	CourseCreatedSuccess    = "course created successfully"
	CourseUpdatedSuccess    = "course updated successfully"
	CourseDeletedSuccess    = "course deleted successfully"
	CourseFetchedSuccess    = "course fetched successfully"
	CoursesFetchedSuccess   = "courses fetched successfully"
	LectureAddedSuccess     = "lecture added successfully"
	LectureFetchedSuccess   = "lecture fetched successfully"
	LecturesFetchedSuccess  = "lectures fetched successfully"
	LectureDeletedSuccess   = "lecture deleted successfully"
	CommentsFetchedSuccess  = "comments fetched successfully"
	CommentCreatedSuccess   = "comment created successfully"
	CommentLikedSuccess     = "comment liked successfully"
	CommentDislikedSuccess  = "comment disliked successfully"
	CommentDeletedSuccess   = "comment deleted successfully"

	// Progress messages
	ProgressFetchedSuccess   = "course progress fetched successfully"
	ProgressUpdatedSuccess   = "lecture progress updated successfully"
	ProgressCompletedSuccess = "course progress marked as completed successfully"
	ProgressResetSuccess     = "course progress reset successfully"

	// Payment messages
	CheckoutSessionCreatedSuccess  = "checkout session created successfully"
	SessionVerifiedSuccess         = "session verified successfully"
	PurchaseStatusFetchedSuccess   = "course purchase status fetched successfully"
	PurchasedCoursesFetchedSuccess = "purchased courses fetched successfully"
	RefundProcessedSuccess         = "refund processed successfully"
	WebhookReceivedSuccess         = "webhook received"

	// Media messages
	UploadURLCreatedSuccess = "upload URL created successfully"
	UploadVerifiedSuccess   = "upload verified successfully"
)
