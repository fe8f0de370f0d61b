package requests

type InitiateCheckout struct {
	CourseID string `json:"courseId" validate:"required"`
}

type VerifySession struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ProcessRefund struct {
	CourseID string `json:"courseId" validate:"required"`
	Amount   int64  `json:"amount" validate:"omitempty,gte=0"`
	Reason   string `json:"reason" validate:"required,max=200"`
}

// CreateCheckoutSession is the payload sent to the payment provider when a
// hosted checkout session is opened. Amounts are in minor currency units.
type CreateCheckoutSession struct {
	CustomerEmail string
	ProductName   string
	UnitAmount    int64
	Currency      string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}
