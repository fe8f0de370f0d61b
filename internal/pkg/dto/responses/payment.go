package responses

// CheckoutSession is the normalized view of a provider hosted-checkout
// session, shared by the create and retrieve calls and by webhook payloads.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

// WebhookEvent is a signature-verified provider notification.
type WebhookEvent struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Session CheckoutSession `json:"session"`
}

type InitiateCheckout struct {
	URL string `json:"url"`
}

type VerifySession struct {
	Paid bool `json:"paid"`
}

type PurchaseStatus struct {
	Status string `json:"status"`
}

type Refund struct {
	RefundID     string `json:"refundId"`
	RefundAmount int64  `json:"refundAmount"`
	Status       string `json:"status"`
}
