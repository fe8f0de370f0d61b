package models

import (
	"time"

	"learnhub-service/internal/pkg/constvars"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type CoursePurchase struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	CourseID      string        `json:"courseId" bson:"courseId"`
	UserID        string        `json:"userId" bson:"userId"`
	Amount        int64         `json:"amount" bson:"amount"`
	Currency      string        `json:"currency" bson:"currency"`
	Status        PaymentStatus `json:"status" bson:"status"`
	PaymentMethod string        `json:"paymentMethod" bson:"paymentMethod"`
	PaymentID     string        `json:"paymentId" bson:"paymentId"`
	SessionID     string        `json:"sessionId" bson:"sessionId"`
	RefundID      string        `json:"refundId,omitempty" bson:"refundId,omitempty"`
	RefundAmount  int64         `json:"refundAmount,omitempty" bson:"refundAmount,omitempty"`
	RefundReason  string        `json:"refundReason,omitempty" bson:"refundReason,omitempty"`
	RefundedAt    *time.Time    `json:"refundedAt,omitempty" bson:"refundedAt,omitempty"`
	TimeModel     `bson:",inline"`
}

// IsRefundable reports whether the purchase is completed and still inside
// the refund window counted from the purchase time.
func (p *CoursePurchase) IsRefundable(now time.Time) bool {
	if p.Status != PaymentStatusCompleted {
		return false
	}
	deadline := p.CreatedAt.AddDate(0, 0, constvars.RefundWindowInDays)
	return !now.After(deadline)
}
