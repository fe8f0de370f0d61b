package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"learnhub-service/internal/pkg/constvars"
)

func TestIsRefundable(t *testing.T) {
	purchasedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newPurchase := func(status PaymentStatus) *CoursePurchase {
		purchase := &CoursePurchase{Status: status}
		purchase.CreatedAt = purchasedAt
		return purchase
	}

	t.Run("Completed Within Window", func(t *testing.T) {
		purchase := newPurchase(PaymentStatusCompleted)
		now := purchasedAt.AddDate(0, 0, constvars.RefundWindowInDays-1)
		assert.True(t, purchase.IsRefundable(now), "Purchase inside the refund window should be refundable")
	})

	t.Run("Completed At Window Boundary", func(t *testing.T) {
		purchase := newPurchase(PaymentStatusCompleted)
		now := purchasedAt.AddDate(0, 0, constvars.RefundWindowInDays)
		assert.True(t, purchase.IsRefundable(now), "Purchase exactly at the deadline should still be refundable")
	})

	t.Run("Completed After Window", func(t *testing.T) {
		purchase := newPurchase(PaymentStatusCompleted)
		now := purchasedAt.AddDate(0, 0, constvars.RefundWindowInDays).Add(time.Second)
		assert.False(t, purchase.IsRefundable(now), "Purchase past the deadline should not be refundable")
	})

	t.Run("Non Completed Statuses", func(t *testing.T) {
		now := purchasedAt.Add(time.Hour)
		for _, status := range []PaymentStatus{PaymentStatusPending, PaymentStatusFailed, PaymentStatusRefunded} {
			purchase := newPurchase(status)
			assert.False(t, purchase.IsRefundable(now), "Only completed purchases should be refundable")
		}
	})
}
