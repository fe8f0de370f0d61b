package payment_gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test_secret"
	service := &stripeService{WebhookSecret: secret, Log: zap.NewNop()}

	t.Run("Valid Event Is Parsed", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","payment_status":"paid"}}}`)
		header := SignPayload(payload, secret, time.Now())

		event, err := service.VerifyWebhookSignature(payload, header)

		assert.NoError(t, err)
		assert.Equal(t, "checkout.session.completed", event.Type)
		assert.Equal(t, "cs_test_1", event.Session.ID)
	})

	t.Run("Signed Garbage Payload Is Acknowledged", func(t *testing.T) {
		payload := []byte(`this is not json`)
		header := SignPayload(payload, secret, time.Now())

		event, err := service.VerifyWebhookSignature(payload, header)

		assert.NoError(t, err, "an authenticated delivery is never rejected for being unparsable")
		assert.Empty(t, event.Type, "the event carries no actionable type")
	})

	t.Run("Unsigned Payload Is Rejected", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1"}`)

		event, err := service.VerifyWebhookSignature(payload, "t=1700000000,v1=deadbeef")

		assert.Error(t, err)
		assert.Nil(t, event)
	})
}
