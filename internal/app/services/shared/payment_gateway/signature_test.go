package payment_gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test_secret"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()

	t.Run("Valid Signature", func(t *testing.T) {
		header := SignPayload(payload, secret, now)

		err := verifySignature(payload, header, secret, now)

		assert.NoError(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		header := SignPayload(payload, "whsec_other_secret", now)

		err := verifySignature(payload, header, secret, now)

		assert.Error(t, err)
	})

	t.Run("Tampered Payload", func(t *testing.T) {
		header := SignPayload(payload, secret, now)

		err := verifySignature([]byte(`{"id":"evt_1","type":"checkout.session.expired"}`), header, secret, now)

		assert.Error(t, err)
	})

	t.Run("Expired Timestamp", func(t *testing.T) {
		stale := now.Add(-6 * time.Minute)
		header := SignPayload(payload, secret, stale)

		err := verifySignature(payload, header, secret, now)

		assert.Error(t, err, "signatures older than the tolerance window must be rejected")
	})

	t.Run("Timestamp At Tolerance Boundary", func(t *testing.T) {
		boundary := now.Add(-300 * time.Second)
		header := SignPayload(payload, secret, boundary)

		err := verifySignature(payload, header, secret, now)

		assert.NoError(t, err, "exactly the tolerance window is still acceptable")
	})

	t.Run("Future Timestamp Outside Tolerance", func(t *testing.T) {
		future := now.Add(10 * time.Minute)
		header := SignPayload(payload, secret, future)

		err := verifySignature(payload, header, secret, now)

		assert.Error(t, err)
	})

	t.Run("Missing Timestamp", func(t *testing.T) {
		err := verifySignature(payload, "v1=deadbeef", secret, now)

		assert.Error(t, err)
	})

	t.Run("Missing Signature Part", func(t *testing.T) {
		err := verifySignature(payload, "t=1700000000", secret, now)

		assert.Error(t, err)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		err := verifySignature(payload, "not-a-signature-header", secret, now)

		assert.Error(t, err)
	})

	t.Run("Second Valid Signature Among Many", func(t *testing.T) {
		valid := SignPayload(payload, secret, now)
		header := valid + ",v1=0000000000000000"

		err := verifySignature(payload, header, secret, now)

		assert.NoError(t, err, "any matching v1 candidate is enough")
	})
}
