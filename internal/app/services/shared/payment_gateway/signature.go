package payment_gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/exceptions"
)

// verifySignature checks the "t=<unix>,v1=<hex>" signature header against an
// HMAC-SHA256 of "<t>.<payload>" keyed with the webhook secret. Timestamps
// outside the tolerance window are rejected to blunt replayed deliveries.
func verifySignature(payload []byte, signatureHeader, secret string, now time.Time) error {
	var timestamp int64
	var signatures []string

	for _, part := range strings.Split(signatureHeader, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, constvars.StripeSignatureTimestampPrefix):
			parsed, err := strconv.ParseInt(strings.TrimPrefix(part, constvars.StripeSignatureTimestampPrefix), 10, 64)
			if err != nil {
				return exceptions.ErrStripeBadSignature(fmt.Errorf("malformed timestamp in signature header"))
			}
			timestamp = parsed
		case strings.HasPrefix(part, constvars.StripeSignatureV1Prefix):
			signatures = append(signatures, strings.TrimPrefix(part, constvars.StripeSignatureV1Prefix))
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return exceptions.ErrStripeBadSignature(fmt.Errorf("signature header missing timestamp or v1 signature"))
	}

	age := now.Unix() - timestamp
	if age < 0 {
		age = -age
	}
	if age > constvars.StripeSignatureToleranceInSeconds {
		return exceptions.ErrStripeBadSignature(fmt.Errorf("signature timestamp outside tolerance window"))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, signature := range signatures {
		if hmac.Equal([]byte(expected), []byte(signature)) {
			return nil
		}
	}
	return exceptions.ErrStripeBadSignature(fmt.Errorf("no matching v1 signature"))
}

// SignPayload produces a signature header for the given payload. Used by
// tests and local tooling to emit verifiable webhook deliveries.
func SignPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(at.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("%s%d,%s%s",
		constvars.StripeSignatureTimestampPrefix, at.Unix(),
		constvars.StripeSignatureV1Prefix, hex.EncodeToString(mac.Sum(nil)),
	)
}
