package payment_gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	stripeServiceInstance contracts.PaymentGatewayService
	onceStripeService     sync.Once
)

type stripeService struct {
	BaseUrl       string
	SecretKey     string
	WebhookSecret string
	HTTPClient    *http.Client
	Log           *zap.Logger
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceStripeService.Do(func() {
		stripeServiceInstance = &stripeService{
			BaseUrl:       internalConfig.Stripe.BaseUrl,
			SecretKey:     internalConfig.Stripe.SecretKey,
			WebhookSecret: internalConfig.Stripe.WebhookSecret,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Stripe.RequestTimeoutInSecs) * time.Second,
			},
			Log: logger,
		}
	})
	return stripeServiceInstance
}

// checkoutSessionPayload mirrors the provider's checkout session object.
type checkoutSessionPayload struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

type webhookEventPayload struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object checkoutSessionPayload `json:"object"`
	} `json:"data"`
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", request.CustomerEmail)
	form.Set("success_url", request.SuccessURL)
	form.Set("cancel_url", request.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(request.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(request.UnitAmount, 10))
	form.Set("line_items[0][price_data][product_data][name]", request.ProductName)
	for key, value := range request.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
		form.Set(fmt.Sprintf("payment_intent_data[metadata][%s]", key), value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		s.Log.Error("stripeService.CreateCheckoutSession error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.SetBasicAuth(s.SecretKey, "")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("stripeService.CreateCheckoutSession error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrStripeCreateSession(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("stripeService.CreateCheckoutSession provider returned non-OK status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, exceptions.ErrStripeCreateSession(fmt.Errorf("provider responded with status %d", resp.StatusCode))
	}

	var session checkoutSessionPayload
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return mapCheckoutSession(&session), nil
}

func (s *stripeService) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.RetrieveCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", s.BaseUrl, url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(s.SecretKey, "")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("stripeService.RetrieveCheckoutSession error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrStripeRetrieveSession(err)
	}
	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrCheckoutSessionNotFound(fmt.Errorf("session %s not found", sessionID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrStripeRetrieveSession(fmt.Errorf("provider responded with status %d", resp.StatusCode))
	}

	var session checkoutSessionPayload
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return mapCheckoutSession(&session), nil
}

func (s *stripeService) CreateRefund(ctx context.Context, paymentIntentID, reason string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreateRefund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := url.Values{}
	form.Set("payment_intent", paymentIntentID)
	form.Set("metadata[reason]", reason)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/v1/refunds", strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.SetBasicAuth(s.SecretKey, "")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("stripeService.CreateRefund error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrStripeCreateRefund(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrStripeCreateRefund(fmt.Errorf("provider responded with status %d", resp.StatusCode))
	}

	var refund struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &refund); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return refund.ID, nil
}

func (s *stripeService) VerifyWebhookSignature(payload []byte, signatureHeader string) (*responses.WebhookEvent, error) {
	if err := verifySignature(payload, signatureHeader, s.WebhookSecret, time.Now()); err != nil {
		return nil, err
	}

	var event webhookEventPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		// An authenticated payload that cannot be parsed will never
		// parse on a retry either. Hand back an empty event so the
		// delivery gets acknowledged instead of redelivered forever.
		s.Log.Warn("stripeService.VerifyWebhookSignature could not parse event payload", zap.Error(err))
		return &responses.WebhookEvent{}, nil
	}

	return &responses.WebhookEvent{
		ID:      event.ID,
		Type:    event.Type,
		Session: *mapCheckoutSession(&event.Data.Object),
	}, nil
}

func mapCheckoutSession(session *checkoutSessionPayload) *responses.CheckoutSession {
	return &responses.CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		PaymentStatus: session.PaymentStatus,
		PaymentIntent: session.PaymentIntent,
		Metadata:      session.Metadata,
	}
}
