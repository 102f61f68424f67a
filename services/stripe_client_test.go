package services_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"drop-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe does: HMAC
// SHA-256 over "<timestamp>.<payload>" with the shared webhook secret.
func signPayload(payload, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType string) string {
	return fmt.Sprintf(
		`{"id":"evt_1","object":"event","api_version":%q,"type":%q,"data":{"object":{"id":"cs_test_1"}}}`,
		stripe.APIVersion, eventType,
	)
}

func TestParseWebhook_ValidSignature(t *testing.T) {
	svc := services.NewStripeService("sk_test_key", testWebhookSecret)

	payload := eventPayload("checkout.session.completed")
	req := httptest.NewRequest("POST", "/payment-webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret, time.Now().Unix()))

	event, err := svc.ParseWebhook(req)

	assert.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.session.completed", string(event.Type))
}

func TestParseWebhook_WrongSecret(t *testing.T) {
	svc := services.NewStripeService("sk_test_key", testWebhookSecret)

	payload := eventPayload("checkout.session.completed")
	req := httptest.NewRequest("POST", "/payment-webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, "whsec_other_secret", time.Now().Unix()))

	_, err := svc.ParseWebhook(req)

	assert.Error(t, err)
}

func TestParseWebhook_TamperedBody(t *testing.T) {
	svc := services.NewStripeService("sk_test_key", testWebhookSecret)

	payload := eventPayload("checkout.session.completed")
	header := signPayload(payload, testWebhookSecret, time.Now().Unix())

	tampered := strings.Replace(payload, "cs_test_1", "cs_test_2", 1)
	req := httptest.NewRequest("POST", "/payment-webhook", strings.NewReader(tampered))
	req.Header.Set("Stripe-Signature", header)

	_, err := svc.ParseWebhook(req)

	assert.Error(t, err)
}

func TestParseWebhook_MissingHeader(t *testing.T) {
	svc := services.NewStripeService("sk_test_key", testWebhookSecret)

	req := httptest.NewRequest("POST", "/payment-webhook", strings.NewReader(eventPayload("checkout.session.completed")))

	_, err := svc.ParseWebhook(req)

	assert.Error(t, err)
}
