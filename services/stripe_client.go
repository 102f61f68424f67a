package services

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// StripeService wraps the Stripe API surface this service uses: hosted
// checkout session creation and webhook signature verification.
type StripeService struct {
	SecretKey  string
	WebhookKey string
}

func NewStripeService(secretKey, webhookKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey}
}

// CheckoutSessionInput groups everything needed for one single-payment
// checkout session.
type CheckoutSessionInput struct {
	ItemName         string
	Currency         string
	UnitAmount       int64
	ShippingFee      int64 // 0 means no separate shipping line
	Metadata         map[string]string
	SuccessURL       string
	CancelURL        string
	AllowedCountries []string
}

// CreateCheckoutSession opens a Stripe-hosted checkout session in payment
// mode. Card data is collected entirely on Stripe's side.
func (s *StripeService) CreateCheckoutSession(in CheckoutSessionInput) (*stripe.CheckoutSession, error) {
	lineItems := []*stripe.CheckoutSessionLineItemParams{
		{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(in.Currency),
				UnitAmount: stripe.Int64(in.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(in.ItemName),
				},
			},
		},
	}
	if in.ShippingFee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(in.Currency),
				UnitAmount: stripe.Int64(in.ShippingFee),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Shipping & handling"),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(in.AllowedCountries),
		},
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	return session.New(params)
}

// ParseWebhook reads the raw request body and verifies the Stripe-Signature
// header against the shared webhook secret. Events must never be parsed
// without passing through this check first.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
