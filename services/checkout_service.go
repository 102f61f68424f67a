package services

import (
	"context"
	"fmt"

	"drop-service/catalog"
	"drop-service/metrics"
	"drop-service/models"
	"drop-service/repository"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CheckoutSessionCreator is the slice of StripeService the checkout flow
// needs, split out so tests can substitute a fake.
type CheckoutSessionCreator interface {
	CreateCheckoutSession(in CheckoutSessionInput) (*stripe.CheckoutSession, error)
}

// CheckoutConfig carries the pricing and shipping knobs for session creation.
type CheckoutConfig struct {
	AllowedCountries []string
	// Orders at or above the threshold ship free; below it a flat fee line is
	// added to the session.
	FreeShippingThresholdCents int64
	ShippingFeeCents           int64
}

// CheckoutService validates a purchase request and opens a payment session.
type CheckoutService interface {
	InitiateCheckout(ctx context.Context, req *models.CheckoutRequest, origin string) (*models.CheckoutResponse, *ServiceError)
}

type checkoutServiceImpl struct {
	catalog  catalog.Catalog
	repo     repository.InventoryRepository
	sessions CheckoutSessionCreator
	cfg      CheckoutConfig
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	cat catalog.Catalog,
	repo repository.InventoryRepository,
	sessions CheckoutSessionCreator,
	cfg CheckoutConfig,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		catalog:  cat,
		repo:     repo,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// InitiateCheckout resolves the item and size, runs the advisory sold check,
// and opens a Stripe checkout session carrying the CheckoutIntent as metadata.
// It writes nothing durable; an abandoned session simply never completes.
func (s *checkoutServiceImpl) InitiateCheckout(ctx context.Context, req *models.CheckoutRequest, origin string) (*models.CheckoutResponse, *ServiceError) {
	item, ok := s.catalog.ItemByID(req.ItemID)
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "Unknown item"}
	}

	variant, ok := item.SizeMap[req.Size]
	if !ok {
		return nil, &ServiceError{StatusCode: 400, Message: "Size not available for this item"}
	}

	// Advisory only: two buyers can both pass this and open sessions for the
	// same item. The webhook is the sole authoritative writer of sold.
	status, err := s.repo.Status(ctx, req.ItemID)
	if err != nil {
		s.logger.Error("Inventory status read failed", zap.String("item_id", req.ItemID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 503, Message: "Inventory store unavailable"}
	}
	if status == models.StatusSold {
		return nil, &ServiceError{StatusCode: 409, Message: "This item is already sold. It was truly 1 of 1."}
	}

	intent := models.CheckoutIntent{
		ItemID:       item.ID,
		Size:         req.Size,
		VariantID:    variant.VariantID,
		PriceCents:   item.PriceCents,
		PrintFileURL: item.PrintFileURL,
	}

	var shippingFee int64
	if item.PriceCents < s.cfg.FreeShippingThresholdCents {
		shippingFee = s.cfg.ShippingFeeCents
	}

	sess, err := s.sessions.CreateCheckoutSession(CheckoutSessionInput{
		ItemName:         fmt.Sprintf("%s (size %s)", item.Name, req.Size),
		Currency:         item.Currency,
		UnitAmount:       item.PriceCents,
		ShippingFee:      shippingFee,
		Metadata:         intent.Metadata(),
		SuccessURL:       origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:        origin + "/cancel",
		AllowedCountries: s.cfg.AllowedCountries,
	})
	if err != nil {
		s.logger.Error("Stripe checkout session creation failed",
			zap.String("item_id", req.ItemID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 502, Message: "Failed to create checkout session"}
	}

	metrics.CheckoutSessionsTotal.Inc()
	s.logger.Info("Checkout session created",
		zap.String("item_id", item.ID),
		zap.String("size", req.Size),
		zap.String("session_id", sess.ID),
	)

	return &models.CheckoutResponse{CheckoutURL: sess.URL}, nil
}
