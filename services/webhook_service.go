package services

import (
	"context"
	"encoding/json"

	"drop-service/metrics"
	"drop-service/models"
	"drop-service/providers"
	"drop-service/repository"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// WebhookService processes verified Stripe events. It is the single
// authoritative writer of sold status: the sale is recorded before fulfillment
// is attempted, and a fulfillment failure never reverses it.
type WebhookService interface {
	HandleEvent(ctx context.Context, event stripe.Event) *ServiceError
}

type webhookServiceImpl struct {
	repo        repository.InventoryRepository
	provider    providers.FulfillmentProvider
	autoConfirm bool
	logger      *zap.Logger
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(
	repo repository.InventoryRepository,
	provider providers.FulfillmentProvider,
	autoConfirm bool,
	logger *zap.Logger,
) WebhookService {
	return &webhookServiceImpl{
		repo:        repo,
		provider:    provider,
		autoConfirm: autoConfirm,
		logger:      logger,
	}
}

// HandleEvent handles one verified webhook delivery. Stripe delivers at least
// once, so everything here must be safe to re-run: sold over sold is a no-op
// and the per-session marker gates fulfillment submission. A nil return means
// acknowledge with 2xx; malformed events are acknowledged too, since Stripe
// retrying them can never make them well-formed.
func (s *webhookServiceImpl) HandleEvent(ctx context.Context, event stripe.Event) *ServiceError {
	if event.Type != "checkout.session.completed" {
		s.logger.Debug("Ignoring webhook event type", zap.String("event_type", string(event.Type)))
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		s.logger.Warn("Failed to unmarshal checkout session", zap.String("event_id", event.ID), zap.Error(err))
		return nil
	}

	intent, err := models.IntentFromMetadata(sess.Metadata)
	if err != nil {
		s.logger.Warn("Incomplete checkout session metadata",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return nil
	}

	recipient, ok := recipientFromSession(&sess)
	if !ok {
		s.logger.Warn("Checkout session has no usable shipping address",
			zap.String("session_id", sess.ID),
			zap.String("item_id", intent.ItemID),
		)
		return nil
	}

	// The authoritative write. It happens before fulfillment so a dispatch
	// failure cannot leave the item falsely available. A store error is the
	// one non-2xx past the signature check: nothing durable has happened yet,
	// so Stripe redelivers onto the same idempotent path.
	if err := s.repo.MarkSold(ctx, intent.ItemID); err != nil {
		s.logger.Error("Failed to mark item sold", zap.String("item_id", intent.ItemID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Inventory store write failed"}
	}

	first, err := s.repo.MarkSessionProcessed(ctx, sess.ID)
	if err != nil {
		s.logger.Error("Failed to stamp session marker", zap.String("session_id", sess.ID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Inventory store write failed"}
	}
	if !first {
		s.logger.Info("Duplicate webhook delivery, fulfillment already submitted",
			zap.String("session_id", sess.ID),
			zap.String("item_id", intent.ItemID),
		)
		return nil
	}

	metrics.ItemsSoldTotal.Inc()
	s.logger.Info("Item sold",
		zap.String("item_id", intent.ItemID),
		zap.String("size", intent.Size),
		zap.String("session_id", sess.ID),
	)

	order := models.FulfillmentOrder{
		Recipient:    recipient,
		VariantID:    intent.VariantID,
		Quantity:     1,
		PrintFileURL: intent.PrintFileURL,
		Placement:    models.DefaultPlacement,
		ExternalID:   models.ExternalOrderID(intent.ItemID, sess.ID),
	}

	providerOrderID, err := s.provider.Submit(ctx, order)
	if err != nil {
		// Payment is already captured; never fail the ack over fulfillment.
		metrics.FulfillmentFailuresTotal.Inc()
		s.logger.Error("Fulfillment order submission failed",
			zap.String("item_id", intent.ItemID),
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return nil
	}

	metrics.FulfillmentOrdersTotal.Inc()
	s.logger.Info("Fulfillment order submitted",
		zap.String("item_id", intent.ItemID),
		zap.String("provider_order_id", providerOrderID),
	)

	if s.autoConfirm {
		if err := s.provider.Confirm(ctx, providerOrderID); err != nil {
			s.logger.Warn("Fulfillment order confirm failed, needs manual confirm",
				zap.String("provider_order_id", providerOrderID),
				zap.Error(err),
			)
		}
	}

	if err := s.repo.RecordProviderOrder(ctx, sess.ID, providerOrderID); err != nil {
		s.logger.Warn("Failed to record provider order id",
			zap.String("session_id", sess.ID),
			zap.String("provider_order_id", providerOrderID),
			zap.Error(err),
		)
	}

	return nil
}

// recipientFromSession extracts the buyer's shipping address collected by the
// Stripe-hosted checkout page.
func recipientFromSession(sess *stripe.CheckoutSession) (models.Address, bool) {
	details := sess.CustomerDetails
	if details == nil || details.Address == nil {
		return models.Address{}, false
	}
	addr := details.Address
	if addr.Line1 == "" || addr.City == "" || addr.Country == "" {
		return models.Address{}, false
	}

	name := details.Name
	if name == "" {
		name = "Drop customer"
	}

	return models.Address{
		Name:       name,
		Street1:    addr.Line1,
		Street2:    addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		Email:      details.Email,
	}, true
}
