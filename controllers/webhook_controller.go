package controllers

import (
	"net/http"

	"drop-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookController receives and dispatches Stripe webhook events.
type WebhookController struct {
	Stripe  *services.StripeService
	Service services.WebhookService
	Logger  *zap.Logger
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(stripeSvc *services.StripeService, svc services.WebhookService, logger *zap.Logger) *WebhookController {
	return &WebhookController{Stripe: stripeSvc, Service: svc, Logger: logger}
}

// HandleStripeWebhook handles POST /payment-webhook. The signature check is
// the only branch that rejects: anything past it is acknowledged with 2xx so
// Stripe stops redelivering.
func (wc *WebhookController) HandleStripeWebhook(c *gin.Context) {
	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		wc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	wc.Logger.Info("Processing Stripe webhook",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
	)

	if svcErr := wc.Service.HandleEvent(c.Request.Context(), event); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
