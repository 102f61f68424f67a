package routes

import (
	"net/http"

	"drop-service/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the HTTP surface of the service.
func RegisterRoutes(
	r *gin.Engine,
	cc *controllers.CheckoutController,
	wc *controllers.WebhookController,
	ic *controllers.InventoryController,
) {
	r.POST("/checkout", cc.InitiateCheckout)

	// Stripe webhook (signature-verified, no auth middleware)
	r.POST("/payment-webhook", wc.HandleStripeWebhook)

	r.GET("/inventory-status", ic.Status)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
