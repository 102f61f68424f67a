package controllers

import (
	"net/http"

	"drop-service/models"
	"drop-service/services"

	"github.com/gin-gonic/gin"
)

// CheckoutController handles HTTP requests for purchase initiation.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// InitiateCheckout handles POST /checkout
func (cc *CheckoutController) InitiateCheckout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := cc.checkoutService.InitiateCheckout(ctx.Request.Context(), &req, requestOrigin(ctx.Request))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// requestOrigin derives the caller's own origin for the success/cancel
// redirect URLs, so the same build works on any deployed host.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
