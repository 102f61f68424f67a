package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"drop-service/controllers"
	"drop-service/models"
	"drop-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ---- mock checkout service ----

type mockCheckoutSvc struct {
	lastReq    *models.CheckoutRequest
	lastOrigin string
	resp       *models.CheckoutResponse
	err        *services.ServiceError
}

func (m *mockCheckoutSvc) InitiateCheckout(_ context.Context, req *models.CheckoutRequest, origin string) (*models.CheckoutResponse, *services.ServiceError) {
	m.lastReq = req
	m.lastOrigin = origin
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func setupCheckoutRouter(svc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewCheckoutController(svc)
	r.POST("/checkout", c.InitiateCheckout)
	return r
}

// ---- tests ----

func TestInitiateCheckout_OK(t *testing.T) {
	svc := &mockCheckoutSvc{
		resp: &models.CheckoutResponse{CheckoutURL: "https://checkout.stripe.com/pay/cs_test_1"},
	}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{ItemID: "design-007", Size: "M"})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Host = "shop.example.com"
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CheckoutResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", resp.CheckoutURL)
	assert.Equal(t, "http://shop.example.com", svc.lastOrigin)
}

func TestInitiateCheckout_ForwardedProto(t *testing.T) {
	svc := &mockCheckoutSvc{resp: &models.CheckoutResponse{CheckoutURL: "https://example"}}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{ItemID: "design-007", Size: "M"})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Host = "shop.example.com"
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.example.com", svc.lastOrigin)
}

func TestInitiateCheckout_ServiceErrorMapped(t *testing.T) {
	svc := &mockCheckoutSvc{
		err: &services.ServiceError{StatusCode: 409, Message: "This item is already sold. It was truly 1 of 1."},
	}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{ItemID: "design-007", Size: "M"})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "already sold")
}

func TestInitiateCheckout_BadJSON(t *testing.T) {
	svc := &mockCheckoutSvc{}
	r := setupCheckoutRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"item_id":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq)
}

func TestInitiateCheckout_MissingSize(t *testing.T) {
	svc := &mockCheckoutSvc{}
	r := setupCheckoutRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"item_id":"design-007"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq)
}
