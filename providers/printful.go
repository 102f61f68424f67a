package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"drop-service/models"
)

const printfulBaseURL = "https://api.printful.com"

// PrintfulProvider implements FulfillmentProvider using the Printful API.
type PrintfulProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPrintfulProvider creates a new PrintfulProvider.
func NewPrintfulProvider(apiKey string) *PrintfulProvider {
	return &PrintfulProvider{
		apiKey:  apiKey,
		baseURL: printfulBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- Printful API request/response structs ----

type printfulRecipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
	Email       string `json:"email,omitempty"`
}

type printfulFile struct {
	Placement string `json:"placement,omitempty"`
	URL       string `json:"url"`
}

type printfulItem struct {
	VariantID int64          `json:"variant_id"`
	Quantity  int            `json:"quantity"`
	Files     []printfulFile `json:"files"`
}

type printfulOrderRequest struct {
	ExternalID string            `json:"external_id"`
	Recipient  printfulRecipient `json:"recipient"`
	Items      []printfulItem    `json:"items"`
}

type printfulOrderResponse struct {
	Code   int `json:"code"`
	Result struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"result"`
}

// ---- FulfillmentProvider implementation ----

// Submit creates a draft production order for one completed sale.
func (p *PrintfulProvider) Submit(ctx context.Context, order models.FulfillmentOrder) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	reqBody := printfulOrderRequest{
		ExternalID: order.ExternalID,
		Recipient: printfulRecipient{
			Name:        order.Recipient.Name,
			Address1:    order.Recipient.Street1,
			Address2:    order.Recipient.Street2,
			City:        order.Recipient.City,
			StateCode:   order.Recipient.State,
			CountryCode: order.Recipient.Country,
			Zip:         order.Recipient.PostalCode,
			Email:       order.Recipient.Email,
		},
		Items: []printfulItem{
			{
				VariantID: order.VariantID,
				Quantity:  order.Quantity,
				Files: []printfulFile{
					{Placement: order.Placement, URL: order.PrintFileURL},
				},
			},
		},
	}

	var resp printfulOrderResponse
	if err := p.doRequest(ctx, http.MethodPost, "/orders", reqBody, &resp); err != nil {
		return "", fmt.Errorf("printful Submit: %w", err)
	}

	return strconv.FormatInt(resp.Result.ID, 10), nil
}

// Confirm moves a draft order into the production pipeline.
func (p *PrintfulProvider) Confirm(ctx context.Context, providerOrderID string) error {
	if p.apiKey == "" {
		return ErrUnavailable
	}

	path := fmt.Sprintf("/orders/%s/confirm", providerOrderID)
	if err := p.doRequest(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("printful Confirm: %w", err)
	}
	return nil
}

// ---- HTTP helper ----

func (p *PrintfulProvider) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, string(respBytes))
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(respBytes))
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
