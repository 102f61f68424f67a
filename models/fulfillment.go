package models

import "fmt"

// DefaultPlacement is where the artwork is applied on the garment.
const DefaultPlacement = "front"

// FulfillmentOrder is a production request sent to the print provider for one
// completed sale. Exactly one order is submitted per completed payment session.
type FulfillmentOrder struct {
	Recipient    Address `json:"recipient"`
	VariantID    int64   `json:"variant_id"`
	Quantity     int     `json:"quantity"`
	PrintFileURL string  `json:"print_file_url"`
	Placement    string  `json:"placement"`
	ExternalID   string  `json:"external_id"`
}

// ExternalOrderID derives the provider-side external reference from the item
// and the payment session, so retried submissions for the same session are
// recognizable on the provider end.
func ExternalOrderID(itemID, sessionID string) string {
	return fmt.Sprintf("DROP-%s-%s", itemID, sessionID)
}
