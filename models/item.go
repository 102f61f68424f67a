package models

// SizeVariant maps a garment size to the fulfillment provider's catalog
// variant for that size.
type SizeVariant struct {
	VariantID int64 `json:"variant_id"`
}

// Item is a single-edition catalog entry. Exactly one physical unit of each
// item exists; once it sells it is never restocked. The catalog is owned by
// the import tooling and treated as read-only here.
type Item struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	PriceCents   int64                  `json:"price_cents"`
	Currency     string                 `json:"currency"`
	ImageURL     string                 `json:"image,omitempty"`
	PrintFileURL string                 `json:"print_file_url"`
	SizeMap      map[string]SizeVariant `json:"size_map"`
}

// Sale status values stored per item in the inventory store. An item with no
// record is implicitly available.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// Address represents a physical mailing address used for fulfillment.
type Address struct {
	Name       string `json:"name"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"` // ISO 3166-1 alpha-2, e.g. "US"
	Email      string `json:"email,omitempty"`
}
