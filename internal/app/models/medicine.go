package models

// Medicine is a pharmacy stock item. UnitPriceCents is a minor-unit integer;
// display formatting happens gateway-side.
type Medicine struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	GenericName      string `json:"generic_name,omitempty"`
	Category         string `json:"category"`
	SKU              string `json:"sku"`
	Unit             string `json:"unit"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
	UnitPriceCents   int64  `json:"unit_price_cents"`
	Currency         string `json:"currency"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	Supplier         string `json:"supplier,omitempty"`
	UpdatedAt        string `json:"updated_at"`
}

// StockStatus derives the display status with two threshold comparisons,
// zero first.
func (m Medicine) StockStatus() string {
	if m.Quantity == 0 {
		return "out_of_stock"
	}
	if m.Quantity <= m.ReorderThreshold {
		return "low_stock"
	}
	return "in_stock"
}
