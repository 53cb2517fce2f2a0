package responses

import "medicore-admin-service/internal/app/models"

// Medicine decorates the mirrored record with the two derived display
// fields the inventory page shows.
type Medicine struct {
	models.Medicine
	StockStatus      string `json:"stock_status"`
	UnitPriceDisplay string `json:"unit_price_display"`
}
