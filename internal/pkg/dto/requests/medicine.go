package requests

// ListMedicines mirrors the inventory page controls: filters, search and a
// single whitelisted sort key with asc/desc toggle.
type ListMedicines struct {
	Category string `json:"category"`
	Stock    string `json:"stock"`
	Search   string `json:"search"`
	SortBy   string `json:"sort_by"`
	Order    string `json:"order"`
}

type CreateMedicine struct {
	Name             string `json:"name" validate:"required,min=2,max=160"`
	GenericName      string `json:"generic_name"`
	Category         string `json:"category" validate:"required"`
	SKU              string `json:"sku" validate:"required"`
	Unit             string `json:"unit" validate:"required"`
	Quantity         int    `json:"quantity" validate:"gte=0"`
	ReorderThreshold int    `json:"reorder_threshold" validate:"gte=0"`
	UnitPriceCents   int64  `json:"unit_price_cents" validate:"gte=0"`
	Currency         string `json:"currency" validate:"required,len=3"`
	ExpiryDate       string `json:"expiry_date"`
	Supplier         string `json:"supplier"`
}

type UpdateMedicine struct {
	MedicineID string `json:"-"`
	CreateMedicine
}

type ReorderMedicine struct {
	MedicineID string `json:"-"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Note       string `json:"note"`
}
