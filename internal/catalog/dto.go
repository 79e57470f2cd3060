package catalog

// VarietyOption is a select-box entry on the order form.
type VarietyOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductOption is a sellable product entry on the order form.
type ProductOption struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price *int   `json:"price"`
}

// ProductGroup lists a variety's active products for grouped select boxes.
type ProductGroup struct {
	VarietyID   int64           `json:"variety_id"`
	VarietyName string          `json:"variety_name"`
	Products    []ProductOption `json:"products"`
}
