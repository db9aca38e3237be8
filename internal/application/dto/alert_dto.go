package dto

// LowStockAlertResponse one product below its minimum at one location,
// sorted by descending gap (largest shortfall first).
type LowStockAlertResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	CurrentStock  int64  `json:"current_stock"`
	MinStock      int64  `json:"min_stock"`
	Gap           int64  `json:"gap"`
	LocationKind  string `json:"location_kind"`
	LocationKey   string `json:"location_key"`
	LocationLabel string `json:"location_label"`
	OutletID      string `json:"outlet_id,omitempty"`
}
