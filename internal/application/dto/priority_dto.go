package dto

// ToggleFavoriteRequest body for POST /api/inventory/favorites.
type ToggleFavoriteRequest struct {
	ProductID    string `json:"product_id"`
	LocationKind string `json:"location_kind"`
	OutletID     string `json:"outlet_id,omitempty"`
	Favorite     bool   `json:"favorite"`
}

// PriorityProductResponse one entry of the fast-entry ordering for a
// location: favorites first, then by usage, then by collated name.
type PriorityProductResponse struct {
	ProductID  string `json:"product_id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Favorite   bool   `json:"favorite"`
	UsageCount int64  `json:"usage_count"`
}
