package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products. The SKU is generated
// from the name, never supplied by the client.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	MinStock   int64           `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id,omitempty"`
	UnitID     string          `json:"unit_id,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left
// unchanged. RegenerateSKU re-derives the SKU from the (possibly new) name,
// keeping the current SKU when it still fits.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	MinStock      *int64           `json:"min_stock,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	UnitID        *string          `json:"unit_id,omitempty"`
	RegenerateSKU bool             `json:"regenerate_sku,omitempty"`
}

// ProductResponse representation of a product.
type ProductResponse struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	MinStock   int64           `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id,omitempty"`
	UnitID     string          `json:"unit_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateOutletRequest body for POST /api/outlets. The short code is
// generated from the name.
type CreateOutletRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// UpdateOutletRequest body for PUT /api/outlets/:id.
type UpdateOutletRequest struct {
	Name           *string  `json:"name,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	RegenerateCode bool     `json:"regenerate_code,omitempty"`
}

// OutletResponse representation of an outlet.
type OutletResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OutletListResponse paginated outlet listing.
type OutletListResponse struct {
	Items []OutletResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
