package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one SKU of the catalog. Balances are not stored on the product:
// every location, central included, keeps its quantity in stock_balances
// keyed by (company, location_key, product). MinStock is the low-stock
// threshold used by the alert engine; 0 disables alerting for the product.
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // unique per company among non-deleted products
	Name       string
	MinStock   int64
	Price      decimal.Decimal // display-only sale price
	CategoryID string
	UnitID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // soft delete; historical movements keep referencing the id
}
