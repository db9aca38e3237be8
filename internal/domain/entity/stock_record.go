package entity

import "time"

// StockRecord is the on-hand balance of a product at one location. Absence
// of a record means zero: zero-quantity records are removed, never stored.
// One uniform table covers all locations, central included.
type StockRecord struct {
	CompanyID   string
	LocationKey string // "central" or "outlet:<id>"
	ProductID   string
	Qty         int64
	UpdatedAt   time.Time
}
