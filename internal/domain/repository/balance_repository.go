package repository

import "github.com/gudangkita/gudang-api/internal/domain/entity"

// BalanceRepository is the authoritative stock-record store: one uniform
// table keyed by (company, location_key, product), central included.
// Zero-quantity rows are deleted, never stored — absence means zero.
type BalanceRepository interface {
	// Get returns the balance, 0 when no row exists.
	Get(companyID, locationKey, productID string) (int64, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE) inside a transaction.
	GetForUpdate(companyID, locationKey, productID string) (int64, error)
	// Upsert sets the balance; qty <= 0 removes the row.
	Upsert(rec *entity.StockRecord) error
	ListByCompany(companyID string) ([]entity.StockRecord, error)
	ListByLocation(companyID, locationKey string) ([]entity.StockRecord, error)
}
