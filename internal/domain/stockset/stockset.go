// Package stockset provides pure operations over in-memory collections of
// stock records. The authoritative store lives in PostgreSQL; these helpers
// fold repository snapshots without mutating them, so derived engines can
// share one loaded record set safely.
package stockset

import "github.com/gudangkita/gudang-api/internal/domain/entity"

// Get returns the balance for (locationKey, productID), or 0 when no record
// exists.
func Get(records []entity.StockRecord, locationKey, productID string) int64 {
	for _, r := range records {
		if r.LocationKey == locationKey && r.ProductID == productID {
			return r.Qty
		}
	}
	return 0
}

// Upsert returns a new record set with the (locationKey, productID) balance
// set to qty. A qty <= 0 removes the record — zero balances are pruned, never
// stored. Existing records keep their position; new records are appended.
// The input slice is never mutated.
func Upsert(records []entity.StockRecord, locationKey, productID string, qty int64) []entity.StockRecord {
	if qty <= 0 {
		out := make([]entity.StockRecord, 0, len(records))
		for _, r := range records {
			if r.LocationKey == locationKey && r.ProductID == productID {
				continue
			}
			out = append(out, r)
		}
		return out
	}

	out := make([]entity.StockRecord, len(records))
	copy(out, records)
	for i, r := range out {
		if r.LocationKey == locationKey && r.ProductID == productID {
			out[i].Qty = qty
			return out
		}
	}
	return append(out, entity.StockRecord{
		LocationKey: locationKey,
		ProductID:   productID,
		Qty:         qty,
	})
}
