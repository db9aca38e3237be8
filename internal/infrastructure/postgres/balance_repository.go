package postgres

import (
	"context"
	"fmt"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implements the BalanceRepository port over PostgreSQL (usable
// with pool or tx). One uniform table keyed by (company, location_key,
// product) covers every location, central included. Zero balances are
// deleted rows: a missing row reads as 0.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository builds the balance adapter. Pass pool or tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get returns the current balance, 0 when no row exists.
func (r *BalanceRepo) Get(companyID, locationKey, productID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(context.Background(),
		`SELECT qty FROM stock_balances WHERE company_id = $1 AND location_key = $2 AND product_id = $3`,
		companyID, locationKey, productID,
	).Scan(&qty)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return qty, nil
}

// GetForUpdate returns the balance and locks the row (SELECT FOR UPDATE).
// A missing row reads as 0 and locks nothing; the caller's advisory lock
// covers creation races.
func (r *BalanceRepo) GetForUpdate(companyID, locationKey, productID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(context.Background(),
		`SELECT qty FROM stock_balances WHERE company_id = $1 AND location_key = $2 AND product_id = $3 FOR UPDATE`,
		companyID, locationKey, productID,
	).Scan(&qty)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance for update: %w", err)
	}
	return qty, nil
}

// Upsert sets the balance. A qty <= 0 deletes the row so zero balances are
// never stored.
func (r *BalanceRepo) Upsert(rec *entity.StockRecord) error {
	if rec.Qty <= 0 {
		_, err := r.q.Exec(context.Background(),
			`DELETE FROM stock_balances WHERE company_id = $1 AND location_key = $2 AND product_id = $3`,
			rec.CompanyID, rec.LocationKey, rec.ProductID,
		)
		if err != nil {
			return fmt.Errorf("delete zero balance: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO stock_balances (company_id, location_key, product_id, qty, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (company_id, location_key, product_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, rec.CompanyID, rec.LocationKey, rec.ProductID, rec.Qty)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// ListByCompany returns every balance row of the company.
func (r *BalanceRepo) ListByCompany(companyID string) ([]entity.StockRecord, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT company_id, location_key, product_id, qty, updated_at
		 FROM stock_balances WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(&rec.CompanyID, &rec.LocationKey, &rec.ProductID, &rec.Qty, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListByLocation returns the balance rows at one location.
func (r *BalanceRepo) ListByLocation(companyID, locationKey string) ([]entity.StockRecord, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT company_id, location_key, product_id, qty, updated_at
		 FROM stock_balances WHERE company_id = $1 AND location_key = $2`,
		companyID, locationKey,
	)
	if err != nil {
		return nil, fmt.Errorf("list balances by location: %w", err)
	}
	defer rows.Close()
	var list []entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(&rec.CompanyID, &rec.LocationKey, &rec.ProductID, &rec.Qty, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
