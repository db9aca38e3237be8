package postgres

import (
	"context"
	"fmt"

	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implements the favorite-mark port over PostgreSQL (usable
// with pool or tx). A mark is presence of a row; unmarking deletes it.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository builds the favorite adapter. Pass pool or tx
// (Querier).
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Set marks or unmarks a product as favorite at one location. Marking is
// idempotent.
func (r *FavoriteRepo) Set(companyID, locationKey, productID string, favorite bool) error {
	if !favorite {
		_, err := r.q.Exec(context.Background(),
			`DELETE FROM location_favorites WHERE company_id = $1 AND location_key = $2 AND product_id = $3`,
			companyID, locationKey, productID,
		)
		if err != nil {
			return fmt.Errorf("unset favorite: %w", err)
		}
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO location_favorites (company_id, location_key, product_id, created_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (company_id, location_key, product_id) DO NOTHING`,
		companyID, locationKey, productID,
	)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	return nil
}

// ListByLocation returns the favorited product ids at one location.
func (r *FavoriteRepo) ListByLocation(companyID, locationKey string) (map[string]bool, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id FROM location_favorites WHERE company_id = $1 AND location_key = $2`,
		companyID, locationKey,
	)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()
	favs := make(map[string]bool)
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favs[productID] = true
	}
	return favs, rows.Err()
}
