package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements the append-only ledger port over PostgreSQL
// (usable with pool or tx). Movements are never updated or deleted.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the movement adapter. Pass pool or tx
// (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create appends one ledger entry. The location is stored as its canonical
// key so history survives outlet deletion.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, company_id, product_id, location_key, type, qty, delta, balance_after, counted_stock, note, transfer_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.ProductID, movement.Location.Key(),
		movement.Type, movement.Qty, movement.Delta, movement.BalanceAfter,
		movement.CountedStock, movement.Note, nullable(movement.TransferID),
		movement.CreatedAt, nullable(movement.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List returns movement history newest first, optionally narrowed by
// location filter and product.
func (r *MovementRepo) List(companyID string, q repository.MovementQuery) ([]*entity.Movement, error) {
	query := `
		SELECT id, company_id, product_id, location_key, type, qty, delta, balance_after, counted_stock, note, transfer_id, created_at, created_by
		FROM movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if q.LocationFilter != "" && q.LocationFilter != location.FilterAll {
		query += fmt.Sprintf(" AND location_key = $%d", pos)
		args = append(args, q.LocationFilter)
		pos++
	}
	if q.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, q.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var locationKey string
		var note, transferID, createdBy *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &locationKey, &m.Type,
			&m.Qty, &m.Delta, &m.BalanceAfter, &m.CountedStock, &note, &transferID,
			&m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Location = location.FromKey(locationKey)
		if note != nil {
			m.Note = *note
		}
		if transferID != nil {
			m.TransferID = *transferID
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct returns how many movements each product has at one
// location. Every entry counts once regardless of quantity; this is the
// usage signal for prioritization.
func (r *MovementRepo) CountByProduct(companyID, locationKey string) (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, COUNT(*) FROM movements
		 WHERE company_id = $1 AND location_key = $2
		 GROUP BY product_id`,
		companyID, locationKey,
	)
	if err != nil {
		return nil, fmt.Errorf("count movements by product: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int64)
	for rows.Next() {
		var productID string
		var n int64
		if err := rows.Scan(&productID, &n); err != nil {
			return nil, fmt.Errorf("scan movement count: %w", err)
		}
		counts[productID] = n
	}
	return counts, rows.Err()
}
