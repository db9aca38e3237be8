package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implements the transfer record port over PostgreSQL (usable
// with pool or tx). A transfer and its allocations are written inside the
// same transaction as its ledger legs.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the transfer adapter. Pass pool or tx
// (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persists the transfer header plus one allocation row per
// destination, preserving destination order.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (id, company_id, product_id, source_key, total_qty, note, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.CompanyID, transfer.ProductID, transfer.Source.Key(),
		transfer.TotalQty, transfer.Note, transfer.CreatedAt, nullable(transfer.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	for i, alloc := range transfer.Destinations {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO transfer_allocations (transfer_id, position, outlet_id, qty)
			 VALUES ($1, $2, $3, $4)`,
			transfer.ID, i, alloc.OutletID, alloc.Qty,
		)
		if err != nil {
			return fmt.Errorf("create transfer allocation: %w", err)
		}
	}
	return nil
}

// ListByCompany returns transfers newest first with their allocations.
func (r *TransferRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, company_id, product_id, source_key, total_qty, note, created_at, created_by
		FROM transfers WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	byID := make(map[string]*entity.Transfer)
	for rows.Next() {
		var t entity.Transfer
		var sourceKey string
		var note, createdBy *string
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.ProductID, &sourceKey,
			&t.TotalQty, &note, &t.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.Source = location.FromKey(sourceKey)
		if note != nil {
			t.Note = *note
		}
		if createdBy != nil {
			t.CreatedBy = *createdBy
		}
		list = append(list, &t)
		byID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	allocRows, err := r.q.Query(context.Background(),
		`SELECT transfer_id, outlet_id, qty FROM transfer_allocations
		 WHERE transfer_id = ANY($1) ORDER BY transfer_id, position`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list transfer allocations: %w", err)
	}
	defer allocRows.Close()
	for allocRows.Next() {
		var transferID string
		var alloc entity.TransferAllocation
		if err := allocRows.Scan(&transferID, &alloc.OutletID, &alloc.Qty); err != nil {
			return nil, fmt.Errorf("scan transfer allocation: %w", err)
		}
		if t, ok := byID[transferID]; ok {
			t.Destinations = append(t.Destinations, alloc)
		}
	}
	return list, allocRows.Err()
}
