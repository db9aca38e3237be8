package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo implements the OutletRepository port over PostgreSQL (usable
// with pool or tx).
type OutletRepo struct {
	q Querier
}

// NewOutletRepository builds the outlet persistence adapter. Pass pool or tx
// (Querier).
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

const outletColumns = `id, company_id, code, name, address, latitude, longitude, created_at, updated_at, deleted_at`

// Create persists a new outlet.
func (r *OutletRepo) Create(outlet *entity.Outlet) error {
	query := `
		INSERT INTO outlets (id, company_id, code, name, address, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		outlet.ID, outlet.CompanyID, outlet.Code, outlet.Name, outlet.Address,
		outlet.Latitude, outlet.Longitude, outlet.CreatedAt, outlet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

// GetByID returns an outlet by id, nil when absent or soft-deleted.
func (r *OutletRepo) GetByID(id string) (*entity.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets WHERE id = $1 AND deleted_at IS NULL`
	o, err := scanOutlet(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	return o, nil
}

// ListByCompany lists the company's live outlets with pagination.
func (r *OutletRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Outlet, error) {
	query := `
		SELECT ` + outletColumns + `
		FROM outlets WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		o, err := scanOutlet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ListActive returns every live outlet of the company, name-ordered.
func (r *OutletRepo) ListActive(companyID string) ([]*entity.Outlet, error) {
	query := `
		SELECT ` + outletColumns + `
		FROM outlets WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list active outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		o, err := scanOutlet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ListCodes returns the short codes of all live outlets, for the code
// generator's collision search.
func (r *OutletRepo) ListCodes(companyID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT code FROM outlets WHERE company_id = $1 AND deleted_at IS NULL`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list outlet codes: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan outlet code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Update rewrites the mutable fields of an outlet.
func (r *OutletRepo) Update(outlet *entity.Outlet) error {
	query := `
		UPDATE outlets SET code = $2, name = $3, address = $4, latitude = $5, longitude = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		outlet.ID, outlet.Code, outlet.Name, outlet.Address,
		outlet.Latitude, outlet.Longitude, outlet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update outlet: %w", err)
	}
	return nil
}

// SoftDelete marks the outlet deleted. Movements referencing it survive and
// render with the unknown-outlet label.
func (r *OutletRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE outlets SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete outlet: %w", err)
	}
	return nil
}

func scanOutlet(row pgx.Row) (*entity.Outlet, error) {
	var o entity.Outlet
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Code, &o.Name, &o.Address,
		&o.Latitude, &o.Longitude, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
