package repository

import (
	"time"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
)

// ProductRepository persistence port for products. Lookups return nil (not
// an error) when nothing matches; soft-deleted rows are invisible except to
// historical movement joins.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// ListActive returns every non-deleted product of the company, for the
	// derived engines that need the full catalog.
	ListActive(companyID string) ([]*entity.Product, error)
	// ListSKUs returns the SKUs of all non-deleted products, for the code
	// generator's collision search.
	ListSKUs(companyID string) ([]string, error)
	Update(p *entity.Product) error
	SoftDelete(id string, at time.Time) error
}
