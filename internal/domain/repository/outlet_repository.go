package repository

import (
	"time"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
)

// OutletRepository persistence port for outlets.
type OutletRepository interface {
	Create(o *entity.Outlet) error
	GetByID(id string) (*entity.Outlet, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Outlet, error)
	ListActive(companyID string) ([]*entity.Outlet, error)
	// ListCodes returns the short codes of all non-deleted outlets.
	ListCodes(companyID string) ([]string, error)
	Update(o *entity.Outlet) error
	SoftDelete(id string, at time.Time) error
}
