package repository

import "github.com/gudangkita/gudang-api/internal/domain/entity"

// TransferRepository append-only transfer record port.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Transfer, error)
}
