package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/code"
	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// OutletUseCase CRUD commands for outlets.
type OutletUseCase struct {
	repo repository.OutletRepository
}

// NewOutletUseCase builds the use case.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo}
}

// Create stores a new outlet with a short code derived from its name.
func (uc *OutletUseCase) Create(ctx context.Context, companyID string, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	codes, err := uc.repo.ListCodes(companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	outlet := &entity.Outlet{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      code.OutletCode(name, codes, ""),
		Name:      name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// GetByID returns one outlet of the company.
func (uc *OutletUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.OutletResponse, error) {
	outlet, err := uc.ownedOutlet(companyID, id)
	if err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// Update applies rename/address/coordinate changes, optionally re-deriving
// the short code.
func (uc *OutletUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error) {
	outlet, err := uc.ownedOutlet(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		outlet.Name = name
	}
	if in.Address != nil {
		outlet.Address = *in.Address
	}
	if in.Latitude != nil {
		outlet.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		outlet.Longitude = *in.Longitude
	}
	if in.RegenerateCode {
		codes, err := uc.repo.ListCodes(companyID)
		if err != nil {
			return nil, err
		}
		outlet.Code = code.OutletCode(outlet.Name, codes, outlet.Code)
	}
	outlet.UpdatedAt = time.Now()
	if err := uc.repo.Update(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// List pages through the company's non-deleted outlets.
func (uc *OutletUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.OutletListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutletResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOutletResponse(o))
	}
	return &dto.OutletListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete soft-removes an outlet. Movement history keeps referencing its id;
// labels for it degrade to the unknown-outlet sentinel.
func (uc *OutletUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.ownedOutlet(companyID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id, time.Now())
}

func (uc *OutletUseCase) ownedOutlet(companyID, id string) (*entity.Outlet, error) {
	outlet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, domain.ErrNotFound
	}
	if outlet.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return outlet, nil
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	if o == nil {
		return nil
	}
	return &dto.OutletResponse{
		ID:        o.ID,
		Code:      o.Code,
		Name:      o.Name,
		Address:   o.Address,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
