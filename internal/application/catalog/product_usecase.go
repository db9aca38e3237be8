// Package catalog implements the master-data commands: products and outlets
// with generated codes, rename/threshold updates and soft removal. Soft
// deletion keeps historical movements valid — they reference ids, and ids
// are never reused.
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

// ProductUseCase CRUD commands for products.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create stores a new product with a SKU derived from its name.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	skus, err := uc.repo.ListSKUs(companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		SKU:        code.ProductSKU(name, skus, ""),
		Name:       name,
		MinStock:   in.MinStock,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		UnitID:     in.UnitID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns one product of the company, nil when absent.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.ownedProduct(companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update applies rename/threshold/price changes. With RegenerateSKU the SKU
// is re-derived from the (possibly renamed) product, keeping the current SKU
// when it still matches.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.ownedProduct(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.RegenerateSKU {
		skus, err := uc.repo.ListSKUs(companyID)
		if err != nil {
			return nil, err
		}
		product.SKU = code.ProductSKU(product.Name, skus, product.SKU)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List pages through the company's non-deleted products.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete soft-removes a product. Its movements stay in the ledger.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.ownedProduct(companyID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id, time.Now())
}

func (uc *ProductUseCase) ownedProduct(companyID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		MinStock:   p.MinStock,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		UnitID:     p.UnitID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
