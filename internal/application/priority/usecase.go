// Package priority ranks a location's products for fast entry: favorites
// first, then by how often the product has moved at that location, ties
// broken by collated name. The ordering is recomputed on every read, never
// stored.
package priority

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// UseCase computes the prioritized ordering and persists favorite marks.
type UseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	favorites repository.FavoriteRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	favorites repository.FavoriteRepository,
) *UseCase {
	return &UseCase{products: products, movements: movements, favorites: favorites}
}

// Rank returns the company's products ordered for the given location:
//
//  1. favorited before non-favorited
//  2. higher usage count first (one increment per historical movement)
//  3. name ascending under Indonesian collation
func (uc *UseCase) Rank(ctx context.Context, companyID string, loc location.Location) ([]dto.PriorityProductResponse, error) {
	products, err := uc.products.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	favs, err := uc.favorites.ListByLocation(companyID, loc.Key())
	if err != nil {
		return nil, err
	}
	usage, err := uc.movements.CountByProduct(companyID, loc.Key())
	if err != nil {
		return nil, err
	}

	items := make([]dto.PriorityProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.PriorityProductResponse{
			ProductID:  p.ID,
			SKU:        p.SKU,
			Name:       p.Name,
			Favorite:   favs[p.ID],
			UsageCount: usage[p.ID],
		})
	}

	// collate.Collator is not safe for concurrent use; build one per call.
	collator := collate.New(language.Indonesian)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Favorite != b.Favorite {
			return a.Favorite
		}
		if a.UsageCount != b.UsageCount {
			return a.UsageCount > b.UsageCount
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})
	return items, nil
}

// ToggleFavorite marks or unmarks a product as favorite at a location.
func (uc *UseCase) ToggleFavorite(ctx context.Context, companyID string, loc location.Location, productID string, favorite bool) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrUnknownReference
	}
	return uc.favorites.Set(companyID, loc.Key(), productID, favorite)
}
