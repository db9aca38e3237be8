// Package alert computes which products sit below their configured minimum
// per location, sorted by the size of the shortfall.
package alert

import (
	"context"
	"sort"
	"time"

	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
	"github.com/gudangkita/gudang-api/internal/domain/stockset"
)

// UseCase derives low-stock alerts from the balance snapshot. Reads take no
// locks and may be momentarily stale relative to in-flight writes.
type UseCase struct {
	products repository.ProductRepository
	outlets  repository.OutletRepository
	balances repository.BalanceRepository
	reports  ReportGenerator
}

// NewUseCase builds the use case. reports may be nil when PDF export is not
// wired.
func NewUseCase(
	products repository.ProductRepository,
	outlets repository.OutletRepository,
	balances repository.BalanceRepository,
	reports ReportGenerator,
) *UseCase {
	return &UseCase{products: products, outlets: outlets, balances: balances, reports: reports}
}

// LowStock lists every (location, product) whose balance sits below the
// product's minimum within the filter scope: gap = minimum - current, only
// gaps > 0 are emitted, sorted descending, optionally truncated to limit.
// Products with a zero minimum never alert.
func (uc *UseCase) LowStock(ctx context.Context, companyID, filter string, limit int) ([]dto.LowStockAlertResponse, error) {
	if !location.ValidFilter(filter) {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.products.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	outlets, err := uc.outlets.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]location.OutletRef, len(outlets))
	for _, o := range outlets {
		refs[o.ID] = location.OutletRef{Name: o.Name, Code: o.Code}
	}

	// Scopes covered by the filter. An outlet filter must resolve: alerting
	// against a ghost outlet would report the full minimum as missing for
	// every product.
	var scopes []location.Location
	switch {
	case filter == "" || filter == location.FilterAll:
		scopes = append(scopes, location.Central())
		for _, o := range outlets {
			scopes = append(scopes, location.Outlet(o.ID))
		}
	case filter == location.FilterCentral:
		scopes = append(scopes, location.Central())
	default:
		loc := location.FromKey(filter)
		if _, ok := refs[loc.OutletID]; !ok {
			return nil, domain.ErrUnknownReference
		}
		scopes = append(scopes, loc)
	}

	records, err := uc.balances.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	var items []dto.LowStockAlertResponse
	for _, scope := range scopes {
		for _, p := range products {
			current := stockset.Get(records, scope.Key(), p.ID)
			gap := p.MinStock - current
			if gap <= 0 {
				continue
			}
			item := dto.LowStockAlertResponse{
				ProductID:     p.ID,
				Name:          p.Name,
				SKU:           p.SKU,
				CurrentStock:  current,
				MinStock:      p.MinStock,
				Gap:           gap,
				LocationKind:  string(scope.Kind),
				LocationKey:   scope.Key(),
				LocationLabel: scope.Label(refs),
			}
			if scope.IsOutlet() {
				item.OutletID = scope.OutletID
			}
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Gap > items[j].Gap
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// LowStockPDF renders the alert list as a PDF report.
func (uc *UseCase) LowStockPDF(ctx context.Context, companyID, filter string, limit int) ([]byte, error) {
	items, err := uc.LowStock(ctx, companyID, filter, limit)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateLowStockReport(ctx, companyID, time.Now(), items)
}
