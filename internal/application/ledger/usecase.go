// Package ledger implements the movement ledger and the transfer engine:
// every stock-affecting command is validated up front, serialized per
// (company, product, location) key, and applied as one ledger entry plus one
// balance mutation inside a single database transaction.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// UseCase records movements and transfers transactionally and serves the
// read-side history and balance queries. Reads take no locks; they are
// snapshot reads that may be momentarily stale relative to an in-flight
// write.
type UseCase struct {
	tx        TxRunner
	products  repository.ProductRepository
	outlets   repository.OutletRepository
	movements repository.MovementRepository
	transfers repository.TransferRepository
	balances  repository.BalanceRepository
	locks     *KeyLocks
}

// NewUseCase builds the ledger use case.
func NewUseCase(
	tx TxRunner,
	products repository.ProductRepository,
	outlets repository.OutletRepository,
	movements repository.MovementRepository,
	transfers repository.TransferRepository,
	balances repository.BalanceRepository,
) *UseCase {
	return &UseCase{
		tx:        tx,
		products:  products,
		outlets:   outlets,
		movements: movements,
		transfers: transfers,
		balances:  balances,
		locks:     NewKeyLocks(),
	}
}

// MovementInput command input for RecordMovement. Qty is the positive moved
// quantity for in/out; CountedStock is the physically counted value for
// opname (Qty is ignored then).
type MovementInput struct {
	CompanyID    string
	UserID       string
	ProductID    string
	Location     location.Location
	Type         string
	Qty          int64
	CountedStock *int64
	Note         string
}

// RecordMovement validates, serializes and applies one ledger entry.
//
//   - in:     delta = +qty
//   - out:    delta = -qty, rejected with ErrInsufficientStock if the balance
//     would go below zero
//   - opname: delta = counted - current balance; always accepted, it
//     reconciles to a physical count
//
// All failures are detected before any mutation; the entry and the balance
// update commit together or not at all.
func (uc *UseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Qty <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeOpname:
		if in.CountedStock == nil || *in.CountedStock < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if err := uc.resolveRefs(in.CompanyID, in.ProductID, in.Location); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(lockKey(in.CompanyID, in.ProductID, in.Location.Key()))
	defer unlock()

	now := time.Now()
	var created *entity.Movement
	err := uc.tx.Run(ctx, func(
		movRepo repository.MovementRepository,
		balRepo repository.BalanceRepository,
		_ repository.TransferRepository,
	) error {
		balance, err := balRepo.GetForUpdate(in.CompanyID, in.Location.Key(), in.ProductID)
		if err != nil {
			return err
		}

		qty := in.Qty
		var delta int64
		var counted *int64
		switch in.Type {
		case entity.MovementTypeIn:
			delta = in.Qty
		case entity.MovementTypeOut:
			delta = -in.Qty
			if balance+delta < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.MovementTypeOpname:
			c := *in.CountedStock
			counted = &c
			qty = c
			delta = c - balance
		}
		after := balance + delta

		if err := balRepo.Upsert(&entity.StockRecord{
			CompanyID:   in.CompanyID,
			LocationKey: in.Location.Key(),
			ProductID:   in.ProductID,
			Qty:         after,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:           uuid.New().String(),
			CompanyID:    in.CompanyID,
			ProductID:    in.ProductID,
			Location:     in.Location,
			Type:         in.Type,
			Qty:          qty,
			Delta:        delta,
			BalanceAfter: after,
			CountedStock: counted,
			Note:         in.Note,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMovements returns movement history for a location filter, newest
// first.
func (uc *UseCase) ListMovements(ctx context.Context, companyID string, q repository.MovementQuery) ([]*entity.Movement, error) {
	if !location.ValidFilter(q.LocationFilter) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movements.List(companyID, q)
}

// ListTransfers returns transfer history, newest first.
func (uc *UseCase) ListTransfers(ctx context.Context, companyID string, limit, offset int) ([]*entity.Transfer, error) {
	return uc.transfers.ListByCompany(companyID, limit, offset)
}

// Stock returns the balances visible under a location filter.
func (uc *UseCase) Stock(ctx context.Context, companyID, filter string) ([]entity.StockRecord, error) {
	if !location.ValidFilter(filter) {
		return nil, domain.ErrInvalidInput
	}
	if filter == "" || filter == location.FilterAll {
		return uc.balances.ListByCompany(companyID)
	}
	return uc.balances.ListByLocation(companyID, filter)
}

// resolveRefs refuses to mutate balances against unresolved references.
func (uc *UseCase) resolveRefs(companyID, productID string, loc location.Location) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrUnknownReference
	}
	if loc.IsOutlet() {
		if loc.OutletID == "" {
			return domain.ErrUnknownReference
		}
		outlet, err := uc.outlets.GetByID(loc.OutletID)
		if err != nil {
			return err
		}
		if outlet == nil || outlet.CompanyID != companyID {
			return domain.ErrUnknownReference
		}
	}
	return nil
}
