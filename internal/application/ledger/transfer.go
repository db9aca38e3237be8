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

// TransferDestination one destination allocation of a transfer command.
type TransferDestination struct {
	OutletID string
	Qty      int64
}

// TransferInput command input for ExecuteTransfer.
type TransferInput struct {
	CompanyID    string
	UserID       string
	ProductID    string
	Source       location.Location
	Note         string
	Destinations []TransferDestination
}

// ExecuteTransfer moves totalQty (the sum of destination quantities) from
// the source to each destination: one outbound leg at the source, then one
// inbound leg per destination in list order, plus the transfer record — all
// inside one transaction. The source balance is verified before any effect;
// a failing transfer leaves nothing behind.
//
// The source key and every destination key are locked in deterministic
// order before any delta is computed.
func (uc *UseCase) ExecuteTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if len(in.Destinations) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var totalQty int64
	for _, d := range in.Destinations {
		if d.Qty <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if location.Outlet(d.OutletID).Key() == in.Source.Key() {
			return nil, domain.ErrInvalidInput
		}
		totalQty += d.Qty
	}
	if err := uc.resolveRefs(in.CompanyID, in.ProductID, in.Source); err != nil {
		return nil, err
	}
	for _, d := range in.Destinations {
		if err := uc.resolveOutlet(in.CompanyID, d.OutletID); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(in.Destinations)+1)
	keys = append(keys, lockKey(in.CompanyID, in.ProductID, in.Source.Key()))
	for _, d := range in.Destinations {
		keys = append(keys, lockKey(in.CompanyID, in.ProductID, location.Outlet(d.OutletID).Key()))
	}
	unlock := uc.locks.Lock(keys...)
	defer unlock()

	now := time.Now()
	transferID := uuid.New().String()
	var created *entity.Transfer
	err := uc.tx.Run(ctx, func(
		movRepo repository.MovementRepository,
		balRepo repository.BalanceRepository,
		transferRepo repository.TransferRepository,
	) error {
		srcBalance, err := balRepo.GetForUpdate(in.CompanyID, in.Source.Key(), in.ProductID)
		if err != nil {
			return err
		}
		if srcBalance < totalQty {
			return domain.ErrInsufficientStock
		}

		// Outbound leg at the source for the full quantity.
		srcAfter := srcBalance - totalQty
		if err := balRepo.Upsert(&entity.StockRecord{
			CompanyID:   in.CompanyID,
			LocationKey: in.Source.Key(),
			ProductID:   in.ProductID,
			Qty:         srcAfter,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movement{
			ID:           uuid.New().String(),
			CompanyID:    in.CompanyID,
			ProductID:    in.ProductID,
			Location:     in.Source,
			Type:         entity.MovementTypeOut,
			Qty:          totalQty,
			Delta:        -totalQty,
			BalanceAfter: srcAfter,
			Note:         in.Note,
			TransferID:   transferID,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}); err != nil {
			return err
		}

		// Inbound legs, in destination order.
		allocations := make([]entity.TransferAllocation, 0, len(in.Destinations))
		for _, d := range in.Destinations {
			dest := location.Outlet(d.OutletID)
			balance, err := balRepo.GetForUpdate(in.CompanyID, dest.Key(), in.ProductID)
			if err != nil {
				return err
			}
			after := balance + d.Qty
			if err := balRepo.Upsert(&entity.StockRecord{
				CompanyID:   in.CompanyID,
				LocationKey: dest.Key(),
				ProductID:   in.ProductID,
				Qty:         after,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
			if err := movRepo.Create(&entity.Movement{
				ID:           uuid.New().String(),
				CompanyID:    in.CompanyID,
				ProductID:    in.ProductID,
				Location:     dest,
				Type:         entity.MovementTypeIn,
				Qty:          d.Qty,
				Delta:        d.Qty,
				BalanceAfter: after,
				Note:         in.Note,
				TransferID:   transferID,
				CreatedAt:    now,
				CreatedBy:    in.UserID,
			}); err != nil {
				return err
			}
			allocations = append(allocations, entity.TransferAllocation{OutletID: d.OutletID, Qty: d.Qty})
		}

		transfer := &entity.Transfer{
			ID:           transferID,
			CompanyID:    in.CompanyID,
			ProductID:    in.ProductID,
			Source:       in.Source,
			Destinations: allocations,
			TotalQty:     totalQty,
			Note:         in.Note,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}
		created = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) resolveOutlet(companyID, outletID string) error {
	if outletID == "" {
		return domain.ErrUnknownReference
	}
	outlet, err := uc.outlets.GetByID(outletID)
	if err != nil {
		return err
	}
	if outlet == nil || outlet.CompanyID != companyID {
		return domain.ErrUnknownReference
	}
	return nil
}
