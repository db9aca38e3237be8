package entity

import (
	"time"

	"github.com/gudangkita/gudang-api/internal/domain/location"
)

// TransferAllocation is one destination leg of a transfer.
type TransferAllocation struct {
	OutletID string
	Qty      int64
}

// Transfer records a one-source-to-many-destinations stock relocation.
// Invariant: TotalQty equals the sum of all allocation quantities, and the
// ledger holds exactly one outbound leg at the source plus one inbound leg
// per destination, all carrying this transfer's id.
type Transfer struct {
	ID           string
	CompanyID    string
	ProductID    string
	Source       location.Location
	Destinations []TransferAllocation
	TotalQty     int64
	Note         string
	CreatedAt    time.Time
	CreatedBy    string
}
