package entity

import (
	"time"

	"github.com/gudangkita/gudang-api/internal/domain/location"
)

// Movement types.
const (
	MovementTypeIn     = "in"     // inbound
	MovementTypeOut    = "out"    // outbound
	MovementTypeOpname = "opname" // physical count reconciliation
)

// Movement is one immutable ledger entry changing the balance of a product
// at one location. Entries are append-only: corrections are made with
// compensating entries, never by mutating history.
//
// Invariant: BalanceAfter equals the previous balance at (product, location)
// plus Delta, and BalanceAfter >= 0.
type Movement struct {
	ID           string
	CompanyID    string
	ProductID    string
	Location     location.Location
	Type         string
	Qty          int64  // requested quantity (in/out); for opname, the counted stock
	Delta        int64  // signed change applied to the balance
	BalanceAfter int64
	CountedStock *int64 // opname only: the physically counted value
	Note         string
	TransferID   string // set on legs created by a transfer
	CreatedAt    time.Time
	CreatedBy    string
}
