package dto

import "time"

// RecordMovementRequest body for POST /api/inventory/movements.
// For type in/out, qty is the positive quantity moved. For type opname,
// counted_stock carries the physically counted value and qty is ignored.
// Location: kind "central" needs no outlet_id; kind "outlet" does.
type RecordMovementRequest struct {
	ProductID    string `json:"product_id"`
	LocationKind string `json:"location_kind"`
	OutletID     string `json:"outlet_id,omitempty"`
	Type         string `json:"type"`
	Qty          int64  `json:"qty,omitempty"`
	CountedStock *int64 `json:"counted_stock,omitempty"`
	Note         string `json:"note,omitempty"`
}

// MovementResponse one ledger entry.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	LocationKind string    `json:"location_kind"`
	LocationKey  string    `json:"location_key"`
	OutletID     string    `json:"outlet_id,omitempty"`
	Type         string    `json:"type"`
	Qty          int64     `json:"qty"`
	Delta        int64     `json:"delta"`
	BalanceAfter int64     `json:"balance_after"`
	CountedStock *int64    `json:"counted_stock,omitempty"`
	Note         string    `json:"note,omitempty"`
	TransferID   string    `json:"transfer_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse paginated movement history.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TransferDestinationRequest one destination allocation of a transfer.
type TransferDestinationRequest struct {
	OutletID string `json:"outlet_id"`
	Qty      int64  `json:"qty"`
}

// ExecuteTransferRequest body for POST /api/inventory/transfers. The source
// follows the same location convention as movements.
type ExecuteTransferRequest struct {
	ProductID    string                       `json:"product_id"`
	SourceKind   string                       `json:"source_kind"`
	OutletID     string                       `json:"outlet_id,omitempty"`
	Note         string                       `json:"note,omitempty"`
	Destinations []TransferDestinationRequest `json:"destinations"`
}

// TransferDestinationResponse one destination allocation.
type TransferDestinationResponse struct {
	OutletID string `json:"outlet_id"`
	Qty      int64  `json:"qty"`
}

// TransferResponse one recorded transfer.
type TransferResponse struct {
	ID           string                        `json:"id"`
	ProductID    string                        `json:"product_id"`
	SourceKind   string                        `json:"source_kind"`
	SourceKey    string                        `json:"source_key"`
	OutletID     string                        `json:"outlet_id,omitempty"`
	Destinations []TransferDestinationResponse `json:"destinations"`
	TotalQty     int64                         `json:"total_qty"`
	Note         string                        `json:"note,omitempty"`
	CreatedAt    time.Time                     `json:"created_at"`
}

// TransferListResponse paginated transfer history.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockRecordResponse one (location, product) balance.
type StockRecordResponse struct {
	LocationKey string `json:"location_key"`
	ProductID   string `json:"product_id"`
	Qty         int64  `json:"qty"`
}
