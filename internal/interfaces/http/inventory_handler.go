package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/application/ledger"
	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/location"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// InventoryHandler handles ledger HTTP requests: movements, transfers and
// balances (protected).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// parseLocation resolves the kind/outlet_id pair of a request body. An
// outlet kind without an id is a client error.
func parseLocation(kind, outletID string) (location.Location, bool) {
	switch kind {
	case string(location.KindCentral):
		return location.Central(), true
	case string(location.KindOutlet):
		if outletID == "" {
			return location.Location{}, false
		}
		return location.Outlet(outletID), true
	default:
		return location.Location{}, false
	}
}

// RecordMovement godoc
// @Summary      Record stock movement
// @Description  Appends one ledger entry: in (+qty), out (-qty, rejected when
//               the balance would go negative) or opname (delta reconciles the
//               balance to counted_stock).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movement data"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	loc, ok := parseLocation(in.LocationKind, in.OutletID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_kind must be central or outlet (with outlet_id)"})
	}
	movement, err := h.uc.RecordMovement(c.Context(), ledger.MovementInput{
		CompanyID:    companyID,
		UserID:       userID,
		ProductID:    in.ProductID,
		Location:     loc,
		Type:         in.Type,
		Qty:          in.Qty,
		CountedStock: in.CountedStock,
		Note:         in.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse(movement))
}

// ListMovements godoc
// @Summary      Movement history
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location    query  string  false  "all | central | outlet:<id>"  default(all)
// @Param        product_id  query  string  false  "Filter by product"
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	limit, offset := pageParams(c)
	movements, err := h.uc.ListMovements(c.Context(), companyID, repository.MovementQuery{
		LocationFilter: c.Query("location", location.FilterAll),
		ProductID:      c.Query("product_id"),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, movementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// ExecuteTransfer godoc
// @Summary      Transfer stock to one or more outlets
// @Description  Moves the sum of destination quantities out of the source and
//               into each destination atomically. A failing transfer leaves
//               no partial effects.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecuteTransferRequest  true  "Transfer data"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) ExecuteTransfer(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.ExecuteTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	source, ok := parseLocation(in.SourceKind, in.OutletID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source_kind must be central or outlet (with outlet_id)"})
	}
	dests := make([]ledger.TransferDestination, 0, len(in.Destinations))
	for _, d := range in.Destinations {
		dests = append(dests, ledger.TransferDestination{OutletID: d.OutletID, Qty: d.Qty})
	}
	transfer, err := h.uc.ExecuteTransfer(c.Context(), ledger.TransferInput{
		CompanyID:    companyID,
		UserID:       userID,
		ProductID:    in.ProductID,
		Source:       source,
		Note:         in.Note,
		Destinations: dests,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transferResponse(transfer))
}

// ListTransfers godoc
// @Summary      Transfer history
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/inventory/transfers [get]
func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	limit, offset := pageParams(c)
	transfers, err := h.uc.ListTransfers(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, transferResponse(t))
	}
	return c.JSON(dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Stock godoc
// @Summary      Current balances
// @Description  Lists the non-zero balance rows in the filter scope. Missing
//               rows mean zero stock.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "all | central | outlet:<id>"  default(all)
// @Success      200  {array}   dto.StockRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	records, err := h.uc.Stock(c.Context(), companyID, c.Query("location", location.FilterAll))
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.StockRecordResponse{
			LocationKey: r.LocationKey,
			ProductID:   r.ProductID,
			Qty:         r.Qty,
		})
	}
	return c.JSON(items)
}

func movementResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		LocationKind: string(m.Location.Kind),
		LocationKey:  m.Location.Key(),
		Type:         m.Type,
		Qty:          m.Qty,
		Delta:        m.Delta,
		BalanceAfter: m.BalanceAfter,
		CountedStock: m.CountedStock,
		Note:         m.Note,
		TransferID:   m.TransferID,
		CreatedAt:    m.CreatedAt,
	}
	if m.Location.IsOutlet() {
		out.OutletID = m.Location.OutletID
	}
	return out
}

func transferResponse(t *entity.Transfer) dto.TransferResponse {
	dests := make([]dto.TransferDestinationResponse, 0, len(t.Destinations))
	for _, d := range t.Destinations {
		dests = append(dests, dto.TransferDestinationResponse{OutletID: d.OutletID, Qty: d.Qty})
	}
	out := dto.TransferResponse{
		ID:           t.ID,
		ProductID:    t.ProductID,
		SourceKind:   string(t.Source.Kind),
		SourceKey:    t.Source.Key(),
		Destinations: dests,
		TotalQty:     t.TotalQty,
		Note:         t.Note,
		CreatedAt:    t.CreatedAt,
	}
	if t.Source.IsOutlet() {
		out.OutletID = t.Source.OutletID
	}
	return out
}
