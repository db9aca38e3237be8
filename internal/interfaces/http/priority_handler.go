package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/application/priority"
	"github.com/gudangkita/gudang-api/internal/domain/location"
)

// PriorityHandler handles prioritization HTTP requests (protected).
type PriorityHandler struct {
	uc *priority.UseCase
}

// NewPriorityHandler builds the handler.
func NewPriorityHandler(uc *priority.UseCase) *PriorityHandler {
	return &PriorityHandler{uc: uc}
}

// Rank godoc
// @Summary      Prioritized product list for a location
// @Description  Favorites first, then by how often the product moved at the
//               location, ties broken by name.
// @Tags         priority
// @Security     Bearer
// @Produce      json
// @Param        location_kind  query  string  false  "central | outlet"  default(central)
// @Param        outlet_id      query  string  false  "Outlet ID when kind is outlet"
// @Success      200  {array}   dto.PriorityProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/priority [get]
func (h *PriorityHandler) Rank(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	loc, ok := parseLocation(c.Query("location_kind", string(location.KindCentral)), c.Query("outlet_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_kind must be central or outlet (with outlet_id)"})
	}
	items, err := h.uc.Rank(c.Context(), companyID, loc)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(items)
}

// ToggleFavorite godoc
// @Summary      Mark or unmark a product as favorite at a location
// @Tags         priority
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ToggleFavoriteRequest  true  "Favorite toggle"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/favorites [post]
func (h *PriorityHandler) ToggleFavorite(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.ToggleFavoriteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	loc, ok := parseLocation(in.LocationKind, in.OutletID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_kind must be central or outlet (with outlet_id)"})
	}
	if err := h.uc.ToggleFavorite(c.Context(), companyID, loc, in.ProductID, in.Favorite); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
