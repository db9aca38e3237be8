package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/gudang-api/internal/application/catalog"
	"github.com/gudangkita/gudang-api/internal/application/dto"
)

// OutletHandler handles outlet HTTP requests (protected).
type OutletHandler struct {
	uc *catalog.OutletUseCase
}

// NewOutletHandler builds the handler.
func NewOutletHandler(uc *catalog.OutletUseCase) *OutletHandler {
	return &OutletHandler{uc: uc}
}

// Create godoc
// @Summary      Create outlet
// @Description  The short code is generated from the name.
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "Outlet data"
// @Success      201   {object}  dto.OutletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outlets [post]
func (h *OutletHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id required"})
	}
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get outlet by ID
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Outlet ID"
// @Success      200  {object}  dto.OutletResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outlets/{id} [get]
func (h *OutletHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), companyID, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List outlets
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OutletListResponse
// @Router       /api/outlets [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id required"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update outlet
// @Description  regenerate_code re-derives the short code from the name.
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Outlet ID"
// @Param        body  body  dto.UpdateOutletRequest  true  "Fields to update"
// @Success      200   {object}  dto.OutletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outlets/{id} [put]
func (h *OutletHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), companyID, id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete outlet
// @Description  Soft delete: history referencing the outlet renders with the
//               unknown-outlet label.
// @Tags         outlets
// @Security     Bearer
// @Param        id  path  string  true  "Outlet ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outlets/{id} [delete]
func (h *OutletHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), companyID, id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
