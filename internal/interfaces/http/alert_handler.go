package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/gudang-api/internal/application/alert"
	"github.com/gudangkita/gudang-api/internal/application/dto"
	"github.com/gudangkita/gudang-api/internal/domain/location"
)

// AlertHandler handles low-stock alert HTTP requests (protected).
type AlertHandler struct {
	uc *alert.UseCase
}

// NewAlertHandler builds the handler.
func NewAlertHandler(uc *alert.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Low-stock alerts
// @Description  Products below their minimum per location, largest shortfall
//               first.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "all | central | outlet:<id>"  default(all)
// @Param        limit     query  int     false  "Cap the number of alerts (0 = all)"
// @Success      200  {array}   dto.LowStockAlertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	items, err := h.uc.LowStock(c.Context(), companyID, c.Query("location", location.FilterAll), c.QueryInt("limit", 0))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(items)
}

// LowStockPDF godoc
// @Summary      Low-stock alerts as PDF
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        location  query  string  false  "all | central | outlet:<id>"  default(all)
// @Param        limit     query  int     false  "Cap the number of alerts (0 = all)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts/low-stock/pdf [get]
func (h *AlertHandler) LowStockPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	pdfBytes, err := h.uc.LowStockPDF(c.Context(), companyID, c.Query("location", location.FilterAll), c.QueryInt("limit", 0))
	if err != nil {
		return writeDomainError(c, err)
	}
	filename := fmt.Sprintf("stok-menipis-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
