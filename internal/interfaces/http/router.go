package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/gudang-api/internal/application/alert"
	"github.com/gudangkita/gudang-api/internal/application/catalog"
	"github.com/gudangkita/gudang-api/internal/application/ledger"
	"github.com/gudangkita/gudang-api/internal/application/priority"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	OutletUC   *catalog.OutletUseCase
	LedgerUC   *ledger.UseCase
	PriorityUC *priority.UseCase
	AlertUC    *alert.UseCase
	JWTSecret  string
}

// Router registers the API routes. Everything under /api sits behind the
// JWT middleware; /health is the only open endpoint.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Outlets
	outlets := api.Group("/outlets")
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets.Post("/", outletHandler.Create)
	outlets.Get("/", outletHandler.List)
	outlets.Get("/:id", outletHandler.GetByID)
	outlets.Put("/:id", outletHandler.Update)
	outlets.Delete("/:id", outletHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ledger: movements, transfers, balances
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	inventory.Post("/movements", inventoryHandler.RecordMovement)
	inventory.Get("/movements", inventoryHandler.ListMovements)
	inventory.Post("/transfers", inventoryHandler.ExecuteTransfer)
	inventory.Get("/transfers", inventoryHandler.ListTransfers)
	inventory.Get("/stock", inventoryHandler.Stock)

	// Prioritization
	priorityHandler := NewPriorityHandler(deps.PriorityUC)
	inventory.Get("/priority", priorityHandler.Rank)
	inventory.Post("/favorites", priorityHandler.ToggleFavorite)

	// Low-stock alerts
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/low-stock", alertHandler.LowStock)
	alerts.Get("/low-stock/pdf", alertHandler.LowStockPDF)
}
