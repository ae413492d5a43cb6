package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/deduction"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/inventory"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	OrderDeduction *deduction.OrderDeductionUseCase
	InventoryQuery *inventory.QueryUseCase
	JWTSecret      string
}

// Router registers the API routes. Everything under /api requires a
// Bearer token; link mutation additionally requires the admin role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Categories and the link graph
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/validate-links", categoryHandler.ValidateAllLinks)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole("admin"), categoryHandler.Delete)
	categories.Get("/:id/circular-check", categoryHandler.CheckCircular)
	categories.Get("/:id/chains", categoryHandler.DependencyChains)
	categories.Post("/:id/links", RequireRole("admin"), categoryHandler.AddLink)
	categories.Delete("/:id/links/:targetId", RequireRole("admin"), categoryHandler.RemoveLink)
	categories.Patch("/:id/links/:targetId", RequireRole("admin"), categoryHandler.SetLinkActive)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole("admin"), productHandler.Delete)

	// Order deductions (preview + execute)
	orders := api.Group("/orders")
	deductionHandler := NewDeductionHandler(deps.OrderDeduction)
	orders.Post("/deductions/preview", deductionHandler.Preview)
	orders.Post("/deductions", deductionHandler.Process)

	// Inventory read side
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryQuery)
	inv.Get("/levels", inventoryHandler.Levels)
	inv.Get("/movements", inventoryHandler.Movements)
}
