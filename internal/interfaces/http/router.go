package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	OutletUC  *usecase.OutletUseCase
	ItemUC    *usecase.ItemUseCase
	QuoteUC   *usecase.QuoteUseCase
	MenuUC    *usecase.MenuUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas públicas son las que consume
// el storefront sin sesión; el resto exige Bearer Token con rol admin o editor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	outletHandler := NewOutletHandler(deps.OutletUC)
	itemHandler := NewItemHandler(deps.ItemUC)
	pricingHandler := NewPricingHandler(deps.QuoteUC, deps.MenuUC)

	// Storefront (público)
	api.Get("/companies/:companyId/menu", pricingHandler.GetMenu)
	api.Get("/companies/:companyId/menu/pdf", pricingHandler.GetMenuPDF)
	api.Get("/companies/:id", companyHandler.GetByID)
	api.Get("/items/:id", itemHandler.GetByID)
	api.Get("/items/:id/price", pricingHandler.ResolvePrice)
	api.Post("/items/:id/quote", pricingHandler.QuoteLine)

	// Panel de administración (requiere Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole("admin", "editor"))

	protected.Get("/companies", companyHandler.List)
	protected.Post("/companies", companyHandler.Create)

	protected.Get("/companies/:companyId/outlets", outletHandler.List)
	protected.Post("/companies/:companyId/outlets", outletHandler.Create)
	protected.Get("/outlets/:id", outletHandler.GetByID)
	protected.Put("/outlets/:id", outletHandler.Update)
	protected.Delete("/outlets/:id", outletHandler.Delete)

	protected.Get("/companies/:companyId/items", itemHandler.List)
	protected.Post("/companies/:companyId/items", itemHandler.Create)
	protected.Put("/items/:id", itemHandler.Update)
	protected.Delete("/items/:id", itemHandler.Delete)
}
