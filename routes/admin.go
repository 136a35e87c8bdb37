package routes

import (
	admin_handlers "undangan.link/handlers/admin"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAdminRoutes(app *fiber.App, deps Deps) {
	handler := admin_handlers.NewCatalogHandler(deps.Catalog)

	// Checkout tersimulasi terbuka untuk pembeli, tanpa gerbang PIN.
	app.Get("/api/catalog", handler.ListCatalog)
	app.Post("/api/orders", handler.CreateOrder)
	app.Get("/api/orders/:id", handler.GetOrder)

	group := app.Group("/undangan/admin")
	group.Use(middlewares.PINAuth(deps.Config))

	group.Get("/", handler.ShowAdminCatalog)
	group.Post("/api/catalog", handler.SaveCatalog)
}
