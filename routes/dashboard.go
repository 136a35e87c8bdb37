package routes

import (
	dashboard_handlers "undangan.link/handlers/dashboard"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerDashboardRoutes(app *fiber.App, deps Deps) {
	handler := dashboard_handlers.NewDocumentHandler(deps.Config, deps.Documents)

	group := app.Group("/dashboard")
	group.Use(middlewares.PINAuth(deps.Config))

	group.Get("/", handler.ShowDashboard)

	api := group.Group("/api")
	api.Get("/document", handler.GetLive)
	api.Get("/document/draft", handler.GetDraft)
	api.Post("/document/reload", handler.Reload)
	api.Post("/document/field", handler.SetField)
	api.Post("/document/save", handler.Save)
	api.Post("/document/reset", handler.Reset)

	api.Post("/bank-accounts", handler.AddBankAccount)
	api.Put("/bank-accounts/:index", handler.UpdateBankAccount)
	api.Delete("/bank-accounts/:index", handler.RemoveBankAccount)

	api.Post("/gallery", handler.AddGalleryItem)
	api.Delete("/gallery/:index", handler.RemoveGalleryItem)

	api.Post("/turut-mengundang", handler.AddTurutMengundang)
	api.Put("/turut-mengundang/:index", handler.UpdateTurutMengundang)
	api.Delete("/turut-mengundang/:index", handler.RemoveTurutMengundang)

	api.Post("/guest-link", handler.GenerateGuestLink)
}
