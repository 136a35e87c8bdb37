package routes

import (
	generator_handlers "undangan.link/handlers/generator"

	"github.com/gofiber/fiber/v2"
)

// Generator berdiri sendiri tanpa gerbang PIN: alat bantu sekali pakai
// untuk menyusun pesan, bukan permukaan penyuntingan undangan.
func registerGeneratorRoutes(app *fiber.App, deps Deps) {
	handler := generator_handlers.NewGeneratorHandler(deps.Broadcast)

	group := app.Group("/generator")

	group.Get("/", handler.ShowGenerator)

	api := group.Group("/api")
	api.Get("/queue", handler.ListQueue)
	api.Post("/queue", handler.AddToQueue)
	api.Delete("/queue/:id", handler.RemoveFromQueue)
	api.Post("/queue/:id/dispatch", handler.Dispatch)
	api.Post("/preview", handler.Preview)

	api.Get("/templates", handler.ListTemplates)
	api.Post("/templates", handler.CreateTemplate)
	api.Put("/templates/:id", handler.UpdateTemplate)
	api.Delete("/templates/:id", handler.DeleteTemplate)
}
