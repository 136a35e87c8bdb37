package routes

import (
	"undangan.link/configs"
	"undangan.link/configs/configssession"
	public_handlers "undangan.link/handlers/public"
	"undangan.link/services"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps seluruh dependensi yang dibutuhkan lapisan rute. Dirakit di main
// supaya service dibuat sekali dan dibagikan antar handler.
type Deps struct {
	Config    *configs.Config
	Documents services.IDocumentService
	Guestbook services.IGuestbookService
	Broadcast services.IBroadcastService
	Catalog   services.ICatalogService
}

// SetupRoutes memasang middleware umum dan seluruh grup rute.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSession())

	publicHandler := public_handlers.NewPublicHandler(deps.Config, deps.Documents, deps.Guestbook, deps.Catalog)

	registerPublicRoutes(app, deps, publicHandler)
	registerDashboardRoutes(app, deps)
	registerGeneratorRoutes(app, deps)
	registerAdminRoutes(app, deps)

	app.Static("/assets", "./assets")
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Path yang tidak dikenal jatuh ke landing; klien JSON tetap dapat 404.
	app.Use(notFoundHandler(publicHandler))
}

// initializeSession menaruh session store di Locals untuk gerbang PIN.
func initializeSession() fiber.Handler {
	sessionStore := configssession.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(publicHandler *public_handlers.PublicHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Accepts("text/html", "application/json") == "application/json" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "halaman tidak ditemukan"})
		}
		return publicHandler.ShowLanding(c)
	}
}
