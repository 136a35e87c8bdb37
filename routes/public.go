package routes

import (
	public_handlers "undangan.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

func registerPublicRoutes(app *fiber.App, deps Deps, handler *public_handlers.PublicHandler) {
	app.Get("/", handler.ShowLanding)
	app.Get("/undangan", handler.ShowCatalog)
	app.Get(deps.Config.InvitationPath, handler.ShowInvitation)

	app.Post("/api/pin/verify", handler.VerifyPIN)
	app.Post("/api/pin/logout", handler.Logout)

	app.Get("/api/guestbook", handler.ListGuestMessages)
	app.Post("/api/guestbook", handler.SubmitGuestMessage)
}
