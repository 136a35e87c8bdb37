package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession membuat session store untuk gerbang PIN admin.
// Cookie memory-backed cukup: satu admin, satu proses.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:undangan_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
