package middlewares

import (
	"undangan.link/configs"
	"undangan.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionAdminKey kunci flag admin di session setelah PIN diverifikasi.
const SessionAdminKey = "is_admin"

// SessionStart mengambil session request aktif dari store di Locals.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// MarkAdmin menandai session sebagai admin (dipanggil setelah PIN cocok).
func MarkAdmin(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(SessionAdminKey, true)
	return sess.Save()
}

// ClearAdmin mencabut akses admin dari session.
func ClearAdmin(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Delete(SessionAdminKey)
	return sess.Save()
}

// IsAdmin melaporkan apakah session sudah melewati gerbang PIN.
func IsAdmin(c *fiber.Ctx) bool {
	sess, err := SessionStart(c)
	if err != nil {
		return false
	}
	isAdmin, _ := sess.Get(SessionAdminKey).(bool)
	return isAdmin
}

// PINAuth membuat middleware yang menolak request sebelum gerbang PIN
// dilewati. Permintaan JSON mendapat 401, navigasi browser diarahkan ke
// halaman undangan dengan prompt PIN.
func PINAuth(cfg *configs.Config) fiber.Handler {
	promptURL := cfg.InvitationPath + "?admin=true"
	return func(c *fiber.Ctx) error {
		if IsAdmin(c) {
			return c.Next()
		}

		configslog.SLog.Warnf("Akses admin ditolak: %s %s", c.Method(), c.Path())
		if c.Accepts("text/html", "application/json") == "application/json" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "PIN admin diperlukan",
			})
		}
		return c.Redirect(promptURL, fiber.StatusSeeOther)
	}
}
