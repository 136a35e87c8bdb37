package handlers

import (
	"errors"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/middlewares"
	"undangan.link/models"
	"undangan.link/pkg/countdown"
	"undangan.link/pkg/guestlink"
	"undangan.link/router"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicHandler halaman publik: landing, katalog, dan undangan itu sendiri.
type PublicHandler struct {
	cfg       *configs.Config
	documents services.IDocumentService
	guestbook services.IGuestbookService
	catalog   services.ICatalogService
	views     *router.Router
}

// NewPublicHandler membuat handler dengan dependensi eksplisit.
func NewPublicHandler(cfg *configs.Config, documents services.IDocumentService, guestbook services.IGuestbookService, catalog services.ICatalogService) *PublicHandler {
	return &PublicHandler{
		cfg:       cfg,
		documents: documents,
		guestbook: guestbook,
		catalog:   catalog,
		views:     router.New(cfg.InvitationPath),
	}
}

// ShowLanding halaman muka situs.
func (h *PublicHandler) ShowLanding(c *fiber.Ctx) error {
	doc := h.documents.Live(c.UserContext())
	return c.Render("landing", fiber.Map{
		"Title":          "Undangan Digital",
		"Couple":         doc.CoupleShortName,
		"InvitationPath": h.cfg.InvitationPath,
	}, "layouts/main")
}

// ShowCatalog storefront desain undangan.
func (h *PublicHandler) ShowCatalog(c *fiber.Ctx) error {
	catalog := h.catalog.List(c.UserContext())
	return c.Render("catalog", fiber.Map{
		"Title":   "Katalog Desain",
		"Catalog": catalog,
	}, "layouts/main")
}

// ShowInvitation halaman undangan: sapaan personal, hitung mundur, buku
// tamu, dan penanda kunci untuk tamu tanpa tautan personal.
func (h *PublicHandler) ShowInvitation(c *fiber.Ctx) error {
	res := h.views.Resolve(c.Path(), string(c.Request().URI().QueryString()))

	doc := h.documents.Live(c.UserContext())
	messages := h.guestbook.List(c.UserContext())

	data := fiber.Map{
		"Title":        doc.CoupleShortName,
		"Doc":          doc,
		"Greeting":     guestlink.Greeting(res.GuestName),
		"GuestName":    res.GuestName,
		"Personalized": guestlink.IsPersonalized(res.GuestName),
		"AdminPrompt":  res.AdminPrompt,
		"Messages":     messages,
		"Events":       h.renderEvents(doc.Events),
	}
	if target, err := time.Parse(time.RFC3339, doc.WeddingDate); err == nil {
		data["Countdown"] = countdown.Until(time.Now(), target)
		data["WeddingDate"] = target
	}
	return c.Render("invitation", data, "layouts/main")
}

// eventView baris acara yang siap dirender.
type eventView struct {
	models.Event
	DateDisplay string
}

func (h *PublicHandler) renderEvents(events []models.Event) []eventView {
	out := make([]eventView, 0, len(events))
	for _, ev := range events {
		display := ev.Date
		if countdown.IsISODate(ev.Date) {
			display = countdown.FormatEventDate(ev.Date)
		}
		out = append(out, eventView{Event: ev, DateDisplay: display})
	}
	return out
}

// VerifyPIN memeriksa PIN admin dan menandai session bila cocok.
func (h *PublicHandler) VerifyPIN(c *fiber.Ctx) error {
	var req struct {
		PIN string `json:"pin" form:"pin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	if !h.cfg.PINComparer().Compare(req.PIN) {
		configslog.SLog.Warnf("PIN admin salah dari %s", c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "PIN salah"})
	}

	if err := middlewares.MarkAdmin(c); err != nil {
		configslog.Log.Error("Gagal menyimpan session admin", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session gagal disimpan"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Logout mencabut akses admin.
func (h *PublicHandler) Logout(c *fiber.Ctx) error {
	if err := middlewares.ClearAdmin(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session gagal dihapus"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListGuestMessages menyegarkan dan mengembalikan isi buku tamu.
func (h *PublicHandler) ListGuestMessages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"messages": h.guestbook.Refresh(c.UserContext())})
}

// SubmitGuestMessage menerima ucapan/RSVP dari tamu personal.
func (h *PublicHandler) SubmitGuestMessage(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name" form:"name"`
		Attendance string `json:"attendance" form:"attendance"`
		Message    string `json:"message" form:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	msg, err := h.guestbook.Submit(c.UserContext(), req.Name, models.Attendance(req.Attendance), req.Message)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, services.ErrGuestbookLocked):
			status = fiber.StatusForbidden
		case errors.Is(err, services.ErrGuestbookSendFailed):
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg})
}
