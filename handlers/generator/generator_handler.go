package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/queryparams"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeneratorHandler antrian kirim massal + template pesan WhatsApp.
type GeneratorHandler struct {
	service services.IBroadcastService
}

// NewGeneratorHandler membuat handler dengan dependensi eksplisit.
func NewGeneratorHandler(service services.IBroadcastService) *GeneratorHandler {
	return &GeneratorHandler{service: service}
}

// ShowGenerator halaman generator massal.
func (h *GeneratorHandler) ShowGenerator(c *fiber.Ctx) error {
	templates, err := h.service.ListTemplates(c.UserContext())
	if err != nil {
		configslog.Log.Error("Gagal memuat template pesan", zap.Error(err))
		templates = nil
	}
	return c.Render("generator", fiber.Map{
		"Title":     "Generator Pesan Massal",
		"Templates": templates,
	}, "layouts/main")
}

// --- Antrian ---

// ListQueue pencarian + filter status + pagination antrian tamu.
func (h *GeneratorHandler) ListQueue(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parameter tidak valid"})
	}

	result, err := h.service.ListQueue(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Gagal memuat antrian", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "antrian gagal dimuat"})
	}
	return c.JSON(result)
}

// AddToQueue menambahkan tamu baru berstatus queued.
func (h *GeneratorHandler) AddToQueue(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name" form:"name"`
		Phone string `json:"phone" form:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	item, err := h.service.AddToQueue(c.UserContext(), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrQueueInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Gagal menambah antrian", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "antrian gagal disimpan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}

// RemoveFromQueue menghapus satu tamu dari antrian.
func (h *GeneratorHandler) RemoveFromQueue(c *fiber.Ctx) error {
	if err := h.service.RemoveFromQueue(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrQueueItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "antrian gagal dihapus"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Dispatch membangun deep-link WhatsApp untuk satu tamu dan menandainya
// terkirim. Deep-link dikembalikan ke klien untuk dibuka di tab baru.
func (h *GeneratorHandler) Dispatch(c *fiber.Ctx) error {
	var req struct {
		TemplateID string `json:"templateId" form:"templateId"`
	}
	_ = c.BodyParser(&req) // templateId opsional, kosong berarti template pertama

	result, err := h.service.Dispatch(c.UserContext(), c.Params("id"), req.TemplateID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQueueItemNotFound), errors.Is(err, services.ErrTemplateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Dispatch gagal", zap.String("itemID", c.Params("id")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "dispatch gagal"})
		}
	}
	return c.JSON(result)
}

// Preview merender isi pesan untuk satu nama tanpa menyentuh antrian.
func (h *GeneratorHandler) Preview(c *fiber.Ctx) error {
	var req struct {
		TemplateID string `json:"templateId" form:"templateId"`
		GuestName  string `json:"guestName" form:"guestName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	body, err := h.service.Preview(c.UserContext(), req.TemplateID, req.GuestName)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "preview gagal"})
	}
	return c.JSON(fiber.Map{"body": body})
}

// --- Template pesan ---

func (h *GeneratorHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.service.ListTemplates(c.UserContext())
	if err != nil {
		configslog.Log.Error("Gagal memuat template pesan", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "template gagal dimuat"})
	}
	return c.JSON(fiber.Map{"templates": templates})
}

func (h *GeneratorHandler) CreateTemplate(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	tpl, err := h.service.CreateTemplate(c.UserContext(), req.Name, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrTemplateInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "template gagal disimpan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"template": tpl})
}

func (h *GeneratorHandler) UpdateTemplate(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	err := h.service.UpdateTemplate(c.UserContext(), c.Params("id"), req.Name, req.Content)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrTemplateInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrTemplateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "template gagal diperbarui"})
	}
}

// DeleteTemplate menolak penghapusan template terakhir dengan 409.
func (h *GeneratorHandler) DeleteTemplate(c *fiber.Ctx) error {
	err := h.service.DeleteTemplate(c.UserContext(), c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrLastTemplate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrTemplateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "template gagal dihapus"})
	}
}
