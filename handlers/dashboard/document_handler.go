package handlers

import (
	"errors"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/docfield"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DocumentHandler API JSON editor dokumen undangan (dashboard admin).
type DocumentHandler struct {
	cfg     *configs.Config
	service services.IDocumentService
}

// NewDocumentHandler membuat handler dengan dependensi eksplisit.
func NewDocumentHandler(cfg *configs.Config, service services.IDocumentService) *DocumentHandler {
	return &DocumentHandler{cfg: cfg, service: service}
}

// ShowDashboard halaman editor.
func (h *DocumentHandler) ShowDashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"Title": "Dashboard Undangan",
		"Doc":   h.service.Draft(c.UserContext()),
	}, "layouts/main")
}

// GetDraft mengembalikan draft yang sedang disunting.
func (h *DocumentHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"draft": h.service.Draft(c.UserContext())})
}

// GetLive mengembalikan dokumen live (yang tampil ke tamu).
func (h *DocumentHandler) GetLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"document": h.service.Live(c.UserContext())})
}

// Reload memaksa fetch ulang dari store lalu mengembalikan hasilnya.
func (h *DocumentHandler) Reload(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"document": h.service.Reload(c.UserContext())})
}

// SetField menyunting satu field draft lewat path terdaftar.
func (h *DocumentHandler) SetField(c *fiber.Ctx) error {
	var req struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	if err := h.service.SetField(c.UserContext(), req.Path, req.Value); err != nil {
		var fieldErr docfield.Error
		if errors.As(err, &fieldErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "path": req.Path})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"draft": h.service.Draft(c.UserContext())})
}

// --- Rekening ---

func (h *DocumentHandler) AddBankAccount(c *fiber.Ctx) error {
	draft := h.service.AddBankAccount(c.UserContext())
	return c.JSON(fiber.Map{"bankAccounts": draft.BankAccounts})
}

func (h *DocumentHandler) UpdateBankAccount(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "indeks tidak valid"})
	}
	var acc models.BankAccount
	if err := c.BodyParser(&acc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	if err := h.service.UpdateBankAccount(c.UserContext(), index, acc); err != nil {
		return h.listError(c, err)
	}
	return c.JSON(fiber.Map{"bankAccounts": h.service.Draft(c.UserContext()).BankAccounts})
}

func (h *DocumentHandler) RemoveBankAccount(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "indeks tidak valid"})
	}

	if err := h.service.RemoveBankAccount(c.UserContext(), index); err != nil {
		return h.listError(c, err)
	}
	return c.JSON(fiber.Map{"bankAccounts": h.service.Draft(c.UserContext()).BankAccounts})
}

// --- Galeri ---

func (h *DocumentHandler) AddGalleryItem(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url foto wajib diisi"})
	}

	item := h.service.AddGalleryItem(c.UserContext(), req.URL, req.Alt)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}

func (h *DocumentHandler) RemoveGalleryItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "indeks tidak valid"})
	}

	if err := h.service.RemoveGalleryItem(c.UserContext(), index); err != nil {
		return h.listError(c, err)
	}
	return c.JSON(fiber.Map{"gallery": h.service.Draft(c.UserContext()).Gallery})
}

// --- Turut mengundang ---

func (h *DocumentHandler) AddTurutMengundang(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	draft := h.service.AddTurutMengundang(c.UserContext(), req.Name)
	return c.JSON(fiber.Map{"turutMengundang": draft.TurutMengundang})
}

func (h *DocumentHandler) UpdateTurutMengundang(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "indeks tidak valid"})
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	if err := h.service.UpdateTurutMengundang(c.UserContext(), index, req.Name); err != nil {
		return h.listError(c, err)
	}
	return c.JSON(fiber.Map{"turutMengundang": h.service.Draft(c.UserContext()).TurutMengundang})
}

func (h *DocumentHandler) RemoveTurutMengundang(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "indeks tidak valid"})
	}

	if err := h.service.RemoveTurutMengundang(c.UserContext(), index); err != nil {
		return h.listError(c, err)
	}
	return c.JSON(fiber.Map{"turutMengundang": h.service.Draft(c.UserContext()).TurutMengundang})
}

// --- Save / reset / tautan tamu ---

// Save menyimpan seluruh draft; outcome sinkronisasi dilaporkan apa adanya
// supaya dashboard bisa membedakan tersimpan penuh vs lokal saja.
func (h *DocumentHandler) Save(c *fiber.Ctx) error {
	outcome, err := h.service.Save(c.UserContext())
	if err != nil {
		configslog.Log.Error("Save dokumen gagal", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"outcome": outcome,
		})
	}
	return c.JSON(fiber.Map{"outcome": outcome})
}

// Reset mengganti draft dengan dokumen bawaan tanpa menyimpan.
func (h *DocumentHandler) Reset(c *fiber.Ctx) error {
	h.service.Reset()
	return c.JSON(fiber.Map{"draft": h.service.Draft(c.UserContext())})
}

// GenerateGuestLink membuat tautan personal dari dashboard.
func (h *DocumentHandler) GenerateGuestLink(c *fiber.Ctx) error {
	var req struct {
		GuestName string `json:"guestName"`
	}
	if err := c.BodyParser(&req); err != nil || req.GuestName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nama tamu wajib diisi"})
	}

	link, err := h.service.GenerateGuestLink(h.cfg.BaseURL+h.cfg.InvitationPath, req.GuestName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"link": link})
}

func (h *DocumentHandler) listError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, services.ErrIndexOutOfRange) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
