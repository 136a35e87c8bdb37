package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler pengelolaan katalog desain + simulasi checkout.
type CatalogHandler struct {
	service services.ICatalogService
}

// NewCatalogHandler membuat handler dengan dependensi eksplisit.
func NewCatalogHandler(service services.ICatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ShowAdminCatalog halaman editor katalog (di balik gerbang PIN).
func (h *CatalogHandler) ShowAdminCatalog(c *fiber.Ctx) error {
	return c.Render("admin_catalog", fiber.Map{
		"Title":   "Kelola Katalog",
		"Catalog": h.service.List(c.UserContext()),
	}, "layouts/main")
}

// ListCatalog katalog dalam bentuk JSON.
func (h *CatalogHandler) ListCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"catalog": h.service.List(c.UserContext())})
}

// SaveCatalog mengganti seluruh katalog dengan hasil suntingan admin.
func (h *CatalogHandler) SaveCatalog(c *fiber.Ctx) error {
	var req struct {
		Catalog []models.InvitationTemplate `json:"catalog"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	outcome, err := h.service.Save(c.UserContext(), req.Catalog)
	if err != nil {
		if errors.Is(err, services.ErrCatalogItemInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Save katalog gagal", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"outcome": outcome,
		})
	}
	return c.JSON(fiber.Map{"outcome": outcome})
}

// CreateOrder memulai checkout tersimulasi untuk satu desain.
func (h *CatalogHandler) CreateOrder(c *fiber.Ctx) error {
	var req struct {
		TemplateID string `json:"templateId" form:"templateId"`
		BuyerName  string `json:"buyerName" form:"buyerName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permintaan tidak valid"})
	}

	order, err := h.service.CreateOrder(c.UserContext(), req.TemplateID, req.BuyerName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrOrderTemplateGone):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Gagal membuat pesanan", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pesanan gagal dibuat"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": order})
}

// GetOrder status pesanan; klien melakukan polling sampai paid.
func (h *CatalogHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pesanan gagal dimuat"})
	}
	return c.JSON(fiber.Map{"order": order})
}
