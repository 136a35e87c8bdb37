package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/remotestore"
	"undangan.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogServiceError kesalahan khusus katalog/storefront.
type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

const (
	ErrCatalogItemInvalid CatalogServiceError = "id dan nama desain wajib diisi"
	ErrOrderInvalidInput  CatalogServiceError = "nama pembeli wajib diisi"
	ErrOrderTemplateGone  CatalogServiceError = "desain tidak ada di katalog"
	ErrOrderNotFound      CatalogServiceError = "pesanan tidak ditemukan"
)

// ICatalogService katalog desain undangan + checkout tersimulasi.
type ICatalogService interface {
	List(ctx context.Context) []models.InvitationTemplate
	Save(ctx context.Context, catalog []models.InvitationTemplate) (remotestore.SyncOutcome, error)
	CreateOrder(ctx context.Context, templateID, buyerName string) (*models.TemplateOrder, error)
	GetOrder(ctx context.Context, id string) (*models.TemplateOrder, error)
}

// CatalogService implementasi ICatalogService. Sumber kebenaran katalog
// adalah cache lokal, remote hanya mirror; checkout disimulasikan dengan
// timer yang memindahkan pesanan pending menjadi paid.
type CatalogService struct {
	cfg       *configs.Config
	store     remotestore.IClient
	orderRepo repositories.IOrderRepository
}

// NewCatalogService membuat service dengan dependensi eksplisit.
func NewCatalogService(cfg *configs.Config, store remotestore.IClient, orderRepo repositories.IOrderRepository) *CatalogService {
	return &CatalogService{cfg: cfg, store: store, orderRepo: orderRepo}
}

// List katalog untuk storefront; remote dan cache yang sama-sama kosong
// jatuh ke enam desain contoh bawaan.
func (s *CatalogService) List(ctx context.Context) []models.InvitationTemplate {
	catalog := s.store.FetchCatalog(ctx)
	if len(catalog) == 0 {
		return models.SampleCatalog()
	}
	return catalog
}

// Save memvalidasi lalu menyimpan katalog hasil suntingan admin.
func (s *CatalogService) Save(ctx context.Context, catalog []models.InvitationTemplate) (remotestore.SyncOutcome, error) {
	for _, item := range catalog {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
			return remotestore.OutcomeFailed, ErrCatalogItemInvalid
		}
	}
	return s.store.SaveCatalog(ctx, catalog)
}

// CreateOrder membuat pesanan pending untuk satu desain. Tidak ada
// pembayaran sungguhan: setelah CheckoutDelay pesanan otomatis paid.
func (s *CatalogService) CreateOrder(ctx context.Context, templateID, buyerName string) (*models.TemplateOrder, error) {
	buyerName = strings.TrimSpace(buyerName)
	if buyerName == "" {
		return nil, ErrOrderInvalidInput
	}

	var tpl *models.InvitationTemplate
	for _, item := range s.List(ctx) {
		if item.ID == templateID {
			t := item
			tpl = &t
			break
		}
	}
	if tpl == nil {
		return nil, ErrOrderTemplateGone
	}

	order := &models.TemplateOrder{
		BaseModel:    models.BaseModel{ID: uuid.NewString()},
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		BuyerName:    buyerName,
		Amount:       tpl.Price,
		Status:       models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Simulasi pembayaran: timer lepas dari context request supaya tetap
	// jalan walau pembeli menutup halaman.
	orderID := order.ID
	time.AfterFunc(s.cfg.CheckoutDelay, func() {
		if err := s.orderRepo.MarkPaid(context.Background(), orderID, time.Now()); err != nil {
			configslog.Log.Warn("Simulasi pembayaran gagal menandai paid",
				zap.String("orderID", orderID), zap.Error(err))
		}
	})

	return order, nil
}

func (s *CatalogService) GetOrder(ctx context.Context, id string) (*models.TemplateOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

var _ ICatalogService = (*CatalogService)(nil)
