package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/metrics"
	"undangan.link/models"
	"undangan.link/pkg/guestlink"
	"undangan.link/pkg/msgtemplate"
	"undangan.link/pkg/phone"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"

	"github.com/google/uuid"
)

// BroadcastServiceError kesalahan khusus generator pesan massal.
type BroadcastServiceError string

func (e BroadcastServiceError) Error() string { return string(e) }

const (
	ErrQueueInvalidInput    BroadcastServiceError = "nama dan nomor telepon wajib diisi"
	ErrQueueItemNotFound    BroadcastServiceError = "tamu tidak ditemukan di antrian"
	ErrTemplateInvalidInput BroadcastServiceError = "nama dan isi template wajib diisi"
	ErrTemplateNotFound     BroadcastServiceError = "template pesan tidak ditemukan"
	ErrLastTemplate         BroadcastServiceError = "minimal satu template pesan harus tersisa"
)

// DispatchResult hasil dispatch satu tamu: item yang sudah ditandai
// terkirim plus deep-link yang dibuka pemanggil di konteks baru.
type DispatchResult struct {
	Item     models.GuestQueueItem `json:"item"`
	DeepLink string                `json:"deepLink"`
}

// IBroadcastService mesin template + antrian kirim undangan massal.
type IBroadcastService interface {
	AddToQueue(ctx context.Context, name, phoneNumber string) (*models.GuestQueueItem, error)
	RemoveFromQueue(ctx context.Context, id string) error
	ListQueue(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	Dispatch(ctx context.Context, itemID, templateID string) (*DispatchResult, error)
	Preview(ctx context.Context, templateID, guestName string) (string, error)
	CreateTemplate(ctx context.Context, name, content string) (*models.MessageTemplate, error)
	UpdateTemplate(ctx context.Context, id, name, content string) error
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]models.MessageTemplate, error)
}

// BroadcastService implementasi IBroadcastService di atas penyimpanan
// lokal; antrian dan template tidak pernah disinkronkan ke remote store.
type BroadcastService struct {
	cfg       *configs.Config
	queueRepo repositories.IGuestQueueRepository
	tplRepo   repositories.IMessageTemplateRepository
	now       func() time.Time
}

// NewBroadcastService membuat service dengan dependensi eksplisit.
func NewBroadcastService(cfg *configs.Config, queueRepo repositories.IGuestQueueRepository, tplRepo repositories.IMessageTemplateRepository) *BroadcastService {
	return &BroadcastService{cfg: cfg, queueRepo: queueRepo, tplRepo: tplRepo, now: time.Now}
}

// --- Antrian ---

// AddToQueue memvalidasi lalu menambahkan tamu berstatus queued; daftar
// ditampilkan paling-baru-dulu sehingga entri baru muncul paling atas.
func (s *BroadcastService) AddToQueue(ctx context.Context, name, phoneNumber string) (*models.GuestQueueItem, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" || phoneNumber == "" {
		return nil, ErrQueueInvalidInput
	}

	item := &models.GuestQueueItem{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      name,
		Phone:     phoneNumber,
		Status:    models.QueueStatusQueued,
		Timestamp: s.now(),
	}
	if err := s.queueRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BroadcastService) RemoveFromQueue(ctx context.Context, id string) error {
	err := s.queueRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrQueueItemNotFound
	}
	return err
}

// ListQueue pencarian + filter status + pagination.
func (s *BroadcastService) ListQueue(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	items, total, err := s.queueRepo.FindFiltered(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: items,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// Dispatch membangun pesan personal untuk satu tamu lalu menandainya
// terkirim dengan timestamp baru. Idempoten secara state: dispatch ulang
// item yang sudah sent hanya menyegarkan timestamp, tidak ditolak.
func (s *BroadcastService) Dispatch(ctx context.Context, itemID, templateID string) (*DispatchResult, error) {
	item, err := s.queueRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQueueItemNotFound
		}
		return nil, err
	}

	body, err := s.renderMessage(ctx, templateID, item.Name)
	if err != nil {
		return nil, err
	}
	deepLink := phone.WhatsAppLink(item.Phone, body)

	item.Status = models.QueueStatusSent
	item.Timestamp = s.now()
	if err := s.queueRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	metrics.BroadcastDispatchTotal.Inc()
	configslog.SLog.Infof("Undangan didispatch ke %s (%s)", item.Name, item.Phone)
	return &DispatchResult{Item: *item, DeepLink: deepLink}, nil
}

// Preview merender isi pesan tanpa menyentuh antrian.
func (s *BroadcastService) Preview(ctx context.Context, templateID, guestName string) (string, error) {
	return s.renderMessage(ctx, templateID, guestName)
}

// renderMessage mensubstitusi token template dengan nama tamu dan tautan
// undangan yang dijangkarkan ke origin aplikasi.
func (s *BroadcastService) renderMessage(ctx context.Context, templateID, guestName string) (string, error) {
	tpl, err := s.resolveTemplate(ctx, templateID)
	if err != nil {
		return "", err
	}

	link, err := guestlink.BuildFromOrigin(s.cfg.BaseURL, s.cfg.InvitationPath, guestName)
	if err != nil {
		return "", err
	}
	return msgtemplate.Substitute(tpl.Content, guestName, link), nil
}

// resolveTemplate memilih template aktif; ID kosong berarti template
// pertama (tertua). Pergantian template aktif tidak mengubah draft tamu
// yang sedang diisi.
func (s *BroadcastService) resolveTemplate(ctx context.Context, templateID string) (*models.MessageTemplate, error) {
	if templateID != "" {
		tpl, err := s.tplRepo.FindByID(ctx, templateID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return tpl, err
	}

	tpls, err := s.tplRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tpls) == 0 {
		return nil, ErrTemplateNotFound
	}
	return &tpls[0], nil
}

// --- Template pesan ---

func (s *BroadcastService) CreateTemplate(ctx context.Context, name, content string) (*models.MessageTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(content) == "" {
		return nil, ErrTemplateInvalidInput
	}

	tpl := &models.MessageTemplate{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      name,
		Content:   content,
	}
	if err := s.tplRepo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *BroadcastService) UpdateTemplate(ctx context.Context, id, name, content string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(content) == "" {
		return ErrTemplateInvalidInput
	}

	tpl, err := s.tplRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	tpl.Name = name
	tpl.Content = content
	return s.tplRepo.Update(ctx, tpl)
}

// DeleteTemplate menolak penghapusan template terakhir.
func (s *BroadcastService) DeleteTemplate(ctx context.Context, id string) error {
	count, err := s.tplRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastTemplate
	}

	err = s.tplRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

func (s *BroadcastService) ListTemplates(ctx context.Context) ([]models.MessageTemplate, error) {
	return s.tplRepo.FindAll(ctx)
}

var _ IBroadcastService = (*BroadcastService)(nil)
