package repositories

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestQueueRepository operasi database antrian kirim massal.
type IGuestQueueRepository interface {
	Create(ctx context.Context, item *models.GuestQueueItem) error
	FindByID(ctx context.Context, id string) (*models.GuestQueueItem, error)
	Update(ctx context.Context, item *models.GuestQueueItem) error
	Delete(ctx context.Context, id string) error
	FindFiltered(ctx context.Context, params queryparams.ListParams) ([]models.GuestQueueItem, int64, error)
}

// GuestQueueRepository implementasi IGuestQueueRepository di atas gorm.
type GuestQueueRepository struct {
	db *gorm.DB
}

func NewGuestQueueRepository(db *gorm.DB) IGuestQueueRepository {
	return &GuestQueueRepository{db: db}
}

func (r *GuestQueueRepository) Create(ctx context.Context, item *models.GuestQueueItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil {
		configslog.Log.Error("GuestQueueRepository.Create gagal", zap.Error(err))
	}
	return err
}

func (r *GuestQueueRepository) FindByID(ctx context.Context, id string) (*models.GuestQueueItem, error) {
	var item models.GuestQueueItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GuestQueueRepository) Update(ctx context.Context, item *models.GuestQueueItem) error {
	err := r.db.WithContext(ctx).Save(item).Error
	if err != nil {
		configslog.Log.Error("GuestQueueRepository.Update gagal", zap.String("id", item.ID), zap.Error(err))
	}
	return err
}

func (r *GuestQueueRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.GuestQueueItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// likeEscaper menetralkan metakarakter LIKE supaya kata kunci pengguna
// dicocokkan sebagai substring literal, bukan pola wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

// FindFiltered menerapkan pencarian (substring nama case-insensitive ATAU
// substring telepon literal) digabung AND dengan filter status, urut
// terbaru-dulu (paling akhir ditambahkan paling atas).
func (r *GuestQueueRepository) FindFiltered(ctx context.Context, params queryparams.ListParams) ([]models.GuestQueueItem, int64, error) {
	params.Validate()

	query := r.db.WithContext(ctx).Model(&models.GuestQueueItem{})
	if q := strings.TrimSpace(params.Query); q != "" {
		escaped := escapeLike(q)
		namePattern := "%" + strings.ToLower(escaped) + "%"
		phonePattern := "%" + escaped + "%"
		query = query.Where("LOWER(name) LIKE ? OR phone LIKE ?", namePattern, phonePattern)
	}
	if params.Status != "" && params.Status != models.QueueFilterAll {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.GuestQueueItem
	err := query.Order("created_at DESC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&items).Error
	if err != nil {
		configslog.Log.Error("GuestQueueRepository.FindFiltered gagal", zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}

var _ IGuestQueueRepository = (*GuestQueueRepository)(nil)
