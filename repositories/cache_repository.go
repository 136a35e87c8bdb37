package repositories

import (
	"context"
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/remotestore"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository penyimpanan key-value JSONB: padanan localStorage milik
// sumber aslinya. Memenuhi remotestore.LocalStore.
type CacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository membuat repository dengan koneksi eksplisit.
func NewCacheRepository(db *gorm.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

// Get membaca payload untuk key; remotestore.ErrCacheMiss bila tidak ada.
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.CacheEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, remotestore.ErrCacheMiss
		}
		configslog.Log.Error("CacheRepository.Get gagal", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return []byte(entry.Payload), nil
}

// Put menulis payload secara atomik (upsert satu baris); penulis terakhir
// menang, sama dengan semantik localStorage antar tab.
func (r *CacheRepository) Put(ctx context.Context, key string, payload []byte) error {
	entry := models.CacheEntry{Key: key, Payload: payload}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		configslog.Log.Error("CacheRepository.Put gagal", zap.String("key", key), zap.Error(err))
	}
	return err
}

var _ remotestore.LocalStore = (*CacheRepository)(nil)
