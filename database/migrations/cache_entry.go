package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCacheEntriesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel cache_entries...")
	if err := db.AutoMigrate(&models.CacheEntry{}); err != nil {
		configslog.Log.Error("Migrasi tabel cache_entries gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel cache_entries berhasil dimigrasi")
	return nil
}
