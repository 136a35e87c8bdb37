package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestQueueTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel guest_queue_items...")
	if err := db.AutoMigrate(&models.GuestQueueItem{}); err != nil {
		configslog.Log.Error("Migrasi tabel guest_queue_items gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel guest_queue_items berhasil dimigrasi")
	return nil
}
