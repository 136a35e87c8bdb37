package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateMessageTemplatesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel message_templates...")
	if err := db.AutoMigrate(&models.MessageTemplate{}); err != nil {
		configslog.Log.Error("Migrasi tabel message_templates gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel message_templates berhasil dimigrasi")
	return nil
}
