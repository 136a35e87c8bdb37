package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateOrdersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel template_orders...")
	if err := db.AutoMigrate(&models.TemplateOrder{}); err != nil {
		configslog.Log.Error("Migrasi tabel template_orders gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel template_orders berhasil dimigrasi")
	return nil
}
