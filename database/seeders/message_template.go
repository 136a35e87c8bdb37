package seeders

import (
	"encoding/json"
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDefaultMessageTemplate memastikan selalu ada minimal satu template
// pesan. Service menolak penghapusan template terakhir, jadi seeder ini
// hanya perlu jalan pada database kosong.
func SeedDefaultMessageTemplate(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MessageTemplate{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Gagal menghitung template pesan", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Template pesan sudah ada, seeding dilewati.")
		return nil
	}

	tpl := models.MessageTemplate{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      "Template Bawaan",
		Content:   models.DefaultMessageTemplateContent,
	}
	if err := db.Create(&tpl).Error; err != nil {
		configslog.Log.Error("Gagal membuat template pesan bawaan", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Template pesan bawaan dibuat (ID: %s)", tpl.ID)
	return nil
}

// SeedSampleCatalog mengisi cache katalog dengan enam desain contoh bila
// belum pernah ada katalog tersimpan.
func SeedSampleCatalog(db *gorm.DB) error {
	var existing models.CacheEntry
	err := db.Where("key = ?", models.CacheKeyCatalog).First(&existing).Error
	if err == nil {
		configslog.SLog.Debug("Cache katalog sudah ada, seeding dilewati.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Gagal memeriksa cache katalog", zap.Error(err))
		return err
	}

	payload, err := json.Marshal(models.SampleCatalog())
	if err != nil {
		return err
	}
	entry := models.CacheEntry{Key: models.CacheKeyCatalog, Payload: datatypes.JSON(payload)}
	if err := db.Create(&entry).Error; err != nil {
		configslog.Log.Error("Gagal menulis cache katalog contoh", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cache katalog contoh dibuat")
	return nil
}
