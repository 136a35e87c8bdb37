package models

import (
	"time"

	"gorm.io/datatypes"
)

// Kunci cache lokal yang dipakai aplikasi.
const (
	CacheKeyDocument = "invitation_settings"
	CacheKeyCatalog  = "template_catalog"
)

// CacheEntry baris key-value JSONB: salinan lokal-persisten dari dokumen
// konten dan katalog. Ditulis atomik per save, penulis terakhir menang.
type CacheEntry struct {
	Key       string         `gorm:"type:varchar(64);primaryKey" json:"key"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
