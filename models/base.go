package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel kolom standar untuk tabel lokal (antrian, template pesan,
// pesanan). Entitas dari dokumen konten tidak memakai ini karena hidup
// di dalam payload JSON, bukan sebagai baris tersendiri.
type BaseModel struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
