package models

import "time"

// QueueStatus status satu tamu pada antrian kirim massal.
type QueueStatus string

const (
	QueueStatusQueued QueueStatus = "queued"
	QueueStatusSent   QueueStatus = "sent"
)

// QueueFilterAll nilai filter status "tanpa filter".
const QueueFilterAll = "all"

// GuestQueueItem satu tamu pada antrian generator pesan massal.
// Disimpan lokal saja, tidak pernah disinkronkan ke remote store.
type GuestQueueItem struct {
	BaseModel
	Name      string      `gorm:"type:varchar(150);not null" json:"name"`
	Phone     string      `gorm:"type:varchar(30);not null" json:"phone"`
	Status    QueueStatus `gorm:"type:varchar(10);not null;default:'queued';index" json:"status"`
	Timestamp time.Time   `gorm:"not null" json:"timestamp"` // diperbarui saat dikirim ulang
}
