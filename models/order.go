package models

import "time"

// OrderStatus status pesanan checkout tersimulasi.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// TemplateOrder pesanan pembelian desain undangan. Tidak ada pembayaran
// sungguhan: status pindah ke paid lewat timer simulasi.
type TemplateOrder struct {
	BaseModel
	TemplateID   string      `gorm:"type:varchar(64);not null;index" json:"templateId"`
	TemplateName string      `gorm:"type:varchar(150);not null" json:"templateName"`
	BuyerName    string      `gorm:"type:varchar(150);not null" json:"buyerName"`
	Amount       int64       `gorm:"not null" json:"amount"`
	Status       OrderStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	PaidAt       *time.Time  `json:"paidAt,omitempty"`
}
