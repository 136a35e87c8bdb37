package models

// Token yang disubstitusi oleh mesin template pesan.
const (
	TokenGuestName      = "[Nama Tamu]"
	TokenInvitationLink = "[Link Undangan]"
)

// MessageTemplate cetak biru teks untuk pesan undangan massal.
// Minimal satu template harus selalu ada; penghapusan template terakhir
// ditolak di service.
type MessageTemplate struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Content string `gorm:"type:text;not null" json:"content"`
}
