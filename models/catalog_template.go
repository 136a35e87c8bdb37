package models

// InvitationTemplate item katalog: satu desain undangan yang bisa dibeli.
// Berbeda dengan MessageTemplate (template pesan WhatsApp).
type InvitationTemplate struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Price           int64  `json:"price" validate:"gte=0"` // rupiah, satuan terkecil
	Category        string `json:"category"`
	PreviewImageURL string `json:"previewImageUrl"`
	DemoURL         string `json:"demoUrl,omitempty"`
	IsPopular       bool   `json:"isPopular,omitempty"`
}
