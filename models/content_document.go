package models

// ContentDocument agregat penuh data undangan yang bisa disunting.
// Bentuk JSON-nya mengikuti kontrak gateway spreadsheet (camelCase, datar).
type ContentDocument struct {
	GroomName       string            `json:"groomName" validate:"required"`
	BrideName       string            `json:"brideName" validate:"required"`
	GroomParents    string            `json:"groomParents"`
	BrideParents    string            `json:"brideParents"`
	GroomInstagram  string            `json:"groomInstagram"`
	BrideInstagram  string            `json:"brideInstagram"`
	CoupleShortName string            `json:"coupleShortName"`
	WeddingDate     string            `json:"weddingDate" validate:"required"`
	TurutMengundang []string          `json:"turutMengundang"`
	Assets          map[string]string `json:"assets"`
	Gallery         []GalleryItem     `json:"gallery"`
	Events          []Event           `json:"events"`
	BankAccounts    []BankAccount     `json:"bankAccounts" validate:"min=1"`
	Wishlist        []WishlistItem    `json:"wishlist"`
	AudioURL        string            `json:"audioUrl"`
}

// GalleryItem satu foto galeri. ID diturunkan dari waktu pembuatan,
// unik dan tidak pernah dipakai ulang.
type GalleryItem struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Event satu acara (akad, resepsi, dst). Date bisa berupa string ISO
// YYYY-MM-DD atau teks bebas; keduanya dibedakan saat render.
type Event struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Address      string `json:"address"`
	MapsURL      string `json:"mapsUrl"`
	MapsEmbedURL string `json:"mapsEmbedUrl"`
}

// BankAccount rekening untuk amplop digital. Daftar rekening minimal
// selalu berisi satu entri (dijaga di service).
type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// WishlistItem satu item daftar kado.
type WishlistItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Clone mengembalikan salinan dalam (deep copy) dokumen, dipakai untuk
// memisahkan draft dashboard dari salinan live.
func (d ContentDocument) Clone() ContentDocument {
	out := d

	if d.TurutMengundang != nil {
		out.TurutMengundang = append([]string(nil), d.TurutMengundang...)
	}
	if d.Assets != nil {
		out.Assets = make(map[string]string, len(d.Assets))
		for k, v := range d.Assets {
			out.Assets[k] = v
		}
	}
	if d.Gallery != nil {
		out.Gallery = append([]GalleryItem(nil), d.Gallery...)
	}
	if d.Events != nil {
		out.Events = append([]Event(nil), d.Events...)
	}
	if d.BankAccounts != nil {
		out.BankAccounts = append([]BankAccount(nil), d.BankAccounts...)
	}
	if d.Wishlist != nil {
		out.Wishlist = append([]WishlistItem(nil), d.Wishlist...)
	}
	return out
}
