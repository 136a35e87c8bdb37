// Package queryparams parameter daftar standar (pencarian, filter status,
// pagination) untuk endpoint yang mengembalikan koleksi.
package queryparams

// Batas pagination.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams parameter daftar yang dibaca dari query string.
type ListParams struct {
	Query   string `query:"q"`
	Status  string `query:"status"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// Validate menjepit nilai pagination ke rentang yang diizinkan.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// Offset offset baris untuk query database.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta metadata halaman pada respons daftar.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult pembungkus data + metadata halaman.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages membulatkan ke atas jumlah halaman.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := totalItems / int64(perPage)
	if totalItems%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
