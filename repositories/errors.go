package repositories

// RepositoryError kesalahan umum lapisan repository.
type RepositoryError string

func (e RepositoryError) Error() string { return string(e) }

// ErrNotFound baris tidak ditemukan; dipetakan dari gorm.ErrRecordNotFound
// supaya service tidak bergantung langsung pada gorm.
const ErrNotFound RepositoryError = "data tidak ditemukan"
