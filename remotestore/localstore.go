package remotestore

import "context"

// LocalStoreError kesalahan cache lokal.
type LocalStoreError string

func (e LocalStoreError) Error() string { return string(e) }

// ErrCacheMiss kunci tidak ada di cache lokal.
const ErrCacheMiss LocalStoreError = "kunci tidak ada di cache lokal"

// LocalStore penyimpanan lokal-persisten padanan localStorage di sumber
// aslinya: key-value JSON, ditulis atomik per save, penulis terakhir
// menang. Implementasi produksinya repositories.CacheRepository.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}
