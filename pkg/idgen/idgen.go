// Package idgen menghasilkan ID numerik turunan waktu untuk entitas di
// dalam dokumen (galeri, buku tamu): unik, monoton, tidak pernah dipakai
// ulang, tanpa koordinator eksternal.
package idgen

import (
	"sync"
	"time"
)

// Generator sumber ID milidetik-unix yang dinaikkan paksa bila dua
// pemanggilan jatuh di milidetik yang sama.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// New membuat Generator dengan jam sistem.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock menerima sumber waktu sendiri, untuk test.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next mengembalikan ID berikutnya.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
