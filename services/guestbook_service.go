package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/guestlink"
	"undangan.link/pkg/idgen"
	"undangan.link/remotestore"

	"go.uber.org/zap"
)

// GuestbookServiceError kesalahan khusus buku tamu.
type GuestbookServiceError string

func (e GuestbookServiceError) Error() string { return string(e) }

const (
	ErrGuestbookLocked     GuestbookServiceError = "hanya tamu dengan link personal yang dapat mengisi buku tamu"
	ErrGuestbookInvalid    GuestbookServiceError = "nama, kehadiran, dan ucapan wajib diisi"
	ErrGuestbookSendFailed GuestbookServiceError = "gagal mengirim ucapan, periksa koneksi Anda"
)

// timestampLayout format waktu tampilan lokal Indonesia.
const timestampLayout = "02/01/2006, 15.04"

// IGuestbookService buku tamu / RSVP.
type IGuestbookService interface {
	List(ctx context.Context) []models.GuestMessage
	Refresh(ctx context.Context) []models.GuestMessage
	Submit(ctx context.Context, guestName string, attendance models.Attendance, message string) (models.GuestMessage, error)
}

// GuestbookService implementasi IGuestbookService: daftar pesan dipegang
// di memori, pengiriman diteruskan ke remote store, dan entri yang
// berhasil dikirim langsung ditambahkan ke daftar (update optimistik,
// tanpa fetch ulang).
type GuestbookService struct {
	store remotestore.IClient
	ids   *idgen.Generator
	now   func() time.Time

	mu       sync.RWMutex
	messages []models.GuestMessage
	fetched  bool
}

// NewGuestbookService membuat service dengan jam sistem.
func NewGuestbookService(store remotestore.IClient) *GuestbookService {
	return &GuestbookService{store: store, ids: idgen.New(), now: time.Now}
}

// NewGuestbookServiceWithClock varian untuk test.
func NewGuestbookServiceWithClock(store remotestore.IClient, now func() time.Time) *GuestbookService {
	return &GuestbookService{store: store, ids: idgen.NewWithClock(now), now: now}
}

// List daftar pesan terbaru-dulu; fetch pertama dilakukan malas.
func (s *GuestbookService) List(ctx context.Context) []models.GuestMessage {
	s.mu.RLock()
	if s.fetched {
		defer s.mu.RUnlock()
		return append([]models.GuestMessage(nil), s.messages...)
	}
	s.mu.RUnlock()
	return s.Refresh(ctx)
}

// Refresh mengambil ulang seluruh daftar dari remote dan menggantikan
// daftar lokal, diurutkan menurun berdasarkan ID numerik.
func (s *GuestbookService) Refresh(ctx context.Context) []models.GuestMessage {
	msgs := models.SortMessagesNewestFirst(s.store.FetchGuestMessages(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = msgs
	s.fetched = true
	return append([]models.GuestMessage(nil), s.messages...)
}

// Submit mengirim satu entri. Hanya tamu yang datang lewat link personal
// yang boleh mengirim; kegagalan kirim dilaporkan ke pemanggil dan pesan
// tidak di-retry maupun diantrikan.
func (s *GuestbookService) Submit(ctx context.Context, guestName string, attendance models.Attendance, message string) (models.GuestMessage, error) {
	if !guestlink.IsPersonalized(guestName) {
		return models.GuestMessage{}, ErrGuestbookLocked
	}
	if !attendance.Valid() || strings.TrimSpace(message) == "" {
		return models.GuestMessage{}, ErrGuestbookInvalid
	}

	msg := models.GuestMessage{
		ID:         strconv.FormatInt(s.ids.Next(), 10),
		Name:       guestlink.Greeting(guestName),
		Attendance: attendance,
		Message:    strings.TrimSpace(message),
		Timestamp:  s.now().Format(timestampLayout),
	}

	if _, err := s.store.SubmitGuestMessage(ctx, msg); err != nil {
		configslog.Log.Warn("Submit buku tamu gagal", zap.String("nama", msg.Name), zap.Error(err))
		return models.GuestMessage{}, ErrGuestbookSendFailed
	}

	// Update optimistik: langsung tampil paling atas tanpa fetch ulang.
	// fetched dibiarkan apa adanya: submit sebelum fetch pertama tidak
	// boleh menekan pemuatan riwayat yang sudah ada.
	s.mu.Lock()
	s.messages = append([]models.GuestMessage{msg}, s.messages...)
	s.mu.Unlock()

	return msg, nil
}

var _ IGuestbookService = (*GuestbookService)(nil)
