package services

import (
	"context"
	"fmt"
	"sync"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/docfield"
	"undangan.link/pkg/driveurl"
	"undangan.link/pkg/guestlink"
	"undangan.link/pkg/idgen"
	"undangan.link/remotestore"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DocumentServiceError kesalahan khusus service dokumen.
type DocumentServiceError string

func (e DocumentServiceError) Error() string { return string(e) }

const (
	ErrLastBankAccount DocumentServiceError = "minimal satu rekening harus tersisa"
	ErrIndexOutOfRange DocumentServiceError = "indeks di luar jangkauan"
	ErrDocValidation   DocumentServiceError = "dokumen tidak valid"
)

// IDocumentService editor dokumen konten untuk dashboard: memegang salinan
// live dan draft yang terpisah; draft hanya dipromosikan saat save eksplisit.
type IDocumentService interface {
	Live(ctx context.Context) models.ContentDocument
	Reload(ctx context.Context) models.ContentDocument
	Draft(ctx context.Context) models.ContentDocument
	SetField(ctx context.Context, path string, value any) error
	AddBankAccount(ctx context.Context) models.ContentDocument
	UpdateBankAccount(ctx context.Context, index int, acc models.BankAccount) error
	RemoveBankAccount(ctx context.Context, index int) error
	AddGalleryItem(ctx context.Context, url, alt string) models.GalleryItem
	RemoveGalleryItem(ctx context.Context, index int) error
	AddTurutMengundang(ctx context.Context, name string) models.ContentDocument
	UpdateTurutMengundang(ctx context.Context, index int, name string) error
	RemoveTurutMengundang(ctx context.Context, index int) error
	Save(ctx context.Context) (remotestore.SyncOutcome, error)
	Reset()
	GenerateGuestLink(pageURL, guestName string) (string, error)
}

// DocumentService implementasi IDocumentService. Satu admin, satu proses:
// draft dipegang di memori dan dilindungi mutex.
type DocumentService struct {
	store    remotestore.IClient
	validate *validator.Validate
	ids      *idgen.Generator

	mu     sync.RWMutex
	live   models.ContentDocument
	loaded bool
	draft  *models.ContentDocument
}

// NewDocumentService membuat service dengan klien store eksplisit.
func NewDocumentService(store remotestore.IClient) IDocumentService {
	return &DocumentService{
		store:    store,
		validate: validator.New(),
		ids:      idgen.New(),
	}
}

// Live salinan yang dilihat tamu; dimuat sekali dari store (dengan segala
// fallback-nya) lalu dipegang di memori.
func (s *DocumentService) Live(ctx context.Context) models.ContentDocument {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.live.Clone()
	}
	s.mu.RUnlock()
	return s.Reload(ctx)
}

// Reload memuat ulang salinan live dari store.
func (s *DocumentService) Reload(ctx context.Context) models.ContentDocument {
	doc := s.store.FetchDocument(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = doc
	s.loaded = true
	return s.live.Clone()
}

// Draft salinan kerja dashboard; dibuat dari live saat pertama diminta.
func (s *DocumentService) Draft(ctx context.Context) models.ContentDocument {
	s.ensureDraft(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

func (s *DocumentService) ensureDraft(ctx context.Context) {
	s.mu.RLock()
	started := s.draft != nil
	s.mu.RUnlock()
	if started {
		return
	}

	live := s.Live(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		d := live.Clone()
		s.draft = &d
	}
}

// SetField mutasi generik berbasis path lewat registry bertipe docfield.
func (s *DocumentService) SetField(ctx context.Context, path string, value any) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return docfield.Set(s.draft, path, value)
}

// --- Operasi daftar rekening ---

// AddBankAccount menambah entri kosong di akhir daftar.
func (s *DocumentService) AddBankAccount(ctx context.Context) models.ContentDocument {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.BankAccounts = append(s.draft.BankAccounts, models.BankAccount{})
	return s.draft.Clone()
}

// UpdateBankAccount mengganti entri pada indeks, entri lain tidak bergeser.
func (s *DocumentService) UpdateBankAccount(ctx context.Context, index int, acc models.BankAccount) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.BankAccounts) {
		return ErrIndexOutOfRange
	}
	s.draft.BankAccounts[index] = acc
	return nil
}

// RemoveBankAccount menolak penghapusan entri terakhir: daftar tidak
// berubah dan pemanggil menerima penolakan validasi untuk ditampilkan.
func (s *DocumentService) RemoveBankAccount(ctx context.Context, index int) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.BankAccounts) {
		return ErrIndexOutOfRange
	}
	if len(s.draft.BankAccounts) == 1 {
		return ErrLastBankAccount
	}
	s.draft.BankAccounts = append(s.draft.BankAccounts[:index], s.draft.BankAccounts[index+1:]...)
	return nil
}

// --- Operasi galeri ---

// AddGalleryItem menambah foto dengan ID turunan waktu yang unik dan tidak
// pernah dipakai ulang. Tautan share Google Drive diubah ke URL langsung.
func (s *DocumentService) AddGalleryItem(ctx context.Context, url, alt string) models.GalleryItem {
	s.ensureDraft(ctx)

	item := models.GalleryItem{
		ID:  s.ids.Next(),
		URL: driveurl.Transform(url),
		Alt: alt,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Gallery = append(s.draft.Gallery, item)
	return item
}

func (s *DocumentService) RemoveGalleryItem(ctx context.Context, index int) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Gallery) {
		return ErrIndexOutOfRange
	}
	s.draft.Gallery = append(s.draft.Gallery[:index], s.draft.Gallery[index+1:]...)
	return nil
}

// --- Operasi turut mengundang ---

func (s *DocumentService) AddTurutMengundang(ctx context.Context, name string) models.ContentDocument {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.TurutMengundang = append(s.draft.TurutMengundang, name)
	return s.draft.Clone()
}

func (s *DocumentService) UpdateTurutMengundang(ctx context.Context, index int, name string) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.TurutMengundang) {
		return ErrIndexOutOfRange
	}
	s.draft.TurutMengundang[index] = name
	return nil
}

func (s *DocumentService) RemoveTurutMengundang(ctx context.Context, index int) error {
	s.ensureDraft(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.TurutMengundang) {
		return ErrIndexOutOfRange
	}
	s.draft.TurutMengundang = append(s.draft.TurutMengundang[:index], s.draft.TurutMengundang[index+1:]...)
	return nil
}

// --- Save / Reset ---

// Save mengirim seluruh draft ke store. Bila commit lokal berhasil
// (outcome bukan Failed) draft dipromosikan menjadi salinan live; draft
// tetap dipertahankan di editor apa pun hasilnya supaya suntingan yang
// belum tersimpan tidak hilang.
func (s *DocumentService) Save(ctx context.Context) (remotestore.SyncOutcome, error) {
	s.ensureDraft(ctx)

	s.mu.RLock()
	draft := s.draft.Clone()
	s.mu.RUnlock()

	if err := s.validate.Struct(draft); err != nil {
		return remotestore.OutcomeFailed, fmt.Errorf("%w: %v", ErrDocValidation, err)
	}

	outcome, err := s.store.SaveDocument(ctx, draft)
	if err != nil {
		configslog.Log.Error("Save dokumen gagal", zap.Error(err))
		return outcome, err
	}

	s.mu.Lock()
	s.live = draft.Clone()
	s.loaded = true
	s.mu.Unlock()

	configslog.SLog.Infof("Dokumen tersimpan (outcome: %s)", outcome)
	return outcome, nil
}

// Reset mengganti draft dengan dokumen bawaan; baru berdampak ke live dan
// remote pada save eksplisit berikutnya.
func (s *DocumentService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.DefaultDocument()
	s.draft = &d
}

// GenerateGuestLink membangun tautan personal dari URL halaman saat ini.
// Fungsi murni: tanpa panggilan jaringan.
func (s *DocumentService) GenerateGuestLink(pageURL, guestName string) (string, error) {
	return guestlink.Build(pageURL, guestName)
}

var _ IDocumentService = (*DocumentService)(nil)
