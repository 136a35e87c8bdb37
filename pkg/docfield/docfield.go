// Package docfield memetakan path bertitik (mis. "assets.heroImage",
// "bankAccounts") ke accessor bertipe atas ContentDocument. Registry
// eksplisit menggantikan penelusuran path dinamis: path yang tidak
// terdaftar ditolak, node perantara tidak pernah dibuat diam-diam.
package docfield

import (
	"encoding/json"
	"fmt"
	"strings"

	"undangan.link/models"
)

// Error tipe kesalahan mutasi field.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownPath Error = "path field tidak dikenal"
	ErrNoContainer Error = "kontainer perantara tidak ada"
	ErrBadValue    Error = "nilai tidak cocok dengan tipe field"
)

// assetsPrefix segmen kedua path assets bersifat dinamis (nama slot),
// selebihnya registry berisi path literal.
const assetsPrefix = "assets."

// target mengembalikan pointer bertipe ke lokasi field di dalam dokumen.
// Satu entri per lokasi yang boleh disunting dashboard.
var registry = map[string]func(d *models.ContentDocument) any{
	"groomName":       func(d *models.ContentDocument) any { return &d.GroomName },
	"brideName":       func(d *models.ContentDocument) any { return &d.BrideName },
	"groomParents":    func(d *models.ContentDocument) any { return &d.GroomParents },
	"brideParents":    func(d *models.ContentDocument) any { return &d.BrideParents },
	"groomInstagram":  func(d *models.ContentDocument) any { return &d.GroomInstagram },
	"brideInstagram":  func(d *models.ContentDocument) any { return &d.BrideInstagram },
	"coupleShortName": func(d *models.ContentDocument) any { return &d.CoupleShortName },
	"weddingDate":     func(d *models.ContentDocument) any { return &d.WeddingDate },
	"turutMengundang": func(d *models.ContentDocument) any { return &d.TurutMengundang },
	"gallery":         func(d *models.ContentDocument) any { return &d.Gallery },
	"events":          func(d *models.ContentDocument) any { return &d.Events },
	"bankAccounts":    func(d *models.ContentDocument) any { return &d.BankAccounts },
	"wishlist":        func(d *models.ContentDocument) any { return &d.Wishlist },
	"audioUrl":        func(d *models.ContentDocument) any { return &d.AudioURL },
}

// Paths daftar path literal yang terdaftar, untuk introspeksi/UI.
func Paths() []string {
	out := make([]string, 0, len(registry))
	for p := range registry {
		out = append(out, p)
	}
	return out
}

// Set menetapkan value pada path di dalam draft. Value boleh datang dari
// JSON yang belum bertipe (body request); konversinya lewat marshal/
// unmarshal ke pointer bertipe milik registry sehingga tipe akhir tetap
// dijaga compile-time.
func Set(d *models.ContentDocument, path string, value any) error {
	if d == nil {
		return ErrNoContainer
	}

	if strings.HasPrefix(path, assetsPrefix) {
		slot := strings.TrimPrefix(path, assetsPrefix)
		if slot == "" || strings.Contains(slot, ".") {
			return ErrUnknownPath
		}
		if d.Assets == nil {
			// Tanpa auto-vivification: rantai kontainer harus sudah ada.
			return ErrNoContainer
		}
		url, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: assets.%s butuh string", ErrBadValue, slot)
		}
		d.Assets[slot] = url
		return nil
	}

	targetFn, ok := registry[path]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	if err := json.Unmarshal(raw, targetFn(d)); err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return nil
}

// Get membaca nilai pada path, pasangan dari Set untuk verifikasi.
func Get(d *models.ContentDocument, path string) (any, error) {
	if d == nil {
		return nil, ErrNoContainer
	}

	if strings.HasPrefix(path, assetsPrefix) {
		slot := strings.TrimPrefix(path, assetsPrefix)
		if d.Assets == nil {
			return nil, ErrNoContainer
		}
		url, ok := d.Assets[slot]
		if !ok {
			return nil, fmt.Errorf("%w: assets.%s", ErrUnknownPath, slot)
		}
		return url, nil
	}

	targetFn, ok := registry[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}

	switch v := targetFn(d).(type) {
	case *string:
		return *v, nil
	case *[]string:
		return *v, nil
	case *[]models.GalleryItem:
		return *v, nil
	case *[]models.Event:
		return *v, nil
	case *[]models.BankAccount:
		return *v, nil
	case *[]models.WishlistItem:
		return *v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
}
