// Package countdown menghitung sisa waktu menuju hari pernikahan dan
// membantu merender tanggal acara berbahasa Indonesia.
package countdown

import (
	"fmt"
	"regexp"
	"time"
)

// Remaining sisa waktu yang dipecah untuk tampilan hitung mundur.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Passed  bool `json:"passed"`
}

// Until memecah selisih now→target. Setelah target lewat semua komponen
// nol dan Passed true; pemanggil menghentikan loop pembaruannya.
func Until(now, target time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{Passed: true}
	}
	total := int(diff.Seconds())
	return Remaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate memeriksa apakah string tanggal acara berbentuk YYYY-MM-DD.
// Tanggal acara juga boleh berupa teks bebas ("Sabtu, pekan depan") yang
// dirender apa adanya.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

var namaHari = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var namaBulan = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// FormatEventDate merender tanggal ISO menjadi "Sabtu, 14 Februari 2026";
// teks bebas dikembalikan tanpa diubah.
func FormatEventDate(s string) string {
	if !IsISODate(s) {
		return s
	}
	t, _ := time.Parse("2006-01-02", s)
	return fmt.Sprintf("%s, %d %s %d", namaHari[t.Weekday()], t.Day(), namaBulan[t.Month()], t.Year())
}
