// Package phone menormalkan nomor tujuan WhatsApp ke format internasional
// Indonesia dan membangun deep-link pengiriman pesan.
package phone

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "ID"

// Normalize mengubah masukan bebas ("0812-3456-7890", "+62 812...") menjadi
// digit E.164 tanpa tanda plus: "6281234567890". Parser libphonenumber
// dipakai lebih dulu; bila gagal, fallback manual: buang non-digit lalu
// tulis ulang awalan trunk 0 menjadi kode negara 62.
func Normalize(raw string) string {
	if parsed, err := phonenumbers.Parse(raw, defaultRegion); err == nil && phonenumbers.IsValidNumber(parsed) {
		return strings.TrimPrefix(phonenumbers.Format(parsed, phonenumbers.E164), "+")
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}

// WhatsAppLink membangun deep-link wa.me dengan isi pesan ter-encode.
// Nomor dinormalkan di sini supaya pemanggil tidak bisa lupa.
func WhatsAppLink(rawPhone, body string) string {
	return "https://wa.me/" + Normalize(rawPhone) + "?text=" + url.QueryEscape(body)
}
