// Package guestlink membangun tautan undangan personal (?to=<nama>) dan
// menghitung sapaan untuk tamu.
package guestlink

import (
	"net/url"
	"strings"

	"undangan.link/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Indonesian)

// Build membuat tautan personal dari URL halaman saat ini: query string
// dibuang, lalu parameter to=<nama ter-encode> ditambahkan.
func Build(pageURL, guestName string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	u.RawQuery = url.Values{"to": {guestName}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// BuildFromOrigin varian untuk generator massal: tautan dijangkarkan ke
// origin + path halaman undangan, bukan ke halaman yang sedang dibuka.
func BuildFromOrigin(origin, invitationPath, guestName string) (string, error) {
	base := strings.TrimRight(origin, "/") + invitationPath
	return Build(base, guestName)
}

// ParseGuestName membaca kembali parameter to dari sebuah tautan.
// Mengembalikan string kosong bila tidak ada.
func ParseGuestName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("to")
}

// Greeting menghitung sapaan tamu: nama kosong jatuh ke sapaan generik,
// selain itu nama dirapikan dengan title-case lokal Indonesia.
func Greeting(guestName string) string {
	name := strings.TrimSpace(guestName)
	if name == "" {
		return models.DefaultGuestName
	}
	return titleCaser.String(name)
}

// IsPersonalized melaporkan apakah tamu datang lewat tautan personal.
// Hanya tamu personal yang boleh mengisi buku tamu.
func IsPersonalized(guestName string) bool {
	name := strings.TrimSpace(guestName)
	return name != "" && name != models.DefaultGuestName
}
