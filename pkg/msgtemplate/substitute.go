// Package msgtemplate mensubstitusi token literal pada template pesan
// undangan massal.
package msgtemplate

import (
	"strings"

	"undangan.link/models"
)

// Substitute mengganti setiap kemunculan [Nama Tamu] dengan nama tamu
// (atau sapaan generik bila kosong) dan setiap [Link Undangan] dengan
// tautan personal yang sudah dibangun pemanggil. Penggantian bersifat
// global: token yang muncul dua kali diganti dua kali. Template tanpa
// token dikembalikan apa adanya.
func Substitute(template, guestName, invitationLink string) string {
	name := strings.TrimSpace(guestName)
	if name == "" {
		name = models.DefaultGuestName
	}

	out := strings.ReplaceAll(template, models.TokenGuestName, name)
	out = strings.ReplaceAll(out, models.TokenInvitationLink, invitationLink)
	return out
}
