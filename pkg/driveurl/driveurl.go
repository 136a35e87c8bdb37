// Package driveurl mengubah tautan share Google Drive menjadi URL gambar
// langsung. URL selain Drive dikembalikan tanpa perubahan.
package driveurl

import "regexp"

var (
	filePattern  = regexp.MustCompile(`drive\.google\.com/file/d/([A-Za-z0-9_-]+)`)
	queryPattern = regexp.MustCompile(`drive\.google\.com/(?:open|uc)\?(?:.*&)?id=([A-Za-z0-9_-]+)`)
)

// Transform mengekstrak ID berkas dari kedua bentuk tautan share
// (/file/d/<id>/view dan ?id=<id>) lalu membentuk URL uc?export=view.
func Transform(rawURL string) string {
	if m := filePattern.FindStringSubmatch(rawURL); m != nil {
		return directURL(m[1])
	}
	if m := queryPattern.FindStringSubmatch(rawURL); m != nil {
		return directURL(m[1])
	}
	return rawURL
}

func directURL(fileID string) string {
	return "https://drive.google.com/uc?export=view&id=" + fileID
}
