package models

import "fmt"

// MergeWithDefault melengkapi dokumen yang datang dari remote dengan nilai
// bawaan, field demi field, sehingga dokumen parsial tidak pernah
// menghasilkan struktur yang pincang. Aturannya total dan eksplisit:
// string kosong jatuh ke bawaan, slice nil jatuh ke bawaan, assets
// digabung dalam (slot bawaan dipertahankan kecuali ditimpa), dan item
// galeri tanpa alt diberi teks alt generik.
func MergeWithDefault(fetched ContentDocument) ContentDocument {
	def := DefaultDocument()
	out := fetched

	if out.GroomName == "" {
		out.GroomName = def.GroomName
	}
	if out.BrideName == "" {
		out.BrideName = def.BrideName
	}
	if out.GroomParents == "" {
		out.GroomParents = def.GroomParents
	}
	if out.BrideParents == "" {
		out.BrideParents = def.BrideParents
	}
	if out.GroomInstagram == "" {
		out.GroomInstagram = def.GroomInstagram
	}
	if out.BrideInstagram == "" {
		out.BrideInstagram = def.BrideInstagram
	}
	if out.CoupleShortName == "" {
		out.CoupleShortName = def.CoupleShortName
	}
	if out.WeddingDate == "" {
		out.WeddingDate = def.WeddingDate
	}
	if out.TurutMengundang == nil {
		out.TurutMengundang = def.TurutMengundang
	}

	// Assets: gabung dalam, bukan ganti utuh.
	merged := make(map[string]string, len(def.Assets)+len(out.Assets))
	for slot, url := range def.Assets {
		merged[slot] = url
	}
	for slot, url := range out.Assets {
		if url != "" {
			merged[slot] = url
		}
	}
	out.Assets = merged

	if out.Gallery == nil {
		out.Gallery = def.Gallery
	} else {
		for i := range out.Gallery {
			if out.Gallery[i].Alt == "" {
				out.Gallery[i].Alt = fmt.Sprintf("Foto galeri %d", i+1)
			}
		}
	}
	if out.Events == nil {
		out.Events = def.Events
	}
	if len(out.BankAccounts) == 0 {
		out.BankAccounts = def.BankAccounts
	}
	if out.Wishlist == nil {
		out.Wishlist = def.Wishlist
	}
	if out.AudioURL == "" {
		out.AudioURL = def.AudioURL
	}
	return out
}
