package remotestore

// SyncOutcome hasil eksplisit sebuah operasi tulis. Menggantikan pola
// "best effort yang ditelan diam-diam": pemanggil (dan test) dapat
// menegaskan jaminan persistensi yang benar-benar didapat.
type SyncOutcome int

const (
	// OutcomeFailed tulisan lokal pun gagal; data suntingan tidak aman.
	OutcomeFailed SyncOutcome = iota
	// OutcomePersistedLocallyOnly tersimpan di cache lokal, POST remote
	// gagal atau endpoint belum dikonfigurasi.
	OutcomePersistedLocallyOnly
	// OutcomePersisted tersimpan lokal dan POST remote terkirim.
	OutcomePersisted
)

func (o SyncOutcome) String() string {
	switch o {
	case OutcomePersisted:
		return "persisted"
	case OutcomePersistedLocallyOnly:
		return "local_only"
	default:
		return "failed"
	}
}

// MarshalJSON menyajikan outcome sebagai string pada respons API.
func (o SyncOutcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}
