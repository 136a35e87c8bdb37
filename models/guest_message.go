package models

import (
	"sort"
	"strconv"
)

// Attendance status kehadiran pada buku tamu / RSVP.
type Attendance string

const (
	AttendanceHadir Attendance = "hadir"
	AttendanceTidak Attendance = "tidak"
	AttendanceRagu  Attendance = "ragu"
)

// Valid memeriksa apakah nilai termasuk enum yang dikenal.
func (a Attendance) Valid() bool {
	switch a {
	case AttendanceHadir, AttendanceTidak, AttendanceRagu:
		return true
	}
	return false
}

// GuestMessage satu entri buku tamu. Append-only; ID diturunkan dari waktu
// pembuatan (milidetik unix) dan dikirim sebagai string mengikuti bentuk
// sel spreadsheet.
type GuestMessage struct {
	ID         string     `json:"id"`
	Name       string     `json:"name" validate:"required"`
	Attendance Attendance `json:"attendance" validate:"required"`
	Message    string     `json:"message" validate:"required"`
	Timestamp  string     `json:"timestamp"`
}

// NumericID menafsirkan ID sebagai angka untuk pengurutan terbaru-dulu.
// ID non-numerik dianggap 0 sehingga jatuh ke urutan paling bawah.
func (m GuestMessage) NumericID() int64 {
	n, err := strconv.ParseInt(m.ID, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SortMessagesNewestFirst mengurutkan menurun berdasarkan ID numerik
// tanpa mengubah slice asal.
func SortMessagesNewestFirst(msgs []GuestMessage) []GuestMessage {
	out := append([]GuestMessage(nil), msgs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NumericID() > out[j].NumericID()
	})
	return out
}
