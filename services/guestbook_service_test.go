package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/remotestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequiresPersonalizedGuest(t *testing.T) {
	svc := NewGuestbookService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "", models.AttendanceHadir, "Selamat!")
	assert.ErrorIs(t, err, ErrGuestbookLocked)

	_, err = svc.Submit(ctx, models.DefaultGuestName, models.AttendanceHadir, "Selamat!")
	assert.ErrorIs(t, err, ErrGuestbookLocked)
}

func TestSubmitValidatesInput(t *testing.T) {
	svc := NewGuestbookService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "Budi", models.Attendance("mungkin"), "Selamat!")
	assert.ErrorIs(t, err, ErrGuestbookInvalid)

	_, err = svc.Submit(ctx, "Budi", models.AttendanceRagu, "   ")
	assert.ErrorIs(t, err, ErrGuestbookInvalid)
}

func TestSubmitOptimisticPrepend(t *testing.T) {
	store := newFakeStore()
	store.messages = []models.GuestMessage{
		{ID: "100", Name: "Lama", Attendance: models.AttendanceHadir, Message: "dulu"},
	}
	fixed := time.Date(2026, 2, 1, 19, 30, 0, 0, time.UTC)
	svc := NewGuestbookServiceWithClock(store, func() time.Time { return fixed })
	ctx := context.Background()

	svc.Refresh(ctx)
	msg, err := svc.Submit(ctx, "budi santoso", models.AttendanceHadir, "Selamat menempuh hidup baru")

	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", msg.Name, "nama dirapikan per lokal")
	assert.Equal(t, "01/02/2026, 19.30", msg.Timestamp)
	require.Len(t, store.submitted, 1)

	// Tampil paling atas tanpa fetch ulang.
	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, msg.ID, list[0].ID)
	assert.Equal(t, "100", list[1].ID)
}

func TestSubmitBeforeFirstFetchKeepsHistory(t *testing.T) {
	store := newFakeStore()
	store.messages = []models.GuestMessage{
		{ID: "100", Name: "Lama", Attendance: models.AttendanceHadir, Message: "dulu"},
	}
	svc := NewGuestbookService(store)
	ctx := context.Background()

	msg, err := svc.Submit(ctx, "Citra", models.AttendanceHadir, "Selamat ya")
	require.NoError(t, err)

	// Fetch pertama tetap memuat riwayat lengkap, bukan hanya kiriman baru.
	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, msg.ID, list[0].ID, "ID baru (unix-milli) lebih besar, urut paling atas")
	assert.Equal(t, "100", list[1].ID)
}

func TestSubmitFailureKeepsStateIdle(t *testing.T) {
	store := newFakeStore()
	store.submitOutcome = remotestore.OutcomeFailed
	store.submitErr = errors.New("jaringan putus")
	svc := NewGuestbookService(store)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "Budi", models.AttendanceHadir, "Selamat!")

	assert.ErrorIs(t, err, ErrGuestbookSendFailed)
	assert.Empty(t, svc.List(ctx), "pesan gagal tidak boleh masuk daftar")
	assert.Empty(t, store.submitted, "tidak ada retry atau antrian")
}

func TestRefreshSortsNewestFirst(t *testing.T) {
	store := newFakeStore()
	store.messages = []models.GuestMessage{
		{ID: "10", Name: "A"},
		{ID: "abc", Name: "NonNumerik"}, // dianggap 0
		{ID: "30", Name: "C"},
		{ID: "20", Name: "B"},
	}
	svc := NewGuestbookService(store)

	list := svc.Refresh(context.Background())

	require.Len(t, list, 4)
	assert.Equal(t, "30", list[0].ID)
	assert.Equal(t, "20", list[1].ID)
	assert.Equal(t, "10", list[2].ID)
	assert.Equal(t, "abc", list[3].ID)
}
