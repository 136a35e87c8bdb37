package services

import (
	"context"
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBroadcastFixture() (*BroadcastService, *memQueueRepo, *memTplRepo) {
	queueRepo := &memQueueRepo{}
	tplRepo := &memTplRepo{}
	svc := NewBroadcastService(testConfig(), queueRepo, tplRepo)
	return svc, queueRepo, tplRepo
}

func TestAddToQueueValidatesAndPrepends(t *testing.T) {
	svc, _, _ := newBroadcastFixture()
	ctx := context.Background()

	_, err := svc.AddToQueue(ctx, "   ", "0812")
	assert.ErrorIs(t, err, ErrQueueInvalidInput)
	_, err = svc.AddToQueue(ctx, "Budi", "")
	assert.ErrorIs(t, err, ErrQueueInvalidInput)

	first, err := svc.AddToQueue(ctx, "Budi", "081234567890")
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusQueued, first.Status)

	second, err := svc.AddToQueue(ctx, "Citra", "081234500000")
	require.NoError(t, err)

	result, err := svc.ListQueue(ctx, queryparams.ListParams{})
	require.NoError(t, err)
	items := result.Data.([]models.GuestQueueItem)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "entri baru tampil paling atas")
	assert.Equal(t, first.ID, items[1].ID)
}

func TestDispatchBuildsDeepLinkAndMarksSent(t *testing.T) {
	svc, _, tplRepo := newBroadcastFixture()
	ctx := context.Background()

	require.NoError(t, tplRepo.Create(ctx, &models.MessageTemplate{
		BaseModel: models.BaseModel{ID: "tpl-1"},
		Name:      "Formal",
		Content:   "Kepada Yth. [Nama Tamu], silakan buka [Link Undangan]",
	}))

	before := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return before }
	item, err := svc.AddToQueue(ctx, "Budi Santoso", "081234567890")
	require.NoError(t, err)

	after := before.Add(time.Hour)
	svc.now = func() time.Time { return after }
	res, err := svc.Dispatch(ctx, item.ID, "tpl-1")

	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusSent, res.Item.Status)
	assert.Equal(t, after, res.Item.Timestamp, "timestamp disegarkan saat dispatch")
	assert.Contains(t, res.DeepLink, "https://wa.me/6281234567890?text=")
	assert.Contains(t, res.DeepLink, "Budi+Santoso")
	assert.Contains(t, res.DeepLink, "to%3DBudi%2BSantoso")
}

func TestDispatchIdempotentOnSentItem(t *testing.T) {
	svc, _, tplRepo := newBroadcastFixture()
	ctx := context.Background()

	require.NoError(t, tplRepo.Create(ctx, &models.MessageTemplate{
		BaseModel: models.BaseModel{ID: "tpl-1"},
		Name:      "Santai",
		Content:   "Halo [Nama Tamu]! [Link Undangan]",
	}))
	item, err := svc.AddToQueue(ctx, "Citra", "6281111111111")
	require.NoError(t, err)

	_, err = svc.Dispatch(ctx, item.ID, "")
	require.NoError(t, err)

	// Dispatch ulang tidak ditolak, hanya menyegarkan timestamp.
	res, err := svc.Dispatch(ctx, item.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusSent, res.Item.Status)
}

func TestDispatchUnknownItemOrTemplate(t *testing.T) {
	svc, _, tplRepo := newBroadcastFixture()
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, "tidak-ada", "")
	assert.ErrorIs(t, err, ErrQueueItemNotFound)

	item, err := svc.AddToQueue(ctx, "Budi", "0812")
	require.NoError(t, err)

	// Belum ada template sama sekali.
	_, err = svc.Dispatch(ctx, item.ID, "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	require.NoError(t, tplRepo.Create(ctx, &models.MessageTemplate{
		BaseModel: models.BaseModel{ID: "tpl-1"}, Name: "A", Content: "x",
	}))
	_, err = svc.Dispatch(ctx, item.ID, "tpl-salah")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestListQueueFilterSemantics(t *testing.T) {
	svc, _, _ := newBroadcastFixture()
	ctx := context.Background()

	budi, err := svc.AddToQueue(ctx, "Budi Santoso", "081234567890")
	require.NoError(t, err)
	citra, err := svc.AddToQueue(ctx, "Citra Lestari", "085600001111")
	require.NoError(t, err)

	// Cari nama tanpa peduli kapital.
	result, err := svc.ListQueue(ctx, queryparams.ListParams{Query: "budi"})
	require.NoError(t, err)
	items := result.Data.([]models.GuestQueueItem)
	require.Len(t, items, 1)
	assert.Equal(t, budi.ID, items[0].ID)

	// Cari potongan nomor telepon.
	result, err = svc.ListQueue(ctx, queryparams.ListParams{Query: "8560000"})
	require.NoError(t, err)
	items = result.Data.([]models.GuestQueueItem)
	require.Len(t, items, 1)
	assert.Equal(t, citra.ID, items[0].ID)

	// Filter status digabung AND dengan pencarian.
	result, err = svc.ListQueue(ctx, queryparams.ListParams{Query: "budi", Status: string(models.QueueStatusSent)})
	require.NoError(t, err)
	assert.Empty(t, result.Data.([]models.GuestQueueItem))

	// "all" berarti tanpa filter status.
	result, err = svc.ListQueue(ctx, queryparams.ListParams{Status: models.QueueFilterAll})
	require.NoError(t, err)
	assert.Len(t, result.Data.([]models.GuestQueueItem), 2)
}

func TestRemoveFromQueue(t *testing.T) {
	svc, _, _ := newBroadcastFixture()
	ctx := context.Background()

	item, err := svc.AddToQueue(ctx, "Budi", "0812")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromQueue(ctx, item.ID))
	assert.ErrorIs(t, svc.RemoveFromQueue(ctx, item.ID), ErrQueueItemNotFound)
}

func TestTemplateCRUDAndLastTemplateGuard(t *testing.T) {
	svc, _, _ := newBroadcastFixture()
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, "", "isi")
	assert.ErrorIs(t, err, ErrTemplateInvalidInput)

	tpl, err := svc.CreateTemplate(ctx, "Formal", "Kepada [Nama Tamu]")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTemplate(ctx, tpl.ID, "Formal Baru", "Yth. [Nama Tamu]"))
	assert.ErrorIs(t, svc.UpdateTemplate(ctx, "tidak-ada", "X", "Y"), ErrTemplateNotFound)

	// Template terakhir tidak boleh dihapus.
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, tpl.ID), ErrLastTemplate)

	tpl2, err := svc.CreateTemplate(ctx, "Santai", "Halo [Nama Tamu]")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTemplate(ctx, tpl2.ID))

	tpls, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "Formal Baru", tpls[0].Name)
}

func TestPreviewUsesOldestTemplateWhenUnspecified(t *testing.T) {
	svc, _, _ := newBroadcastFixture()
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, "Pertama", "Halo [Nama Tamu], ini [Link Undangan]")
	require.NoError(t, err)
	_, err = svc.CreateTemplate(ctx, "Kedua", "Versi lain")
	require.NoError(t, err)

	body, err := svc.Preview(ctx, "", "Budi")
	require.NoError(t, err)
	assert.Contains(t, body, "Halo Budi")
	assert.Contains(t, body, "https://undangan.link/undangan/hani-pupud?to=Budi")
}
