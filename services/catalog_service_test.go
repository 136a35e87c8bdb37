package services

import (
	"context"
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/remotestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFallsBackToSampleCatalog(t *testing.T) {
	svc := NewCatalogService(testConfig(), newFakeStore(), newMemOrderRepo())

	catalog := svc.List(context.Background())

	require.Len(t, catalog, 6)
	assert.Equal(t, "tpl-001", catalog[0].ID)
}

func TestListPrefersStoredCatalog(t *testing.T) {
	store := newFakeStore()
	store.catalog = []models.InvitationTemplate{{ID: "tpl-x", Name: "Kustom"}}
	svc := NewCatalogService(testConfig(), store, newMemOrderRepo())

	catalog := svc.List(context.Background())

	require.Len(t, catalog, 1)
	assert.Equal(t, "Kustom", catalog[0].Name)
}

func TestSaveCatalogValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(testConfig(), store, newMemOrderRepo())
	ctx := context.Background()

	outcome, err := svc.Save(ctx, []models.InvitationTemplate{{ID: "", Name: "Tanpa ID"}})
	assert.ErrorIs(t, err, ErrCatalogItemInvalid)
	assert.Equal(t, remotestore.OutcomeFailed, outcome)
	assert.Empty(t, store.savedCatalogs)

	outcome, err = svc.Save(ctx, []models.InvitationTemplate{{ID: "tpl-1", Name: "Sah", Price: 150000}})
	require.NoError(t, err)
	assert.Equal(t, remotestore.OutcomePersisted, outcome)
	require.Len(t, store.savedCatalogs, 1)
}

func TestCreateOrderSimulatedPayment(t *testing.T) {
	orderRepo := newMemOrderRepo()
	svc := NewCatalogService(testConfig(), newFakeStore(), orderRepo)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "tpl-002", "Budi Santoso")

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "tpl-002", order.TemplateID)
	assert.NotZero(t, order.Amount)

	// CheckoutDelay 10ms pada testConfig; tunggu timer simulasi.
	require.Eventually(t, func() bool {
		got, err := svc.GetOrder(ctx, order.ID)
		return err == nil && got.Status == models.OrderStatusPaid
	}, time.Second, 5*time.Millisecond)

	paid, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewCatalogService(testConfig(), newFakeStore(), newMemOrderRepo())
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "tpl-001", "  ")
	assert.ErrorIs(t, err, ErrOrderInvalidInput)

	_, err = svc.CreateOrder(ctx, "tpl-tidak-ada", "Budi")
	assert.ErrorIs(t, err, ErrOrderTemplateGone)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewCatalogService(testConfig(), newFakeStore(), newMemOrderRepo())

	_, err := svc.GetOrder(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
