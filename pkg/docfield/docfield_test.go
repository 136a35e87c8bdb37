package docfield

import (
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStringField(t *testing.T) {
	doc := models.DefaultDocument()

	err := Set(&doc, "groomName", "Asep Sunandar")
	require.NoError(t, err)

	got, err := Get(&doc, "groomName")
	require.NoError(t, err)
	assert.Equal(t, "Asep Sunandar", got)
}

func TestSetDoesNotTouchSiblings(t *testing.T) {
	doc := models.DefaultDocument()
	before := doc.Clone()

	require.NoError(t, Set(&doc, "brideName", "Neng Siti"))

	assert.Equal(t, before.GroomName, doc.GroomName)
	assert.Equal(t, before.Events, doc.Events)
	assert.Equal(t, before.BankAccounts, doc.BankAccounts)
	assert.Equal(t, before.Assets, doc.Assets)
}

func TestSetAssetSlot(t *testing.T) {
	doc := models.DefaultDocument()

	require.NoError(t, Set(&doc, "assets.heroImage", "https://contoh.id/hero.jpg"))

	got, err := Get(&doc, "assets.heroImage")
	require.NoError(t, err)
	assert.Equal(t, "https://contoh.id/hero.jpg", got)
}

func TestSetAssetWithoutContainer(t *testing.T) {
	doc := models.ContentDocument{} // Assets nil

	err := Set(&doc, "assets.heroImage", "https://contoh.id/hero.jpg")
	assert.ErrorIs(t, err, ErrNoContainer)
}

func TestSetWholeArray(t *testing.T) {
	doc := models.DefaultDocument()
	accounts := []models.BankAccount{
		{BankName: "BRI", AccountNumber: "111", AccountHolder: "Pupud"},
		{BankName: "BNI", AccountNumber: "222", AccountHolder: "Hani"},
	}

	require.NoError(t, Set(&doc, "bankAccounts", accounts))
	assert.Equal(t, accounts, doc.BankAccounts)
}

func TestSetArrayFromUntypedJSON(t *testing.T) {
	// Nilai dari body JSON datang sebagai []any berisi map.
	doc := models.DefaultDocument()
	value := []any{
		map[string]any{"bankName": "Mandiri", "accountNumber": "333", "accountHolder": "Hani"},
	}

	require.NoError(t, Set(&doc, "bankAccounts", value))
	require.Len(t, doc.BankAccounts, 1)
	assert.Equal(t, "Mandiri", doc.BankAccounts[0].BankName)
}

func TestSetTurutMengundang(t *testing.T) {
	doc := models.DefaultDocument()
	names := []string{"Kel. Bpk. Asep", "Kel. Bpk. Dadang"}

	require.NoError(t, Set(&doc, "turutMengundang", names))
	assert.Equal(t, names, doc.TurutMengundang)
}

func TestSetUnknownPath(t *testing.T) {
	doc := models.DefaultDocument()

	err := Set(&doc, "tidakAda", "x")
	assert.ErrorIs(t, err, ErrUnknownPath)

	err = Set(&doc, "assets.hero.nested", "x")
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestSetTypeMismatch(t *testing.T) {
	doc := models.DefaultDocument()

	err := Set(&doc, "groomName", 123)
	assert.ErrorIs(t, err, ErrBadValue)

	err = Set(&doc, "assets.heroImage", 99)
	assert.ErrorIs(t, err, ErrBadValue)
}
