package guestlink

import (
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStripsExistingQuery(t *testing.T) {
	link, err := Build("https://undangan.link/undangan/hani-pupud?admin=true", "Budi")
	require.NoError(t, err)
	assert.Equal(t, "https://undangan.link/undangan/hani-pupud?to=Budi", link)
}

func TestBuildRoundTrip(t *testing.T) {
	for _, name := range []string{"Budi", "Siti Nurhaliza", "Dr. H. Asep, M.Pd.", "Dewi & Keluarga"} {
		link, err := Build("https://undangan.link/undangan/hani-pupud", name)
		require.NoError(t, err)
		assert.Equal(t, name, ParseGuestName(link), "round-trip untuk %q", name)
	}
}

func TestBuildFromOrigin(t *testing.T) {
	link, err := BuildFromOrigin("https://undangan.link/", "/undangan/hani-pupud", "Rina")
	require.NoError(t, err)
	assert.Equal(t, "https://undangan.link/undangan/hani-pupud?to=Rina", link)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Budi", Greeting("budi"))
	assert.Equal(t, "Siti Nurhaliza", Greeting("siti nurhaliza"))
	assert.Equal(t, models.DefaultGuestName, Greeting(""))
	assert.Equal(t, models.DefaultGuestName, Greeting("   "))
}

func TestIsPersonalized(t *testing.T) {
	assert.True(t, IsPersonalized("Budi"))
	assert.False(t, IsPersonalized(""))
	assert.False(t, IsPersonalized(models.DefaultGuestName))
}
