package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrunkPrefix(t *testing.T) {
	assert.Equal(t, "6281234567890", Normalize("081234567890"))
}

func TestNormalizeFormattedInput(t *testing.T) {
	assert.Equal(t, "6281234567890", Normalize("0812-3456-7890"))
	assert.Equal(t, "6281234567890", Normalize("+62 812 3456 7890"))
	assert.Equal(t, "6281234567890", Normalize("62812 3456 7890"))
}

func TestNormalizeGarbageKeepsDigitsOnly(t *testing.T) {
	assert.Equal(t, "62123", Normalize("0abc123"))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("081234567890", "Halo Budi, ini undangan kami")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="), link)
	assert.Contains(t, link, "Halo+Budi")
	assert.NotContains(t, link, " ")
}
