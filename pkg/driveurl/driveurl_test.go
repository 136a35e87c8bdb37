package driveurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformShareLink(t *testing.T) {
	got := Transform("https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing")
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=1AbC_dEf-123", got)
}

func TestTransformOpenLink(t *testing.T) {
	got := Transform("https://drive.google.com/open?id=XyZ789")
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=XyZ789", got)
}

func TestTransformPassesThroughOtherURLs(t *testing.T) {
	url := "https://images.unsplash.com/photo-123"
	assert.Equal(t, url, Transform(url))
	assert.Equal(t, "", Transform(""))
}
