package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHref(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"example.com", "https://example.com"},
		{"www.example.com/profil", "https://www.example.com/profil"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"mailto:info@example.com", "mailto:info@example.com"},
		{"tel:+905551112233", "tel:+905551112233"},
		{"  example.com  ", "https://example.com"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeHref(tc.input), tc.input)
	}
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/+905551112233", WhatsAppURL(" +905551112233 "))
}

func TestMapsSearchURL(t *testing.T) {
	assert.Equal(t, "https://maps.google.com/?q=Kad%C4%B1k%C3%B6y+%C4%B0stanbul", MapsSearchURL("Kadıköy İstanbul"))
}

func TestMapEmbedURL(t *testing.T) {
	t.Run("override varsa o kullanılır", func(t *testing.T) {
		assert.Equal(t, "https://example.com/custom", MapEmbedURL("İstanbul", "https://example.com/custom"))
	})

	t.Run("adresten embed URL türetilir", func(t *testing.T) {
		got := MapEmbedURL("İstanbul", "")
		assert.Contains(t, got, "https://maps.google.com/maps?q=")
		assert.Contains(t, got, "output=embed")
	})
}
