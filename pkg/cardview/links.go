package cardview

import (
	"net/url"
	"strings"
)

// NormalizeHref kullanıcıdan gelen URL benzeri değeri güvenli bir link
// hedefine çevirir: http, mailto: veya tel: ile başlamayan her değerin
// başına https:// eklenir (çıplak domain girdisine tolerans).
func NormalizeHref(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http") ||
		strings.HasPrefix(trimmed, "mailto:") ||
		strings.HasPrefix(trimmed, "tel:") {
		return trimmed
	}
	return "https://" + trimmed
}

// WhatsAppURL telefon numarasından wa.me linki üretir.
func WhatsAppURL(number string) string {
	return "https://wa.me/" + strings.TrimSpace(number)
}

// MapsSearchURL adres için Google Maps arama linki üretir.
func MapsSearchURL(address string) string {
	return "https://maps.google.com/?q=" + url.QueryEscape(address)
}

// MapEmbedURL harita bloğunun iframe kaynağını üretir. Kullanıcı bir
// override verdiyse o kullanılır, yoksa adresten embed URL'i türetilir.
func MapEmbedURL(address, customMapURL string) string {
	if strings.TrimSpace(customMapURL) != "" {
		return customMapURL
	}
	return "https://maps.google.com/maps?q=" + url.QueryEscape(address) + "&t=&z=15&ie=UTF8&iwloc=&output=embed"
}
