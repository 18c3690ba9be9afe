package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Slug ve anahtar üretiminde kullanılan alfabe. Karışmaya açık
// karakterler (0/O, 1/l) bilinçli olarak dışarıda bırakıldı.
const randomAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// GenerateSecureRandomString crypto/rand ile verilen uzunlukta
// URL-güvenli rastgele string üretir.
func GenerateSecureRandomString(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(randomAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(randomAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Slugify serbest metni URL-güvenli bir slug parçasına çevirir.
// Harf ve rakam dışındaki karakterler tire olur, ardışık tireler teke iner.
func Slugify(input string) string {
	var sb strings.Builder
	lastDash := true // baştaki tireleri engelle
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
