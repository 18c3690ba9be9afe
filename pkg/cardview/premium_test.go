package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digicard.pro/models"
)

func TestIsPremiumTemplate(t *testing.T) {
	free := map[string]bool{"minimal": true, "modern": true, "dark": true}

	for _, id := range AllTemplateIDs {
		assert.Equal(t, !free[id], IsPremiumTemplate(id), id)
	}
	assert.False(t, IsPremiumTemplate("nonexistent"))
}

func TestPremiumSetSize(t *testing.T) {
	assert.Len(t, PremiumTemplateIDs, 18)
}

func TestIsLocked(t *testing.T) {
	testCases := []struct {
		templateID string
		tier       string
		locked     bool
	}{
		{"minimal", models.SubscriptionFree, false},
		{"modern", models.SubscriptionFree, false},
		{"dark", models.SubscriptionFree, false},
		{"luxe", models.SubscriptionFree, true},
		{"venura", models.SubscriptionFree, true},
		{"luxe", models.SubscriptionProMonthly, false},
		{"luxe", models.SubscriptionProLifetime, false},
		{"minimal", models.SubscriptionProMonthly, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.locked, IsLocked(tc.templateID, tc.tier), "%s/%s", tc.templateID, tc.tier)
	}
}

func TestIsKnownTemplate(t *testing.T) {
	assert.True(t, IsKnownTemplate("minimal"))
	assert.True(t, IsKnownTemplate("venura"))
	assert.False(t, IsKnownTemplate(""))
	assert.False(t, IsKnownTemplate("Minimal"))
}
