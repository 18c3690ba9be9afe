package cardview

import "digicard.pro/models"

// PremiumTemplateIDs premium aboneliği gerektiren şablonlar. Liste
// kataloğa gömülüdür; Plan kayıtlarından bağımsızdır (planlar sadece
// fiyat/özellik metni taşır).
var PremiumTemplateIDs = []string{
	TemplateProfessional, TemplateCreative, TemplateElegant, TemplateTech, TemplateGradient,
	TemplateGlass, TemplatePlayful, TemplateNeobrutalist, TemplateMonochrome, TemplateSoftUI,
	TemplateLuxe, TemplateCyberpunk, TemplateRetro, TemplateBotanical, TemplateCompact,
	TemplateInsta, TemplateTerminal, TemplateVenura,
}

var premiumSet = func() map[string]bool {
	set := make(map[string]bool, len(PremiumTemplateIDs))
	for _, id := range PremiumTemplateIDs {
		set[id] = true
	}
	return set
}()

// IsPremiumTemplate şablonun premium kümesinde olup olmadığını söyler.
func IsPremiumTemplate(templateID string) bool {
	return premiumSet[templateID]
}

// IsLocked şablonun verilen abonelik kademesi için kilitli olup
// olmadığını söyler: sadece premium şablon + free kademe kombinasyonu
// kilitlidir.
func IsLocked(templateID, subscriptionTier string) bool {
	return IsPremiumTemplate(templateID) && subscriptionTier == models.SubscriptionFree
}

// IsKnownTemplate şablonun katalog enum'unda olup olmadığını söyler.
// Yazma anında doğrulama için kullanılır; okuma tarafı bilinmeyen
// değerleri varsayılana düşürür.
func IsKnownTemplate(templateID string) bool {
	for _, id := range AllTemplateIDs {
		if id == templateID {
			return true
		}
	}
	return false
}
