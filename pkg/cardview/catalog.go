package cardview

import (
	"digicard.pro/models"
)

// Strategy tek bir görsel şablonun render stratejisidir. Her strateji
// kart kaydını ve sıralı içerik bloklarını alıp tam bir Page üretir.
type Strategy interface {
	Render(card *models.Card, blocks []ContentBlock) Page
}

// Catalog şablon kimliğini render stratejisine eşler. Monolitik bir
// switch yerine başlangıçta doldurulan bir registry kullanılır; yeni
// şablonlar Register ile bağımsız eklenip test edilebilir.
type Catalog struct {
	registry   *SectionRegistry
	strategies map[string]Strategy
}

// NewCatalog tüm bilinen şablonlarla dolu bir katalog oluşturur.
func NewCatalog(registry *SectionRegistry) *Catalog {
	if registry == nil {
		registry = NewSectionRegistry()
	}
	c := &Catalog{
		registry:   registry,
		strategies: make(map[string]Strategy, len(AllTemplateIDs)),
	}
	for _, id := range AllTemplateIDs {
		c.Register(id, newSkinStrategy(id))
	}
	return c
}

// Register şablon kimliğine bir strateji bağlar; mevcutsa üzerine yazar.
func (c *Catalog) Register(templateID string, s Strategy) {
	c.strategies[templateID] = s
}

// Has şablonun katalogda tanımlı olup olmadığını söyler.
func (c *Catalog) Has(templateID string) bool {
	_, ok := c.strategies[templateID]
	return ok
}

// Render kartı seçili şablonla render eder. Bilinmeyen templateID
// varsayılan (minimal) stratejiye düşer; render hiçbir koşulda
// başarısız olmaz ve yan etki üretmez.
func (c *Catalog) Render(templateID string, card *models.Card) Page {
	strategy, ok := c.strategies[templateID]
	if !ok {
		strategy = c.strategies[models.TemplateDefault]
	}
	return strategy.Render(card, c.collectBlocks(card))
}

// collectBlocks kartın bölüm sırasını yürüyüp içeriği olan blokları
// toplar. Sıra kanonikleştirilir: tekrar eden bölüm ilk konumunda bir
// kez render edilir, bilinmeyen kimlikler atlanır.
func (c *Catalog) collectBlocks(card *models.Card) []ContentBlock {
	order := models.NormalizeSectionOrder(card.SectionOrder)
	blocks := make([]ContentBlock, 0, len(order))
	for _, sectionID := range order {
		if block, ok := c.registry.Render(sectionID, card); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// skinStrategy tüm şablonların paylaştığı kompozisyon davranışı:
// kimlik başlığı, korumalı doğrudan eylemler, mevcut kanalların sosyal
// ikonları ve sıralı bölüm blokları. Şablonlar arasındaki fark view
// katmanına taşınan skin ipuçlarıdır (koyu tema, banner).
type skinStrategy struct {
	id     string
	dark   bool
	banner bool
}

// Koyu temalı skin'ler.
var darkSkins = map[string]bool{
	TemplateDark:      true,
	TemplateTech:      true,
	TemplateLuxe:      true,
	TemplateCyberpunk: true,
	TemplateTerminal:  true,
}

// Banner görseli kullanan skin'ler.
var bannerSkins = map[string]bool{
	TemplateModern: true,
	TemplateInsta:  true,
	TemplateVenura: true,
}

func newSkinStrategy(templateID string) Strategy {
	return &skinStrategy{
		id:     templateID,
		dark:   darkSkins[templateID],
		banner: bannerSkins[templateID],
	}
}

func (s *skinStrategy) Render(card *models.Card, blocks []ContentBlock) Page {
	detail := card.Detail
	page := Page{
		TemplateID:      s.id,
		Skin:            "template-" + s.id,
		DarkMode:        s.dark,
		ShowBanner:      s.banner && detail.BannerImageURL != "",
		PrimaryColor:    card.PrimaryColor,
		FullName:        detail.FullName,
		JobTitle:        detail.JobTitle,
		CompanyName:     detail.CompanyName,
		Bio:             detail.Bio,
		Tags:            detail.Tags,
		ProfileImageURL: detail.ProfileImageURL,
		BannerImageURL:  detail.BannerImageURL,
		LogoImageURL:    detail.LogoImageURL,
		Actions:         buildActions(detail.Socials),
		Socials:         buildSocialIcons(detail.Socials),
		Blocks:          blocks,
	}
	return page
}

// buildActions birincil eylem linklerini üretir. Değeri olmayan kanal
// için link üretilmez; ölü link render edilmez.
func buildActions(socials models.SocialLinks) []LinkAction {
	var actions []LinkAction
	if socials.Phone != "" {
		actions = append(actions, LinkAction{Channel: "phone", Label: "Call", Href: "tel:" + socials.Phone})
	}
	if socials.Email != "" {
		actions = append(actions, LinkAction{Channel: "email", Label: "Email", Href: "mailto:" + socials.Email})
	}
	if socials.WhatsApp != "" {
		actions = append(actions, LinkAction{Channel: "whatsapp", Label: "WhatsApp", Href: WhatsAppURL(socials.WhatsApp)})
	}
	if socials.Address != "" {
		actions = append(actions, LinkAction{Channel: "address", Label: "Location", Href: MapsSearchURL(socials.Address)})
	}
	return actions
}

// buildSocialIcons sadece dolu kanallar için ikon linki üretir.
func buildSocialIcons(socials models.SocialLinks) []LinkAction {
	channels := []struct {
		name  string
		label string
		value string
	}{
		{"website", "Website", socials.Website},
		{"linkedin", "LinkedIn", socials.LinkedIn},
		{"twitter", "Twitter", socials.Twitter},
		{"instagram", "Instagram", socials.Instagram},
		{"youtube", "YouTube", socials.YouTube},
		{"facebook", "Facebook", socials.Facebook},
	}
	var icons []LinkAction
	for _, ch := range channels {
		if ch.value == "" {
			continue
		}
		icons = append(icons, LinkAction{Channel: ch.name, Label: ch.label, Href: NormalizeHref(ch.value)})
	}
	return icons
}
