package cardview

import (
	"strings"
	"time"

	"digicard.pro/models"
)

// SectionRegistry bölüm kimliklerini içerik bloklarına çevirir.
// "Bu bölüm boş mu?" sorusunun tek cevabı HasContent'tir; şablonlar
// kendi başına doluluk kontrolü yapmaz.
type SectionRegistry struct {
	// Now "bugün" vurgusu için saat kaynağı. Testlerde sabitlenir.
	Now func() time.Time
}

// NewSectionRegistry gerçek saat ile çalışan bir registry döndürür.
func NewSectionRegistry() *SectionRegistry {
	return &SectionRegistry{Now: time.Now}
}

// HasContent bölümün render edilecek içeriği olup olmadığını söyler.
// Bilinmeyen bölüm kimlikleri sessizce "içerik yok" sayılır.
func (r *SectionRegistry) HasContent(sectionID string, card *models.Card) bool {
	switch sectionID {
	case models.SectionAbout:
		return strings.TrimSpace(card.Detail.AboutText) != ""
	case models.SectionServices:
		return len(card.Services) > 0
	case models.SectionGallery:
		return len(card.Gallery) > 0
	case models.SectionHours:
		return len(card.BusinessHours) > 0
	case models.SectionMap:
		return card.ShowMap && strings.TrimSpace(card.Detail.Socials.Address) != ""
	default:
		return false
	}
}

// Render bölümün stil-bağımsız içerik bloğunu üretir. İçerik yoksa
// (veya kimlik bilinmiyorsa) ok=false döner ve blok atlanmalıdır.
func (r *SectionRegistry) Render(sectionID string, card *models.Card) (ContentBlock, bool) {
	if !r.HasContent(sectionID, card) {
		return ContentBlock{}, false
	}

	switch sectionID {
	case models.SectionAbout:
		title := card.Detail.AboutTitle
		if title == "" {
			title = "About"
		}
		return ContentBlock{
			SectionID: sectionID,
			Title:     title,
			Body:      splitParagraphs(card.Detail.AboutText),
		}, true

	case models.SectionServices:
		items := make([]ContentItem, 0, len(card.Services))
		for _, s := range card.Services {
			items = append(items, ContentItem{
				ItemID:      s.ItemID,
				Title:       s.Title,
				Description: s.Description,
				Price:       s.Price,
			})
		}
		return ContentBlock{SectionID: sectionID, Title: "Our Services", Items: items}, true

	case models.SectionGallery:
		items := make([]ContentItem, 0, len(card.Gallery))
		for _, g := range card.Gallery {
			items = append(items, ContentItem{ItemID: g.ItemID, ImageURL: g.ImageURL})
		}
		return ContentBlock{SectionID: sectionID, Title: "Gallery", Items: items}, true

	case models.SectionHours:
		today := r.todayName()
		lines := make([]HourLine, 0, len(card.BusinessHours))
		for _, h := range card.BusinessHours {
			lines = append(lines, HourLine{
				Day:      h.Day,
				Open:     h.Open,
				Close:    h.Close,
				IsClosed: h.IsClosed,
				IsToday:  h.Day == today,
			})
		}
		return ContentBlock{SectionID: sectionID, Title: "Office Hours", Hours: lines}, true

	case models.SectionMap:
		address := card.Detail.Socials.Address
		return ContentBlock{
			SectionID:   sectionID,
			Title:       "Find Us",
			MapAddress:  address,
			MapEmbedURL: MapEmbedURL(address, card.CustomMapURL),
		}, true
	}

	return ContentBlock{}, false
}

// todayName mevcut günün İngilizce adını döndürür; BusinessHour.Day
// etiketleriyle birebir karşılaştırılır.
func (r *SectionRegistry) todayName() string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().Weekday().String()
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
