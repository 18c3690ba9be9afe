package models

import (
	"digicard.pro/models/helpers"
)

// Bilinen bölüm (section) kimlikleri. Card.SectionOrder yalnızca bu
// kümeden değerler içerebilir; sıra, public sayfadaki dikey dizilimi belirler.
const (
	SectionAbout    = "about"
	SectionServices = "services"
	SectionGallery  = "gallery"
	SectionHours    = "hours"
	SectionMap      = "map"
)

// DefaultSectionOrder yeni kartvizitlerin varsayılan bölüm sırası.
var DefaultSectionOrder = []string{SectionAbout, SectionServices, SectionGallery, SectionHours, SectionMap}

// KnownSectionIDs bilinen bölüm kimliklerinin kümesi.
var KnownSectionIDs = map[string]bool{
	SectionAbout:    true,
	SectionServices: true,
	SectionGallery:  true,
	SectionHours:    true,
	SectionMap:      true,
}

// TemplateDefault bilinmeyen şablon seçimlerinde kullanılan varsayılan şablon.
const TemplateDefault = "minimal"

// Card dijital kartvizitin ana kaydıdır. Public erişim anahtarı Slug'dır.
type Card struct {
	BaseModel
	Slug          string `gorm:"type:varchar(60);uniqueIndex;not null"` // Public URL anahtarı
	CreatorUserID uint   `gorm:"index;not null"`
	IsEnabled     bool   `gorm:"default:true;index"` // Kartvizit aktif mi?

	// Görsel seçim
	TemplateID   string `gorm:"type:varchar(30);not null;default:'minimal'"`
	PrimaryColor string `gorm:"type:varchar(7);not null;default:'#4f46e5'"`

	// Yerleşim
	SectionOrder helpers.StringArray `gorm:"type:jsonb"` // Bölüm sırası (about, services, ...)
	ShowMap      bool                `gorm:"default:true"`
	CustomMapURL string              `gorm:"type:varchar(500)"` // Harita embed URL override

	// Public görüntülenme sayacı, hiçbir zaman azalmaz.
	Views int64 `gorm:"default:0"`

	// GORM İlişkileri
	Detail        CardDetail     `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Services      []CardService  `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BusinessHours []BusinessHour `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Gallery       []GalleryImage `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewDefaultCard boş bir taslak kartvizit üretir (henüz persist edilmemiş).
// Varsayılanlar: minimal şablon, indigo ana renk, tüm bölümler sırada,
// hafta içi açık / hafta sonu kapalı çalışma saatleri.
func NewDefaultCard(creatorUserID uint) Card {
	return Card{
		CreatorUserID: creatorUserID,
		IsEnabled:     true,
		TemplateID:    TemplateDefault,
		PrimaryColor:  "#4f46e5",
		SectionOrder:  helpers.StringArray(append([]string{}, DefaultSectionOrder...)),
		ShowMap:       true,
		Detail: CardDetail{
			FullName:        "Your Name",
			JobTitle:        "Professional Title",
			CompanyName:     "Your Company",
			Bio:             "Helping businesses thrive through innovation and strategy.",
			AboutTitle:      "About Us",
			ProfileImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			BannerImageURL:  "https://images.unsplash.com/photo-1557683316-973673baf926?auto=format&fit=crop&q=80&w=800",
			Socials:         SocialLinks{},
			Tags:            helpers.StringArray{},
		},
		BusinessHours: DefaultBusinessHours(),
	}
}

// NormalizeSectionOrder bölüm sırasını kanonik hale getirir:
// tekrar eden kimliklerden ilki korunur, bilinmeyenler atılır,
// eksik kalan bilinen bölümler varsayılan sırayla sona eklenir.
func NormalizeSectionOrder(order []string) []string {
	normalized := make([]string, 0, len(KnownSectionIDs))
	seen := make(map[string]bool, len(KnownSectionIDs))
	for _, id := range order {
		if !KnownSectionIDs[id] || seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}
	for _, id := range DefaultSectionOrder {
		if !seen[id] {
			normalized = append(normalized, id)
		}
	}
	return normalized
}

// NormalizeSectionOrder kartın kendi bölüm sırasını kanonikleştirir.
func (c *Card) NormalizeSectionOrder() {
	c.SectionOrder = helpers.StringArray(NormalizeSectionOrder(c.SectionOrder))
}

// MoveSection index'teki bölümü verilen yöndeki komşusuyla yer değiştirir.
// Sınırlarda (ilk elemanda up, son elemanda down) no-op'tur;
// değişiklik yapılıp yapılmadığını döndürür.
func (c *Card) MoveSection(index int, direction string) bool {
	order := c.SectionOrder
	switch direction {
	case "up":
		if index <= 0 || index >= len(order) {
			return false
		}
		order[index-1], order[index] = order[index], order[index-1]
	case "down":
		if index < 0 || index >= len(order)-1 {
			return false
		}
		order[index], order[index+1] = order[index+1], order[index]
	default:
		return false
	}
	return true
}
