package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"digicard.pro/models/helpers"
)

// SocialLinks kartvizitin iletişim kanallarını tutar. Tüm alanlar
// opsiyoneldir; boş değer "bu kanalı gösterme" anlamına gelir.
// JSONB kolonunda tek parça saklanır.
type SocialLinks struct {
	Email     string `json:"email,omitempty" form:"social_email"`
	Phone     string `json:"phone,omitempty" form:"social_phone"`
	WhatsApp  string `json:"whatsapp,omitempty" form:"social_whatsapp"`
	Website   string `json:"website,omitempty" form:"social_website"`
	LinkedIn  string `json:"linkedin,omitempty" form:"social_linkedin"`
	Twitter   string `json:"twitter,omitempty" form:"social_twitter"`
	Instagram string `json:"instagram,omitempty" form:"social_instagram"`
	YouTube   string `json:"youtube,omitempty" form:"social_youtube"`
	Facebook  string `json:"facebook,omitempty" form:"social_facebook"`
	Address   string `json:"address,omitempty" form:"social_address"`
}

func (s SocialLinks) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SocialLinks) Scan(value interface{}) error {
	if value == nil {
		*s = SocialLinks{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("SocialLinks: jsonb kolonundan beklenmeyen veri tipi %T", value)
	}
}

func (SocialLinks) GormDataType() string { return "jsonb" }

// CardDetail kartvizitin profil içeriğini tutar.
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"` // cards.id FK

	// Kimlik
	FullName    string `gorm:"type:varchar(100);not null" form:"full_name"`
	JobTitle    string `gorm:"type:varchar(100)" form:"job_title"`
	CompanyName string `gorm:"type:varchar(150)" form:"company_name"`
	Bio         string `gorm:"type:text" form:"bio"` // Kısa biyografi

	// Hakkında bölümü (serbest metin)
	AboutTitle string `gorm:"type:varchar(100)" form:"about_title"`
	AboutText  string `gorm:"type:text" form:"about_text"`

	// Görsel öğeler: URL veya data-URI olabilir
	ProfileImageURL string `gorm:"type:text" form:"profile_image"`
	BannerImageURL  string `gorm:"type:text" form:"banner_image"`
	LogoImageURL    string `gorm:"type:text" form:"logo_image"`

	// İletişim kanalları
	Socials SocialLinks `gorm:"type:jsonb"`

	// Kısa etiketler
	Tags helpers.StringArray `gorm:"type:jsonb"`
}
