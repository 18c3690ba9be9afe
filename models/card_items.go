package models

import (
	"github.com/google/uuid"
)

// Weekdays haftanın günleri, Pazartesi'den Pazar'a. BusinessHours
// backfill bu sırayı esas alır.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// CardService kartvizitte listelenen bir hizmet kalemidir.
// Fiyat serbest metindir, sayısal doğrulama yapılmaz.
type CardService struct {
	BaseModel
	CardID      uint   `gorm:"index;not null"`
	ItemID      string `gorm:"type:varchar(36);uniqueIndex;not null"` // Editör operasyonları için public kimlik
	Title       string `gorm:"type:varchar(150);not null" form:"title"`
	Description string `gorm:"type:text" form:"description"`
	Price       string `gorm:"type:varchar(50)" form:"price"`
	Position    int    `gorm:"not null;default:0"` // Liste sırası
}

// BusinessHour bir haftanın gününe ait çalışma saatini tutar.
// Her kartta gün başına tam bir kayıt bulunur.
type BusinessHour struct {
	BaseModel
	CardID   uint   `gorm:"index;not null"`
	ItemID   string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Day      string `gorm:"type:varchar(10);not null"` // Monday..Sunday
	Open     string `gorm:"type:varchar(5);not null"`  // "09:00"
	Close    string `gorm:"type:varchar(5);not null"`  // "17:00"
	IsClosed bool   `gorm:"default:false"`
}

// GalleryImage kartvizit galerisindeki bir görseli tutar.
type GalleryImage struct {
	BaseModel
	CardID   uint   `gorm:"index;not null"`
	ItemID   string `gorm:"type:varchar(36);uniqueIndex;not null"`
	ImageURL string `gorm:"type:text;not null"` // URL veya data-URI
	Position int    `gorm:"not null;default:0"`
}

// DefaultBusinessHours varsayılan haftalık çalışma saatleri:
// hafta içi 09:00-17:00 açık, hafta sonu 10:00-14:00 kapalı.
func DefaultBusinessHours() []BusinessHour {
	hours := make([]BusinessHour, 0, len(Weekdays))
	for _, day := range Weekdays {
		h := BusinessHour{ItemID: uuid.NewString(), Day: day, Open: "09:00", Close: "17:00"}
		if day == "Saturday" || day == "Sunday" {
			h.Open, h.Close, h.IsClosed = "10:00", "14:00", true
		}
		hours = append(hours, h)
	}
	return hours
}

// HoursCoverWeek kayıtların her haftanın gününü tam bir kez kapsayıp
// kapsamadığını söyler. Yedi kayıt olsa bile tekrar eden bir gün
// (dolayısıyla eksik bir gün) kapsamı bozar.
func HoursCoverWeek(hours []BusinessHour) bool {
	if len(hours) != len(Weekdays) {
		return false
	}
	seen := make(map[string]bool, len(Weekdays))
	for _, h := range hours {
		if seen[h.Day] {
			return false
		}
		seen[h.Day] = true
	}
	for _, day := range Weekdays {
		if !seen[day] {
			return false
		}
	}
	return true
}

// BackfillBusinessHours eksik günleri varsayılanlarla tamamlar.
// Mevcut kayıtların değerleri korunur; sonuç her zaman Pazartesi-Pazar
// sıralı tam yedi kayıttır.
func BackfillBusinessHours(existing []BusinessHour) []BusinessHour {
	byDay := make(map[string]BusinessHour, len(existing))
	for _, h := range existing {
		if _, ok := byDay[h.Day]; !ok {
			byDay[h.Day] = h
		}
	}
	defaults := DefaultBusinessHours()
	result := make([]BusinessHour, 0, len(Weekdays))
	for i, day := range Weekdays {
		if h, ok := byDay[day]; ok {
			result = append(result, h)
			continue
		}
		result = append(result, defaults[i])
	}
	return result
}
