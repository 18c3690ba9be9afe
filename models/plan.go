package models

import "digicard.pro/models/helpers"

// Plan aralıkları.
const (
	PlanIntervalMonthly  = "monthly"
	PlanIntervalLifetime = "lifetime"
)

// Plan fiyatlandırma sayfasında gösterilen bir teklifi temsil eder.
// Sadece upgrade akışı tarafından tüketilir; şablon kilit listesi
// planlardan bağımsızdır (kataloğa gömülüdür).
type Plan struct {
	BaseModel
	PlanID    string              `gorm:"type:varchar(30);uniqueIndex;not null"`
	Name      string              `gorm:"type:varchar(100);not null" form:"name"`
	Price     int                 `gorm:"not null" form:"price"` // INR
	Interval  string              `gorm:"type:varchar(10);not null;default:'monthly'" form:"interval"`
	Features  helpers.StringArray `gorm:"type:jsonb"`
	IsPopular bool                `gorm:"default:false" form:"is_popular"`
}
