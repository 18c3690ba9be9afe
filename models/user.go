package models

import "time"

// Kullanıcı rolleri.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Abonelik kademeleri. SubscriptionFree dışındaki her kademe premium
// şablonların kilidini açar.
const (
	SubscriptionFree        = "free"
	SubscriptionProMonthly  = "pro_monthly"
	SubscriptionProLifetime = "pro_lifetime"
)

// User bir hesabı temsil eder. Subscription alanı şablon erişim
// kontrolünün (Entitlement Gate) tek girdisidir.
type User struct {
	BaseModel
	Name               string     `gorm:"type:varchar(100);not null"`
	Email              string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string     `gorm:"type:varchar(100);not null"`
	Role               string     `gorm:"type:varchar(10);not null;default:'user';index"`
	Subscription       string     `gorm:"type:varchar(30);not null;default:'free'"`
	SubscriptionExpiry *time.Time
	IsActive           bool `gorm:"default:true;index"`
}

// IsAdmin kullanıcının yönetici olup olmadığını döndürür.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
