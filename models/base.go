package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// contextKey context value anahtarları için özel tip (çakışmayı önler).
type contextKey string

const userIDContextKey contextKey = "user_id"

// ContextWithUserID işlemi yapan kullanıcıyı context'e ekler.
// BaseModel hook'ları CreatedBy/UpdatedBy/DeletedBy alanlarını buradan doldurur.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür (yoksa 0).
func UserIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	if id, ok := ctx.Value(userIDContextKey).(uint); ok {
		return id
	}
	return 0
}

// BaseModel tüm tablolarda ortak olan kimlik ve denetim (audit) alanları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint
	DeletedBy uint
}

// BeforeCreate kaydı oluşturan kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID := UserIDFromContext(tx.Statement.Context); userID != 0 {
		m.CreatedBy = userID
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeUpdate son güncelleyen kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID := UserIDFromContext(tx.Statement.Context); userID != 0 {
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeDelete silen kullanıcıyı context'ten alır (soft delete öncesi).
func (m *BaseModel) BeforeDelete(tx *gorm.DB) error {
	if userID := UserIDFromContext(tx.Statement.Context); userID != 0 {
		tx.Statement.SetColumn("deleted_by", userID)
	}
	return nil
}
