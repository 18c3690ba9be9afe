package seeders

import (
	"errors"
	"os"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser ortam değişkenlerinden ilk yönetici hesabını oluşturur.
// Yönetici girişi normal kimlik doğrulamadan geçer; özel bir giriş
// yolu veya şifre atlaması yoktur.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL veya ADMIN_PASSWORD tanımlı değil, yönetici seed atlanıyor.")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		configslog.SLog.Info("Yönetici hesabı zaten mevcut, seed atlanıyor.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici seed kontrolü başarısız", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici şifresi hashlenemedi", zap.Error(err))
		return err
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Subscription: models.SubscriptionProLifetime,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Yönetici hesabı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici hesabı oluşturuldu: %s", email)
	return nil
}
