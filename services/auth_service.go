// services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError kimlik doğrulama hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials  AuthServiceError = "geçersiz e-posta veya şifre"
	ErrUserInactive        AuthServiceError = "hesabınız aktif değil"
	ErrEmailAlreadyExists  AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrRegistrationInvalid AuthServiceError = "isim, e-posta ve şifre alanları zorunludur"
	ErrPasswordTooShort    AuthServiceError = "şifre en az 8 karakter olmalıdır"
	ErrAuthGeneric         AuthServiceError = "kimlik doğrulama sırasında bir hata oluştu"
)

// IAuthService kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type AuthService struct {
	userRepo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Register yeni bir standart kullanıcı oluşturur. Rol ve abonelik
// kademesi burada sabittir; yönetici hesapları yalnızca seed ile açılır.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrRegistrationInvalid
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		configslog.Log.Error("Register: e-posta kontrolü hatası", zap.String("email", email), zap.Error(err))
		return nil, ErrAuthGeneric
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Register: şifre hashlenemedi", zap.Error(err))
		return nil, ErrAuthGeneric
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Subscription: models.SubscriptionFree,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, ErrAuthGeneric
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydı: %s (ID %d)", user.Email, user.ID)
	return user, nil
}

// Authenticate e-posta ve şifre ile giriş yapar. Şifre karşılaştırması
// her zaman bcrypt üzerinden yapılır; hiçbir hesap için atlama yoktur.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Authenticate: kullanıcı sorgusu hatası", zap.String("email", email), zap.Error(err))
		return nil, ErrAuthGeneric
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// GetUserByID profil sayfası için kullanıcıyı getirir.
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrAuthGeneric
	}
	return user, nil
}

// UpdatePassword mevcut şifreyi doğruladıktan sonra yenisini kaydeder.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrAuthGeneric
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("UpdatePassword: şifre hashlenemedi", zap.Error(err))
		return ErrAuthGeneric
	}
	user.PasswordHash = string(hash)

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.userRepo.Save(txCtx, user); err != nil {
		configslog.Log.Error("UpdatePassword: kullanıcı kaydedilemedi", zap.Uint("userID", userID), zap.Error(err))
		return ErrAuthGeneric
	}
	configslog.SLog.Infof("Şifre güncellendi: kullanıcı %d", userID)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
