package repositories

import (
	"context"
	"errors"
	"strings"

	"digicard.pro/configs/configsdatabase"
	"digicard.pro/models"
	"digicard.pro/pkg/queryparams"

	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Save(ctx context.Context, user *models.User) error
	GetAllPaginated(params queryparams.ListParams) ([]models.User, int64, error)
	GetCount() (int64, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	base IBaseRepository[models.User]
	db   *gorm.DB
}

// NewUserRepository global bağlantı ile çalışan repo oluşturur.
func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

// NewUserRepositoryTx verilen transaction ile çalışan repo oluşturur.
func NewUserRepositoryTx(db *gorm.DB) IUserRepository {
	base := NewBaseRepository[models.User](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "email", "subscription"})
	return &UserRepository{base: base, db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.base.Save(ctx, user)
}

func (r *UserRepository) GetAllPaginated(params queryparams.ListParams) ([]models.User, int64, error) {
	return r.base.GetAll(params)
}

func (r *UserRepository) GetCount() (int64, error) {
	return r.base.GetCount()
}

var _ IUserRepository = (*UserRepository)(nil)
