package repositories

import (
	"context"
	"errors"

	"digicard.pro/configs/configsdatabase"
	"digicard.pro/models"

	"gorm.io/gorm"
)

// IPlanRepository plan veritabanı işlemleri için arayüz.
type IPlanRepository interface {
	GetAll() ([]models.Plan, error)
	FindByID(ctx context.Context, id uint) (*models.Plan, error)
	FindByPlanID(planID string) (*models.Plan, error)
	Create(ctx context.Context, plan *models.Plan) error
	Save(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id uint) error
}

// PlanRepository IPlanRepository arayüzünü uygular.
type PlanRepository struct {
	base IBaseRepository[models.Plan]
	db   *gorm.DB
}

// NewPlanRepository global bağlantı ile çalışan repo oluşturur.
func NewPlanRepository() IPlanRepository {
	return NewPlanRepositoryTx(configsdatabase.GetDB())
}

// NewPlanRepositoryTx verilen transaction ile çalışan repo oluşturur.
func NewPlanRepositoryTx(db *gorm.DB) IPlanRepository {
	base := NewBaseRepository[models.Plan](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "price", "name"})
	return &PlanRepository{base: base, db: db}
}

// GetAll planları fiyat sırasıyla döndürür (fiyatlandırma sayfası sırası).
func (r *PlanRepository) GetAll() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) FindByID(ctx context.Context, id uint) (*models.Plan, error) {
	return r.base.FindByID(ctx, id)
}

func (r *PlanRepository) FindByPlanID(planID string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("plan_id = ?", planID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	return r.base.Create(ctx, plan)
}

func (r *PlanRepository) Save(ctx context.Context, plan *models.Plan) error {
	return r.base.Save(ctx, plan)
}

func (r *PlanRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

var _ IPlanRepository = (*PlanRepository)(nil)
