// services/plan_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"digicard.pro/configs"
	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/queryparams"
	"digicard.pro/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlanServiceError plan ve abonelik hataları
type PlanServiceError string

func (e PlanServiceError) Error() string { return string(e) }

const (
	ErrPlanNotFound      PlanServiceError = "plan bulunamadı"
	ErrPlanInvalidInput  PlanServiceError = "geçersiz plan verisi"
	ErrPlanIDExists      PlanServiceError = "bu plan kodu zaten kullanımda"
	ErrPlanUpdateFailed  PlanServiceError = "plan güncellenemedi"
	ErrUpgradeFailed     PlanServiceError = "abonelik yükseltme işlemi başarısız"
	ErrUpgradeUserGone   PlanServiceError = "yükseltilecek kullanıcı bulunamadı"
	ErrUpgradeFreePlan   PlanServiceError = "ücretsiz plana yükseltme yapılamaz"
)

// IPlanService plan yönetimi ve abonelik yükseltme arayüzü.
type IPlanService interface {
	GetPlans(ctx context.Context) ([]models.Plan, error)
	GetPlanByPlanID(ctx context.Context, planID string) (*models.Plan, error)
	CreatePlan(ctx context.Context, adminUserID uint, plan models.Plan) error
	UpdatePlan(ctx context.Context, adminUserID uint, id uint, plan models.Plan) error
	DeletePlan(ctx context.Context, adminUserID uint, id uint) error
	UpgradeUser(ctx context.Context, userID uint, planID string) (*models.User, error)
	GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetUserCount(ctx context.Context) (int64, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	userRepo repositories.IUserRepository
	db       *gorm.DB
}

func NewPlanService() IPlanService {
	return &PlanService{
		planRepo: repositories.NewPlanRepository(),
		userRepo: repositories.NewUserRepository(),
		db:       configs.GetDB(),
	}
}

// GetPlans tüm planları fiyata göre artan sırada döner.
func (s *PlanService) GetPlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.planRepo.GetAll()
	if err != nil {
		configslog.Log.Error("Planlar alınırken hata", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

func (s *PlanService) GetPlanByPlanID(ctx context.Context, planID string) (*models.Plan, error) {
	plan, err := s.planRepo.FindByPlanID(planID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func validatePlan(plan models.Plan) error {
	if strings.TrimSpace(plan.PlanID) == "" || strings.TrimSpace(plan.Name) == "" {
		return ErrPlanInvalidInput
	}
	if plan.Price < 0 {
		return ErrPlanInvalidInput
	}
	if plan.Interval != models.PlanIntervalMonthly && plan.Interval != models.PlanIntervalLifetime {
		return ErrPlanInvalidInput
	}
	return nil
}

// CreatePlan yeni bir plan tanımlar (yalnızca yönetici çağırır).
func (s *PlanService) CreatePlan(ctx context.Context, adminUserID uint, plan models.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}
	if _, err := s.planRepo.FindByPlanID(plan.PlanID); err == nil {
		return ErrPlanIDExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	txCtx := models.ContextWithUserID(ctx, adminUserID)
	if err := s.planRepo.Create(txCtx, &plan); err != nil {
		configslog.Log.Error("Plan oluşturulamadı", zap.String("planID", plan.PlanID), zap.Error(err))
		return ErrPlanUpdateFailed
	}
	configslog.SLog.Infof("Yeni plan oluşturuldu: %s (%s)", plan.Name, plan.PlanID)
	return nil
}

// UpdatePlan mevcut planın alanlarını günceller; plan kodu değiştirilemez.
func (s *PlanService) UpdatePlan(ctx context.Context, adminUserID uint, id uint, plan models.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}

	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}

	existing.Name = plan.Name
	existing.Price = plan.Price
	existing.Interval = plan.Interval
	existing.Features = plan.Features
	existing.IsPopular = plan.IsPopular

	txCtx := models.ContextWithUserID(ctx, adminUserID)
	if err := s.planRepo.Save(txCtx, existing); err != nil {
		configslog.Log.Error("Plan güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return ErrPlanUpdateFailed
	}
	return nil
}

func (s *PlanService) DeletePlan(ctx context.Context, adminUserID uint, id uint) error {
	txCtx := models.ContextWithUserID(ctx, adminUserID)
	if err := s.planRepo.Delete(txCtx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		configslog.Log.Error("Plan silinemedi", zap.Uint("id", id), zap.Error(err))
		return ErrPlanUpdateFailed
	}
	return nil
}

// UpgradeUser kullanıcının abonelik kademesini plana göre değiştirir.
// Aylık planlarda bitiş tarihi 30 gün sonrasına kurulur, ömür boyu
// planlarda bitiş tarihi temizlenir. Ödeme tahsilatı bu katmanın işi
// değildir; çağıran ödeme onayını aldıktan sonra burayı çağırır.
func (s *PlanService) UpgradeUser(ctx context.Context, userID uint, planID string) (*models.User, error) {
	plan, err := s.planRepo.FindByPlanID(planID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.Price == 0 {
		return nil, ErrUpgradeFreePlan
	}

	var upgraded *models.User
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		user, err := userRepoTx.FindByID(txCtx, userID)
		if err != nil {
			return ErrUpgradeUserGone
		}

		switch plan.Interval {
		case models.PlanIntervalMonthly:
			user.Subscription = models.SubscriptionProMonthly
			expiry := time.Now().AddDate(0, 0, 30)
			user.SubscriptionExpiry = &expiry
		case models.PlanIntervalLifetime:
			user.Subscription = models.SubscriptionProLifetime
			user.SubscriptionExpiry = nil
		default:
			return ErrPlanInvalidInput
		}

		if err := userRepoTx.Save(txCtx, user); err != nil {
			configslog.Log.Error("Abonelik yükseltme kaydedilemedi", zap.Uint("userID", userID), zap.Error(err))
			return ErrUpgradeFailed
		}
		upgraded = user
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Abonelik yükseltildi: kullanıcı %d -> %s", userID, upgraded.Subscription)
	return upgraded, nil
}

// GetUsersPaginated yönetici paneli için kullanıcı listesini döner.
func (s *PlanService) GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	users, totalCount, err := s.userRepo.GetAllPaginated(params)
	if err != nil {
		configslog.Log.Error("Kullanıcı listesi alınırken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: users,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *PlanService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.GetCount()
}

var _ IPlanService = (*PlanService)(nil)
