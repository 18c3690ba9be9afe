package seeders

import (
	"errors"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/models/helpers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDefaultPlans varsayılan plan tanımlarını oluşturur. Mevcut
// plan kodlarına dokunulmaz; fiyat değişiklikleri dashboard'dan yapılır.
func SeedDefaultPlans(db *gorm.DB) error {
	plans := []models.Plan{
		{
			PlanID:   "free",
			Name:     "Ücretsiz",
			Price:    0,
			Interval: models.PlanIntervalMonthly,
			Features: helpers.StringArray{
				"3 temel şablon",
				"Sınırsız kartvizit",
				"Paylaşılabilir link",
			},
		},
		{
			PlanID:    "pro",
			Name:      "Pro",
			Price:     399,
			Interval:  models.PlanIntervalMonthly,
			IsPopular: true,
			Features: helpers.StringArray{
				"Tüm premium şablonlar",
				"Sınırsız kartvizit",
				"Galeri ve harita bölümleri",
				"Öncelikli destek",
			},
		},
		{
			PlanID:   "pro_lifetime",
			Name:     "Pro Ömür Boyu",
			Price:    1999,
			Interval: models.PlanIntervalLifetime,
			Features: helpers.StringArray{
				"Tüm premium şablonlar",
				"Tek seferlik ödeme",
				"Gelecek tüm şablonlar dahil",
			},
		},
	}

	for _, plan := range plans {
		var existing models.Plan
		err := db.Where("plan_id = ?", plan.PlanID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Plan seed kontrolü başarısız", zap.String("planID", plan.PlanID), zap.Error(err))
			return err
		}
		if err := db.Create(&plan).Error; err != nil {
			configslog.Log.Error("Plan seed edilemedi", zap.String("planID", plan.PlanID), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Plan seed edildi: %s", plan.PlanID)
	}
	return nil
}
