package migrations

import (
	"digicard.pro/configs/configslog"
	"digicard.pro/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePlansTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating plans table...")
	err := db.AutoMigrate(&models.Plan{})
	if err != nil {
		configslog.Log.Error("Failed to migrate plans table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Plans table migrated successfully")
	return nil
}
