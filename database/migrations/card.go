package migrations

import (
	"digicard.pro/configs/configslog"
	"digicard.pro/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards tables...")
	err := db.AutoMigrate(
		&models.Card{},
		&models.CardDetail{},
		&models.CardService{},
		&models.BusinessHour{},
		&models.GalleryImage{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate cards tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards tables migrated successfully")
	return nil
}
