package database

import (
	"digicard.pro/configs/configslog"
	"digicard.pro/database/migrations"
	"digicard.pro/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := migrations.MigrateUsersTable(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Users migrasyonu başarısız", zap.Error(err))
			return
		}
		if err := migrations.MigrateCardsTables(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Cards migrasyonu başarısız", zap.Error(err))
			return
		}
		if err := migrations.MigratePlansTable(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Plans migrasyonu başarısız", zap.Error(err))
			return
		}
	}

	if seed {
		configslog.SLog.Info("Seederlar çalıştırılıyor...")
		if err := seeders.SeedAdminUser(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Yönetici seed başarısız", zap.Error(err))
			return
		}
		if err := seeders.SeedDefaultPlans(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Plan seed başarısız", zap.Error(err))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Fatal("Veritabanı başlatma commit edilemedi", zap.Error(err))
	}
}
