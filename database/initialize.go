package database

import (
	"undangan.link/configs/configslog"
	"undangan.link/database/migrations"
	"undangan.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize menjalankan migrasi dan/atau seeder dalam satu transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Flag migrate atau seed tidak diberikan, tidak ada yang dijalankan.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Transaction database gagal dimulai", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inisialisasi database gagal (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Terjadi kesalahan saat inisialisasi, transaction di-rollback.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Kesalahan tambahan saat rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Inisialisasi database dimulai...")

	if migrate {
		configslog.SLog.Info("Menjalankan migrasi...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasi gagal", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasi selesai.")
	} else {
		configslog.SLog.Info("Flag migrate tidak diberikan, langkah migrasi dilewati.")
	}

	if seed {
		configslog.SLog.Info("Menjalankan seeder...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding gagal", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder selesai.")
	} else {
		configslog.SLog.Info("Flag seed tidak diberikan, langkah seeder dilewati.")
	}

	configslog.SLog.Info("Commit transaction...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit gagal", zap.Error(err))
		return
	}

	configslog.SLog.Info("Inisialisasi database selesai")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi dijalankan berurutan...")

	configslog.SLog.Info(" -> Migrasi cache entries...")
	if err := migrations.MigrateCacheEntriesTable(db); err != nil {
		configslog.Log.Error("Migrasi tabel cache_entries gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Migrasi cache entries selesai.")

	configslog.SLog.Info(" -> Migrasi guest queue...")
	if err := migrations.MigrateGuestQueueTable(db); err != nil {
		configslog.Log.Error("Migrasi tabel guest_queue_items gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Migrasi guest queue selesai.")

	configslog.SLog.Info(" -> Migrasi message templates...")
	if err := migrations.MigrateMessageTemplatesTable(db); err != nil {
		configslog.Log.Error("Migrasi tabel message_templates gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Migrasi message templates selesai.")

	configslog.SLog.Info(" -> Migrasi orders...")
	if err := migrations.MigrateOrdersTable(db); err != nil {
		configslog.Log.Error("Migrasi tabel template_orders gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Migrasi orders selesai.")

	configslog.SLog.Info("Seluruh migrasi berhasil dijalankan.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Seeder template pesan bawaan...")
	if err := seeders.SeedDefaultMessageTemplate(db); err != nil {
		configslog.Log.Error("Seeding template pesan bawaan gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Seeder template pesan bawaan selesai.")

	configslog.SLog.Info(" -> Seeder katalog contoh...")
	if err := seeders.SeedSampleCatalog(db); err != nil {
		configslog.Log.Error("Seeding katalog contoh gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Seeder katalog contoh selesai.")

	configslog.SLog.Info("Seluruh seeder berhasil diperiksa/dijalankan.")
	return nil
}
