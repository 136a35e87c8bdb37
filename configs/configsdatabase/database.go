package configsdatabase

import (
	"time"

	"undangan.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB membuka koneksi Postgres dan menyiapkan pool-nya.
func InitDB(dsn string) error {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Error("Koneksi database gagal dibuka", zap.Error(err))
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = gormDB
	configslog.SLog.Info("Koneksi database berhasil dibuka.")
	return nil
}

// GetDB mengembalikan instance gorm yang sudah diinisialisasi.
func GetDB() *gorm.DB {
	return db
}

// SetDB mengganti instance aktif; dipakai test untuk menyuntikkan DB palsu.
func SetDB(g *gorm.DB) {
	db = g
}

// CloseDB menutup koneksi yang mendasari.
func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
