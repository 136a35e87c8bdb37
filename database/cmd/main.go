package main

import (
	"flag"

	"undangan.link/configs"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Jalankan migrasi database")
	seedFlag := flag.Bool("seed", false, "Jalankan seeder database")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.Log.Fatal("Konfigurasi gagal dimuat", zap.Error(err))
	}

	if err := configsdatabase.InitDB(cfg.DatabaseDSN); err != nil {
		configslog.Log.Fatal("Koneksi database gagal", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Menjalankan inisialisasi database...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Inisialisasi database selesai.")
}
