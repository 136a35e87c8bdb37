package main

import (
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/remotestore"
	"undangan.link/repositories"
	"undangan.link/routes"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.Log.Fatal("Konfigurasi gagal dimuat", zap.Error(err))
	}

	if err := configsdatabase.InitDB(cfg.DatabaseDSN); err != nil {
		configslog.Log.Fatal("Koneksi database gagal", zap.Error(err))
	}
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	store := remotestore.NewClient(cfg,
		repositories.NewCacheRepository(db),
		remotestore.NewHTTPRequest(10*time.Second))

	deps := routes.Deps{
		Config:    cfg,
		Documents: services.NewDocumentService(store),
		Guestbook: services.NewGuestbookService(store),
		Broadcast: services.NewBroadcastService(cfg,
			repositories.NewGuestQueueRepository(db),
			repositories.NewMessageTemplateRepository(db)),
		Catalog: services.NewCatalogService(cfg, store,
			repositories.NewOrderRepository(db)),
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "undangan.link",
		ReadTimeout: 15 * time.Second,
	})

	routes.SetupRoutes(app, deps)

	configslog.SLog.Infof("Server berjalan di port %s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		configslog.Log.Fatal("Server berhenti", zap.Error(err))
	}
}
