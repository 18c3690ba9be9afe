package main

import (
	"os"
	"os/signal"
	"syscall"

	"digicard.pro/configs"
	"digicard.pro/configs/configsdatabase"
	"digicard.pro/configs/configslog"
	"digicard.pro/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/panel_layout",
	})

	app.Static("/assets", "./assets")

	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM gelince açık istekleri bitirip kapan.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	addr := configs.AppListenAddr()
	configslog.SLog.Infof("Sunucu dinlemede: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
