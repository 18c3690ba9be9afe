package routes

import (
	handlers "digicard.pro/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerPublicCardRoutes public kartvizit sayfalarını (örn. /ayse-yilmaz-x7k2p9) yönetir.
func registerPublicCardRoutes(app *fiber.App) {
	publicHandler := handlers.NewPublicCardHandler()

	// Ana rota: :slug parametresi ile kartvizit adresini yakala.
	// Bu rota diğer özel rotalardan (örn. /auth, /panel) SONRA tanımlanmalı.
	app.Get("/:slug", publicHandler.HandleCard)
}
