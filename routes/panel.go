package routes

import (
	panel_handlers "digicard.pro/handlers/panel"
	"digicard.pro/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Sadece normal kullanıcıların erişimine izin verilir.
func registerPanelRoutes(app *fiber.App) {
	panelHomeHandler := panel_handlers.NewPanelHomeHandler()
	cardHandler := panel_handlers.NewPanelCardHandler()
	planHandler := panel_handlers.NewPanelPlanHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware,   // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware, // 2. Hesap aktif mi?
		middlewares.RequireUser(),    // 3. Normal kullanıcı mı?
	)

	// --- Panel Ana Sayfa ---
	panelGroup.Get("/home", panelHomeHandler.PanelHomeHandler) // GET /panel/home

	// --- Kullanıcının Kendi Kartvizitleri ---
	panelGroup.Get("/cards", cardHandler.ListCards)                 // GET /panel/cards
	panelGroup.Get("/cards/create", cardHandler.ShowCreateCard)     // GET /panel/cards/create
	panelGroup.Post("/cards/create", cardHandler.CreateCard)        // POST /panel/cards/create
	panelGroup.Get("/cards/update/:id", cardHandler.ShowUpdateCard) // GET /panel/cards/update/{id}
	panelGroup.Post("/cards/update/:id", cardHandler.UpdateCard)    // POST /panel/cards/update/{id}
	panelGroup.Post("/cards/delete/:id", cardHandler.DeleteCard)    // POST /panel/cards/delete/{id} (Formdan silme)
	panelGroup.Delete("/cards/delete/:id", cardHandler.DeleteCard)  // DELETE /panel/cards/delete/{id} (JS/API için)

	// --- Editör Alt Operasyonları ---
	panelGroup.Post("/cards/:id/template", cardHandler.SelectTemplate)                    // Şablon seçimi
	panelGroup.Post("/cards/:id/sections/:index/move", cardHandler.MoveSection)           // Bölüm taşıma
	panelGroup.Post("/cards/:id/services", cardHandler.AddService)                        // Hizmet ekle
	panelGroup.Post("/cards/:id/services/:itemID", cardHandler.UpdateService)             // Hizmet güncelle
	panelGroup.Post("/cards/:id/services/:itemID/delete", cardHandler.RemoveService)      // Hizmet sil
	panelGroup.Post("/cards/:id/gallery", cardHandler.AddGalleryImage)                    // Görsel ekle
	panelGroup.Post("/cards/:id/gallery/:itemID/delete", cardHandler.RemoveGalleryImage)  // Görsel sil
	panelGroup.Post("/cards/:id/hours/:itemID", cardHandler.UpdateHour)                   // Saat aralığı
	panelGroup.Post("/cards/:id/hours/:itemID/toggle", cardHandler.ToggleHour)            // Kapalı/açık
	panelGroup.Post("/cards/:id/generate-bio", cardHandler.GenerateBio)                   // Bio üretimi (JSON)

	// --- Planlar ve Yükseltme ---
	panelGroup.Get("/plans", planHandler.ListPlans) // GET /panel/plans
	panelGroup.Post("/plans/upgrade", planHandler.Upgrade)
}
