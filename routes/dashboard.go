package routes

import (
	handlers "digicard.pro/handlers/dashboard" // Dashboard handler'ları
	"digicard.pro/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları ve middleware'leri tanımlar.
// Sadece yönetici rolündeki kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	userHandler := handlers.NewUserHandler()
	planHandler := handlers.NewPlanHandler()
	cardHandler := handlers.NewCardHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,   // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware, // 2. Hesap aktif mi?
		middlewares.RequireAdmin(),   // 3. Yönetici mi?
	)

	// --- Ana Sayfa ---
	dashboardGroup.Get("/home", homeHandler.HomePage) // GET /dashboard/home

	// --- Kullanıcı Yönetimi ---
	dashboardGroup.Get("/users", userHandler.ListUsers)                      // GET /dashboard/users
	dashboardGroup.Post("/users/toggle-active/:id", userHandler.ToggleActive) // POST /dashboard/users/toggle-active/{id}

	// --- Plan Yönetimi ---
	dashboardGroup.Get("/plans", planHandler.ListPlans)                // GET /dashboard/plans
	dashboardGroup.Post("/plans/create", planHandler.CreatePlan)       // POST /dashboard/plans/create
	dashboardGroup.Post("/plans/update/:id", planHandler.UpdatePlan)   // POST /dashboard/plans/update/{id}
	dashboardGroup.Post("/plans/delete/:id", planHandler.DeletePlan)   // POST /dashboard/plans/delete/{id}
	dashboardGroup.Delete("/plans/delete/:id", planHandler.DeletePlan) // DELETE /dashboard/plans/delete/{id}

	// --- Kartvizit Yönetimi (Admin Görünümü) ---
	dashboardGroup.Get("/cards", cardHandler.ListCards)                // GET /dashboard/cards
	dashboardGroup.Post("/cards/delete/:id", cardHandler.DeleteCard)   // POST /dashboard/cards/delete/{id}
	dashboardGroup.Delete("/cards/delete/:id", cardHandler.DeleteCard) // DELETE /dashboard/cards/delete/{id}
}
