package routes

import (
	"digicard.pro/configs"
	"digicard.pro/models"
	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAuthRoutes(app)      // /auth rotaları
	registerDashboardRoutes(app) // /dashboard rotaları
	registerPanelRoutes(app)     // /panel rotaları

	// --- Kök URL ("/") Yönlendirmesi ---
	app.Get("/", rootRedirector)

	// --- Public Kartvizit Rotası ---
	// Diğer özel gruplardan sonra gelmeli; /:slug her şeyi yakalar.
	registerPublicCardRoutes(app)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturum bilgilerini
// her istekte locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if role, ok := utils.GetUserRoleFromSession(sess); ok {
			c.Locals("userRole", role)
		}
		if name, ok := utils.GetUserNameFromSession(sess); ok {
			c.Locals("userName", name)
		}
		return c.Next()
	}
}

// rootRedirector oturum durumuna göre login, panel veya dashboard'a yönlendirir.
func rootRedirector(c *fiber.Ctx) error {
	userIDRaw := c.Locals("userID")
	if userIDRaw == nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	if role, ok := c.Locals("userRole").(string); ok && role == models.RoleAdmin {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// notFoundHandler eşleşmeyen tüm rotaları yakalar.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
