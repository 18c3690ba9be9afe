// middlewares/auth_middleware.go
package middlewares

import (
	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/repositories"
	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware oturum açmış kullanıcı ister; yoksa login'e yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("AuthMiddleware: session başlatılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	if _, err := utils.GetUserIDFromSession(sess); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfayı görüntülemek için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

// GuestMiddleware yalnızca oturumu olmayan ziyaretçilere izin verir.
// Giriş yapmış kullanıcı login/register sayfalarına gelirse paneline döner.
func GuestMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Next()
	}
	if _, err := utils.GetUserIDFromSession(sess); err == nil {
		role, _ := utils.GetUserRoleFromSession(sess)
		if role == models.RoleAdmin {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
		return c.Redirect("/panel/home", fiber.StatusFound)
	}
	return c.Next()
}

// StatusMiddleware hesabın hala aktif olduğunu her istekte doğrular.
// Pasife alınan kullanıcının mevcut oturumu böylece anında düşer.
func StatusMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	user, err := repositories.NewUserRepository().FindByID(c.UserContext(), userID)
	if err != nil || !user.IsActive {
		configslog.SLog.Warnf("Pasif veya silinmiş hesapla istek: kullanıcı %d", userID)
		_ = utils.ClearUserSession(c)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hesabınız aktif değil.")
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

// RequireUser normal kullanıcı rolü ister; yöneticiyi kendi paneline yollar.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		role, ok := utils.GetUserRoleFromSession(sess)
		if !ok {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		if role == models.RoleAdmin {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdmin yönetici rolü ister; normal kullanıcıyı paneline yollar.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		role, ok := utils.GetUserRoleFromSession(sess)
		if !ok {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		if role != models.RoleAdmin {
			configslog.SLog.Warnf("Yetkisiz dashboard erişim denemesi: rol %s", role)
			return c.Redirect("/panel/home", fiber.StatusFound)
		}
		return c.Next()
	}
}
