package handlers // handlers/auth paketi

import (
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"
	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş, kayıt ve profil işlemleri.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Giriş Yap",
	}, http.StatusOK)
}

// Login kimlik doğrular, oturumu kurar ve role göre yönlendirir.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	if err := utils.SetUserSession(c, user.ID, user.Name, user.Role, user.Subscription); err != nil {
		configslog.Log.Error("Login: session kurulamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı, lütfen tekrar deneyin.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID %d)", user.Email, user.ID)
	if user.IsAdmin() {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// ShowRegister kayıt formunu gösterir.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)
	return renderer.Render(c, "auth/register", "layouts/auth_layout", fiber.Map{
		"Title":    "Kayıt Ol",
		"FormData": formData,
	}, http.StatusOK)
}

// Register yeni kullanıcı oluşturur ve doğrudan giriş yapar.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Register(c.UserContext(), name, email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"name": name, "email": email})
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	if err := utils.SetUserSession(c, user.ID, user.Name, user.Role, user.Subscription); err != nil {
		configslog.Log.Error("Register: session kurulamadı", zap.Uint("userID", user.ID), zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hesabınız oluşturuldu. Hoş geldiniz!")
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.ClearUserSession(c); err != nil {
		configslog.Log.Warn("Logout: session temizlenemedi", zap.Error(err))
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Profile kullanıcının profil sayfasını gösterir.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Profile: kullanıcı alınamadı", zap.Uint("userID", userID), zap.Error(err))
		_ = utils.ClearUserSession(c)
		return c.Redirect("/auth/login")
	}

	layout := "layouts/panel_layout"
	if user.Role == models.RoleAdmin {
		layout = "layouts/dashboard_layout"
	}
	return renderer.Render(c, "auth/profile", layout, fiber.Map{
		"Title": "Profilim",
		"User":  user,
	}, http.StatusOK)
}

// UpdatePassword profil sayfasından şifre değiştirir.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	current := c.FormValue("current_password")
	newPass := c.FormValue("new_password")
	confirm := c.FormValue("confirm_password")
	if newPass != confirm {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yeni şifreler eşleşmiyor.")
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	if err := h.service.UpdatePassword(c.UserContext(), userID, current, newPass); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz güncellendi.")
	return c.Redirect("/auth/profile", fiber.StatusFound)
}
