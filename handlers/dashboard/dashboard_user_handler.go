package handlers // handlers/dashboard paketi

import (
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/queryparams"
	"digicard.pro/pkg/renderer"
	"digicard.pro/repositories"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler yönetici tarafı kullanıcı listesi ve durum yönetimi.
type UserHandler struct {
	planService services.IPlanService
	userRepo    repositories.IUserRepository
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		planService: services.NewPlanService(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// ListUsers tüm kullanıcıları sayfalayarak listeler.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListUsers: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.planService.GetUsersPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Kullanıcılar",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kullanıcılar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.User{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListUsers Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/users/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ToggleActive kullanıcının aktif/pasif durumunu çevirir. Yönetici
// kendi hesabını pasifleştiremez.
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}
	targetID := uint(id)

	if targetID == adminID {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kendi hesabınızı pasifleştiremezsiniz.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	user, err := h.userRepo.FindByID(c.UserContext(), targetID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kullanıcı bulunamadı.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	user.IsActive = !user.IsActive
	txCtx := models.ContextWithUserID(c.UserContext(), adminID)
	if err := h.userRepo.Save(txCtx, user); err != nil {
		configslog.Log.Error("Dashboard - ToggleActive Error", zap.Uint("targetID", targetID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kullanıcı durumu güncellenemedi.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kullanıcı durumu güncellendi.")
	}
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}
