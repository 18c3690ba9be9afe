package handlers // handlers/panel paketi

import (
	"errors"
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"
	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelPlanHandler plan listesi ve abonelik yükseltme akışı.
type PanelPlanHandler struct {
	planService services.IPlanService
}

func NewPanelPlanHandler() *PanelPlanHandler {
	return &PanelPlanHandler{planService: services.NewPlanService()}
}

// ListPlans yükseltme sayfasını gösterir.
func (h *PanelPlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planService.GetPlans(c.UserContext())

	renderData := fiber.Map{
		"Title": "Planlar",
		"Plans": plans,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Planlar yüklenirken bir hata oluştu."
		configslog.Log.Error("Panel - ListPlans Error", zap.Error(err))
	}
	if sess, sessErr := utils.SessionStart(c); sessErr == nil {
		if tier, ok := utils.GetSubscriptionFromSession(sess); ok {
			renderData["CurrentTier"] = tier
		}
	}
	return renderer.Render(c, "panel/plans/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// Upgrade seçilen plana geçişi uygular ve oturumdaki kademeyi tazeler.
func (h *PanelPlanHandler) Upgrade(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	planID := c.FormValue("plan_id")
	user, err := h.planService.UpgradeUser(c.UserContext(), userID, planID)
	if err != nil {
		errMsg := "Yükseltme başarısız: " + err.Error()
		if !errors.Is(err, services.ErrPlanNotFound) && !errors.Is(err, services.ErrUpgradeFreePlan) {
			configslog.Log.Error("Panel - Upgrade Error", zap.Uint("userID", userID), zap.String("planID", planID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/plans", fiber.StatusSeeOther)
	}

	// Kilit kontrolleri oturumdaki kademeden okunur; hemen güncelle.
	if err := utils.SetUserSession(c, user.ID, user.Name, user.Role, user.Subscription); err != nil {
		configslog.Log.Error("Panel - Upgrade: session güncellenemedi", zap.Uint("userID", userID), zap.Error(err))
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Aboneliğiniz yükseltildi. Tüm premium şablonlar açıldı.")
	return c.Redirect("/panel/plans", fiber.StatusFound)
}
