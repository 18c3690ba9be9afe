package handlers // handlers/dashboard paketi

import (
	"net/http"
	"strconv"
	"strings"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/models/helpers"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PlanHandler yönetici tarafı plan tanımları.
type PlanHandler struct {
	service services.IPlanService
}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{service: services.NewPlanService()}
}

// parsePlanForm ortak form alanlarını okur. Özellikler satır satır girilir.
func parsePlanForm(c *fiber.Ctx) models.Plan {
	price, _ := strconv.Atoi(c.FormValue("price", "0"))
	popularStr := c.FormValue("is_popular", "false")

	var features helpers.StringArray
	for _, line := range strings.Split(c.FormValue("features"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			features = append(features, line)
		}
	}

	return models.Plan{
		PlanID:    strings.TrimSpace(c.FormValue("plan_id")),
		Name:      strings.TrimSpace(c.FormValue("name")),
		Price:     price,
		Interval:  c.FormValue("interval"),
		Features:  features,
		IsPopular: popularStr == "true" || popularStr == "on",
	}
}

// ListPlans tüm plan tanımlarını gösterir.
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.service.GetPlans(c.UserContext())

	renderData := fiber.Map{
		"Title": "Plan Yönetimi",
		"Plans": plans,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Planlar yüklenirken bir hata oluştu."
		configslog.Log.Error("Dashboard - ListPlans Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/plans/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// CreatePlan yeni plan tanımı ekler.
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userID").(uint)

	plan := parsePlanForm(c)
	if err := h.service.CreatePlan(c.UserContext(), adminID, plan); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Plan oluşturulamadı: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Plan oluşturuldu.")
	}
	return c.Redirect("/dashboard/plans", fiber.StatusSeeOther)
}

// UpdatePlan mevcut plan tanımını günceller.
func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/plans", fiber.StatusSeeOther)
	}

	plan := parsePlanForm(c)
	if err := h.service.UpdatePlan(c.UserContext(), adminID, uint(id), plan); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Plan güncellenemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Plan güncellendi.")
	}
	return c.Redirect("/dashboard/plans", fiber.StatusSeeOther)
}

// DeletePlan plan tanımını siler. Mevcut abonelikler etkilenmez.
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/plans", fiber.StatusSeeOther)
	}

	if err := h.service.DeletePlan(c.UserContext(), adminID, uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Plan silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Plan silindi.")
	}
	return c.Redirect("/dashboard/plans", fiber.StatusSeeOther)
}
