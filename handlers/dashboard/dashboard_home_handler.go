package handlers // handlers/dashboard paketi

import (
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler yönetici ana sayfası.
type HomeHandler struct {
	cardService services.ICardService
	planService services.IPlanService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		cardService: services.NewCardService(),
		planService: services.NewPlanService(),
	}
}

// HomePage sistem geneli özet sayımları gösterir.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	totalCards, totalViews, err := h.cardService.GetCardStats(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Home: kart istatistikleri alınamadı", zap.Error(err))
	}
	userCount, err := h.planService.GetUserCount(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Home: kullanıcı sayısı alınamadı", zap.Error(err))
	}

	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", fiber.Map{
		"Title":      "Yönetim Paneli",
		"TotalCards": totalCards,
		"TotalViews": totalViews,
		"UserCount":  userCount,
	}, http.StatusOK)
}
