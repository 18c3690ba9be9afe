package handlers // handlers/panel paketi

import (
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler kullanıcı paneli ana sayfası.
type PanelHomeHandler struct {
	cardService services.ICardService
}

func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{cardService: services.NewCardService()}
}

// PanelHomeHandler kullanıcıya ait özet sayımları gösterir.
func (h *PanelHomeHandler) PanelHomeHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardCount, err := h.cardService.GetCardCountForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - Home: kart sayısı alınamadı", zap.Uint("userID", userID), zap.Error(err))
		cardCount = 0
	}

	return renderer.Render(c, "panel/home", "layouts/panel_layout", fiber.Map{
		"Title":     "Panel",
		"CardCount": cardCount,
	}, http.StatusOK)
}
