package handlers // handlers/dashboard paketi

import (
	"errors"
	"net/http"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/queryparams"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler yönetici tarafı kartvizit görünümü. Yönetici tüm
// kartları listeler ve silebilir; içerik düzenleme sahibine bırakılır.
type CardHandler struct {
	service services.ICardService
}

func NewCardHandler() *CardHandler {
	return &CardHandler{service: services.NewCardService()}
}

// ListCards sistemdeki tüm kartvizitleri listeler.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListCards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllCardsPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Tüm Kartvizitler",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListCards Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/cards/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// DeleteCard herhangi bir kartviziti siler (yönetici yetkisi serviste doğrulanır).
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok || adminID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/cards", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteCard(c.UserContext(), uint(id), adminID); err != nil {
		if !errors.Is(err, services.ErrCardNotFound) {
			configslog.Log.Error("Dashboard - DeleteCard Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silme hatası: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit silindi.")
	}
	return c.Redirect("/dashboard/cards", fiber.StatusSeeOther)
}
