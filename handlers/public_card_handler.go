package handlers

import (
	"errors"

	"digicard.pro/configs/configslog"
	"digicard.pro/pkg/cardview"
	"digicard.pro/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicCardHandler public kartvizit sayfası isteklerini yönetir.
type PublicCardHandler struct {
	cardService services.ICardService
	catalog     *cardview.Catalog
}

// NewPublicCardHandler yeni bir PublicCardHandler örneği oluşturur.
func NewPublicCardHandler() *PublicCardHandler {
	return &PublicCardHandler{
		cardService: services.NewCardService(),
		catalog:     cardview.NewCatalog(cardview.NewSectionRegistry()),
	}
}

// HandleCard gelen :slug parametresine göre kartvizit sayfasını gösterir.
// Eski paylaşım linkleri için sayısal ID de kabul edilir.
func (h *PublicCardHandler) HandleCard(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if len(slug) == 0 || len(slug) > 60 {
		configslog.SLog.Warnf("Geçersiz formatta kartvizit adresi denendi: %s", slug)
		return h.renderNotFound(c, "Geçersiz Adres")
	}

	ctx := c.UserContext()
	card, err := h.cardService.GetPublicCard(ctx, slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("HandleCard: GetPublicCard error", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	// Sayaç best-effort; render'ı asla bloklamaz.
	h.cardService.RecordView(card.ID)

	page := h.catalog.Render(card.TemplateID, card)
	return c.Render("public/card_view", fiber.Map{
		"Title": page.FullName,
		"Page":  page,
		"Slug":  card.Slug,
	}, "layouts/public_layout")
}

// renderNotFound standart 404 sayfasını render eder.
func (h *PublicCardHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *PublicCardHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
