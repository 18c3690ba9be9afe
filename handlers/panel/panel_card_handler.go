package handlers // handlers/panel paketi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"digicard.pro/configs/configslog"
	"digicard.pro/models"
	"digicard.pro/pkg/cardview"
	"digicard.pro/pkg/flashmessages"
	"digicard.pro/pkg/queryparams"
	"digicard.pro/pkg/renderer"
	"digicard.pro/services"
	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelCardHandler kullanıcının kendi kartvizitleri ve editörü için handler.
type PanelCardHandler struct {
	service    services.ICardService
	bioService services.IBioService
	catalog    *cardview.Catalog
}

// NewPanelCardHandler yeni bir PanelCardHandler örneği oluşturur.
func NewPanelCardHandler() *PanelCardHandler {
	return &PanelCardHandler{
		service:    services.NewCardService(),
		bioService: services.NewBioService(),
		catalog:    cardview.NewCatalog(cardview.NewSectionRegistry()),
	}
}

// resolveCardID :id parametresini okur; geçersizse listeye döndürür.
func resolveCardID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return 0, c.Redirect("/panel/cards")
	}
	return uint(id), nil
}

// ListCards kullanıcının kendi kartvizitlerini listeler.
func (h *PanelCardHandler) ListCards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum bilgileri geçersiz.")
		return c.Redirect("/auth/login")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListCards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetCardsForUserPaginated(c.UserContext(), userID, params)

	renderData := fiber.Map{
		"Title":  "Kartvizitlerim",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListCards Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/cards/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCard yeni kartvizit oluşturma formunu gösterir.
func (h *PanelCardHandler) ShowCreateCard(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)

	return renderer.Render(c, "panel/cards/create", "layouts/panel_layout", fiber.Map{
		"Title":    "Yeni Kartvizit Oluştur",
		"FormData": formData,
	})
}

// CreateCard varsayılanlarla yeni kartvizit oluşturur ve editöre yönlendirir.
func (h *PanelCardHandler) CreateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	var detail models.CardDetail
	if err := c.BodyParser(&detail); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	if err := services.ValidateCardDetail(detail); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, detail)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	card, err := h.service.CreateCard(c.UserContext(), userID, detail)
	if err != nil {
		configslog.Log.Error("Panel - CreateCard Error", zap.Uint("creatorUserID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, detail)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla oluşturuldu.")
	return c.Redirect(fmt.Sprintf("/panel/cards/update/%d", card.ID), fiber.StatusFound)
}

// ShowUpdateCard kartvizit editörünü gösterir: detay formu, şablon
// galerisi (kilit durumlarıyla), bölüm sırası ve içerik kalemleri.
func (h *PanelCardHandler) ShowUpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	card, err := h.service.GetCardByID(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Kartvizit bulunamadı veya bu kartviziti düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			errMsg = "Kartvizit bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/cards")
	}
	formData := flashmessages.GetFlashFormData(c)

	// Şablon galerisi: her şablon için kullanıcı kademesine göre kilit durumu.
	tier := models.SubscriptionFree
	if sess, sessErr := utils.SessionStart(c); sessErr == nil {
		if t, ok := utils.GetSubscriptionFromSession(sess); ok {
			tier = t
		}
	}
	type templateOption struct {
		ID        string
		IsPremium bool
		IsLocked  bool
		IsActive  bool
	}
	templates := make([]templateOption, 0, len(cardview.AllTemplateIDs))
	for _, tplID := range cardview.AllTemplateIDs {
		templates = append(templates, templateOption{
			ID:        tplID,
			IsPremium: cardview.IsPremiumTemplate(tplID),
			IsLocked:  cardview.IsLocked(tplID, tier),
			IsActive:  tplID == card.TemplateID,
		})
	}

	return renderer.Render(c, "panel/cards/update", "layouts/panel_layout", fiber.Map{
		"Title":     "Kartviziti Düzenle",
		"Card":      card,
		"Detail":    card.Detail,
		"Templates": templates,
		"Preview":   h.catalog.Render(card.TemplateID, card),
		"FormData":  formData,
	})
}

// UpdateCard kartvizit bilgilerini ve görünürlük ayarlarını günceller.
func (h *PanelCardHandler) UpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}
	redirectPathOnError := fmt.Sprintf("/panel/cards/update/%d", cardID)

	var detailUpdates models.CardDetail
	if err := c.BodyParser(&detailUpdates); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	isEnabledStr := c.FormValue("is_enabled", "false")
	showMapStr := c.FormValue("show_map", "false")
	settings := services.CardSettings{
		IsEnabled:    isEnabledStr == "true" || isEnabledStr == "on",
		PrimaryColor: c.FormValue("primary_color"),
		ShowMap:      showMapStr == "true" || showMapStr == "on",
		CustomMapURL: c.FormValue("custom_map_url"),
	}

	if err := services.ValidateCardDetail(detailUpdates); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, detailUpdates)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	err := h.service.UpdateCard(c.UserContext(), cardID, userID, detailUpdates, settings)
	if err != nil {
		errMsg := "Güncelleme hatası: " + err.Error()
		if errors.Is(err, services.ErrCardNotFound) || errors.Is(err, services.ErrCardForbidden) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
			return c.Redirect("/panel/cards")
		}
		configslog.Log.Error("Panel - UpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, detailUpdates)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// DeleteCard kartviziti ve tüm alt kayıtlarını siler.
func (h *PanelCardHandler) DeleteCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	err := h.service.DeleteCard(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Silme hatası: " + err.Error()
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			configslog.Log.Error("Panel - DeleteCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla silindi.")
	}
	return c.Redirect("/panel/cards", fiber.StatusSeeOther)
}

// --- Editör Alt Operasyonları ---

// editorRedirect editör sayfasına geri döner.
func editorRedirect(c *fiber.Ctx, cardID uint) error {
	return c.Redirect(fmt.Sprintf("/panel/cards/update/%d", cardID), fiber.StatusSeeOther)
}

// SelectTemplate şablon seçimini uygular; kilitli şablonda planlar
// sayfasına yönlendirir.
func (h *PanelCardHandler) SelectTemplate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	templateID := c.FormValue("template_id")
	err := h.service.SelectTemplate(c.UserContext(), cardID, userID, templateID)
	if err != nil {
		if errors.Is(err, services.ErrTemplateLocked) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu şablon premium aboneliği gerektirir. Planlara göz atın.")
			return c.Redirect("/panel/plans", fiber.StatusSeeOther)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şablon seçilemedi: "+err.Error())
		return editorRedirect(c, cardID)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şablon güncellendi.")
	return editorRedirect(c, cardID)
}

// MoveSection bölümü bir konum yukarı/aşağı taşır.
func (h *PanelCardHandler) MoveSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz bölüm konumu.")
		return editorRedirect(c, cardID)
	}
	direction := c.FormValue("direction")

	if err := h.service.MoveSection(c.UserContext(), cardID, userID, index, direction); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bölüm taşınamadı: "+err.Error())
	}
	return editorRedirect(c, cardID)
}

// AddService hizmet listesine yeni kalem ekler.
func (h *PanelCardHandler) AddService(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	item := models.CardService{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
	}
	if _, err := h.service.AddService(c.UserContext(), cardID, userID, item); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hizmet eklenemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet eklendi.")
	}
	return editorRedirect(c, cardID)
}

// UpdateService mevcut hizmet kalemini günceller.
func (h *PanelCardHandler) UpdateService(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	itemID := c.Params("itemID")
	item := models.CardService{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
	}
	if err := h.service.UpdateService(c.UserContext(), cardID, userID, itemID, item); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hizmet güncellenemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet güncellendi.")
	}
	return editorRedirect(c, cardID)
}

// RemoveService hizmet kalemini siler.
func (h *PanelCardHandler) RemoveService(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	if err := h.service.RemoveService(c.UserContext(), cardID, userID, c.Params("itemID")); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hizmet silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet silindi.")
	}
	return editorRedirect(c, cardID)
}

// AddGalleryImage galeriye görsel ekler.
func (h *PanelCardHandler) AddGalleryImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	if _, err := h.service.AddGalleryImage(c.UserContext(), cardID, userID, c.FormValue("image_url")); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel eklenemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Görsel eklendi.")
	}
	return editorRedirect(c, cardID)
}

// RemoveGalleryImage galeriden görsel siler.
func (h *PanelCardHandler) RemoveGalleryImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	if err := h.service.RemoveGalleryImage(c.UserContext(), cardID, userID, c.Params("itemID")); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Görsel silindi.")
	}
	return editorRedirect(c, cardID)
}

// UpdateHour bir günün saat aralığını günceller.
func (h *PanelCardHandler) UpdateHour(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	itemID := c.Params("itemID")
	open := c.FormValue("open")
	closeAt := c.FormValue("close")
	if err := h.service.SetHourRange(c.UserContext(), cardID, userID, itemID, open, closeAt); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Çalışma saati güncellenemedi: "+err.Error())
	}
	return editorRedirect(c, cardID)
}

// ToggleHour bir günün kapalı/açık durumunu çevirir.
func (h *PanelCardHandler) ToggleHour(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, redirErr := resolveCardID(c)
	if redirErr != nil || cardID == 0 {
		return redirErr
	}

	if err := h.service.ToggleHourClosed(c.UserContext(), cardID, userID, c.Params("itemID")); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Çalışma saati durumu değiştirilemedi: "+err.Error())
	}
	return editorRedirect(c, cardID)
}

// GenerateBio isim/meslek bilgisinden kısa tanıtım metni üretip JSON
// döner. Editör bu ucu fetch ile çağırır; hata editörü bloklamaz.
func (h *PanelCardHandler) GenerateBio(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}

	var req struct {
		FullName    string `json:"full_name" form:"full_name"`
		JobTitle    string `json:"job_title" form:"job_title"`
		CompanyName string `json:"company_name" form:"company_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	bio, err := h.bioService.GenerateBio(c.UserContext(), req.FullName, req.JobTitle, req.CompanyName)
	if err != nil {
		status := fiber.StatusServiceUnavailable
		if errors.Is(err, services.ErrBioInputMissing) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"bio": strings.TrimSpace(bio)})
}
