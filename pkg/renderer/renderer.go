// Package renderer view render çağrılarını tek noktada toplar: flash
// mesajları ve oturum bilgileri her sayfaya otomatik eklenir.
package renderer

import (
	"net/http"

	"digicard.pro/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View data anahtarları.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// Render flash mesajlarını ve oturum locals'larını ekleyerek view render eder.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	if userName, ok := c.Locals("userName").(string); ok {
		data["SessionUserName"] = userName
	}
	if role, ok := c.Locals("userRole").(string); ok {
		data["SessionUserRole"] = role
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
