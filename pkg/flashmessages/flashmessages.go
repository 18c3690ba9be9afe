// Package flashmessages session üzerinden tek seferlik bildirim ve form
// verisi taşımayı sağlar (redirect sonrası gösterim için).
package flashmessages

import (
	"encoding/json"

	"digicard.pro/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// SetFlashMessage verilen anahtara tek seferlik mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve session'dan siler.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	message, ok := sess.Get(key).(string)
	if !ok || message == "" {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return message
}

// SetFlashFormData hatalı form gönderiminde girilen veriyi saklar ki
// redirect sonrası form yeniden doldurulabilsin.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve siler.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	encoded, ok := sess.Get(flashFormDataKey).(string)
	if !ok || encoded == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil
	}
	return data
}
