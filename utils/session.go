package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	sessionUserIDKey       = "user_id"
	sessionUserNameKey     = "user_name"
	sessionUserRoleKey     = "user_role"
	sessionSubscriptionKey = "user_subscription"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("session içinde kullanıcı ID yok")
)

// SessionStart locals'a konan store üzerinden mevcut isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetUserSession girişte kullanıcı bilgilerini session'a yazar.
func SetUserSession(c *fiber.Ctx, userID uint, name, role, subscription string) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserIDKey, userID)
	sess.Set(sessionUserNameKey, name)
	sess.Set(sessionUserRoleKey, role)
	sess.Set(sessionSubscriptionKey, subscription)
	return sess.Save()
}

// ClearUserSession çıkışta session'ı imha eder.
func ClearUserSession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// GetUserIDFromSession session'daki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(sessionUserIDKey).(uint)
	if !ok || id == 0 {
		return 0, ErrUserIDMissing
	}
	return id, nil
}

// GetUserNameFromSession session'daki kullanıcı adını döndürür.
func GetUserNameFromSession(sess *session.Session) (string, bool) {
	name, ok := sess.Get(sessionUserNameKey).(string)
	return name, ok
}

// GetUserRoleFromSession session'daki rolü döndürür.
func GetUserRoleFromSession(sess *session.Session) (string, bool) {
	role, ok := sess.Get(sessionUserRoleKey).(string)
	return role, ok
}

// GetSubscriptionFromSession session'daki abonelik kademesini döndürür.
func GetSubscriptionFromSession(sess *session.Session) (string, bool) {
	tier, ok := sess.Get(sessionSubscriptionKey).(string)
	return tier, ok
}
