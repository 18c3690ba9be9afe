package configs

import (
	"os"
	"time"

	"digicard.pro/configs/configsdatabase"
	"digicard.pro/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa (örn. production ortamı)
// sadece bilgi logu basılır, ortam değişkenleri olduğu gibi kullanılır.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}
}

// GetDB configsdatabase üzerindeki bağlantıyı döndürür (kısa yol).
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// AppListenAddr uygulamanın dinleyeceği adresi döndürür.
func AppListenAddr() string {
	if addr := os.Getenv("APP_LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":3000"
}

// SetupSession cookie tabanlı session store'u hazırlar.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:digicard_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   os.Getenv("APP_ENV") == "production",
	})
}
