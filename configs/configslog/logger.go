package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) global logger.
// SLog ise printf tarzı kullanım için sugared versiyonu.
// InitLogger çağrılana kadar no-op çalışırlar; testler ve yardımcı
// komutlar logger kurulumu olmadan da servis katmanını kullanabilir.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

// InitLogger global loggerları başlatır. APP_ENV=production ise JSON,
// aksi halde renkli console encoder kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesi anlamsız.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki log kayıtlarını flush eder. main içinde defer edilmeli.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
