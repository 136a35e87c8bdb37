package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log logger terstruktur, SLog versi sugared untuk pesan format-printf.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger menyiapkan logger global. APP_ENV=production memakai encoder
// JSON, selain itu console supaya enak dibaca saat pengembangan.
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
		panic("logger tidak dapat diinisialisasi: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger mem-flush buffer logger; dipanggil lewat defer di main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
