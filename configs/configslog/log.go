package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared variant of the same core.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger sets up the global loggers. APP_ENV=production switches to the
// JSON production config, anything else uses the development console encoder.
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
		panic("logger setup failed: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call via defer from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
