package utils

import (
	"log"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger; use GetLogger.
var Logger *zap.Logger

// InitializeLogger builds the logger for ENV: JSON at info in production, colored
// console at debug elsewhere. LOG_LEVEL overrides either default.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl, err := zapcore.ParseLevel(config.AppConfig.LogLevel); err == nil && config.AppConfig.LogLevel != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build(zap.Fields(zap.String("env", config.GetEnv())))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = logger
}

// GetLogger returns the global logger, building it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

// SyncLogger flushes buffered entries; call it once on shutdown.
func SyncLogger() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
