package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees JSON (console in debug) logs to stdout and to
// <LogPath>/<Name>.log, rotated by lumberjack.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0755); err != nil {
			return nil, err
		}
	}

	level := zap.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if app.Debug {
		level = zap.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if app.Debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(logFile(app)), level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller(), zap.Fields(zap.String("app", logName(app)))), nil
}

func logFile(app AppConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(app.LogPath, logName(app)+".log"),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}
}

func logName(app AppConfig) string {
	if app.Name == "" {
		return "hotel-booking"
	}
	return app.Name
}
