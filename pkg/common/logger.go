package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.Logger
	once   sync.Once
)

func getLogger() *zap.Logger {
	if logger == nil {
		initLogger()
	}
	return logger
}

func GetLogger() *zap.Logger {
	logger = getLogger()
	return logger.Named("default")
}

// GetLoggerWith returns the process logger named after a component, e.g.
// GetLoggerWith(LoggerNameIOTCore, zap.String(LoggerFieldIOTCategory, LoggerCategoryIOTReport)).
func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	logger = getLogger()
	return logger.Named(name).With(fields...)
}

// logsDir is IOT_LOG_DIR, or ./logs below the working directory.
func logsDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvKeyIOTLogDir)); dir != "" {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting current directory: %v", err)
	}
	return filepath.Join(cwd, "logs")
}

// fileLogLevel is IOT_LOG_LEVEL; unset or unknown levels mean info.
func fileLogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(os.Getenv(EnvKeyIOTLogLevel)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func jsonEncoder() zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderCfg)
}

func initLogger() {
	once.Do(func() {
		dir := logsDir()
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatalf("Error find/create logs directory: %v", err)
		}

		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "edms.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28,   // days
			Compress:   true, // gzip
		}

		fileCore := zapcore.NewCore(jsonEncoder(), zapcore.AddSync(logFile), fileLogLevel())

		if IsProduction() {
			logger = zap.New(fileCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
			return
		}

		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)
		logger = zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	})
}

// SetTestCaptureLogger sends every later log line, JSON encoded, to buf.
func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	_ = GetLogger()

	logger = zap.New(zapcore.NewCore(jsonEncoder(), zapcore.AddSync(buf), level))
}

func SetTestLoggerNop() {
	_ = GetLogger()

	logger = zap.NewNop()
}
