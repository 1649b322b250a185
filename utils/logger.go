package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide sugared logger. It is a no-op until InitLogger runs.
var Logger = zap.NewNop().Sugar()

// LogFileName returns the daily log file name for a level, e.g. info-2024-05-01.log.
func LogFileName(level string, day time.Time) string {
	return fmt.Sprintf("%s-%s.log", level, day.Format("2006-01-02"))
}

// InitLogger initializes the loggers
func InitLogger(logsDir string, debug bool) error {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	today := time.Now()
	open := func(level string) (zapcore.WriteSyncer, error) {
		f, err := os.OpenFile(
			filepath.Join(logsDir, LogFileName(level, today)),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s log file: %v", level, err)
		}
		return zapcore.AddSync(f), nil
	}

	infoFile, err := open("info")
	if err != nil {
		return err
	}
	errorFile, err := open("error")
	if err != nil {
		return err
	}
	debugFile, err := open("debug")
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEnc := zapcore.NewJSONEncoder(encCfg)
	consoleEnc := zapcore.NewConsoleEncoder(encCfg)

	consoleLevel := zap.InfoLevel
	if debug {
		consoleLevel = zap.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(fileEnc, infoFile, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l == zapcore.InfoLevel || l == zapcore.WarnLevel
		})),
		zapcore.NewCore(fileEnc, errorFile, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel
		})),
		zapcore.NewCore(fileEnc, debugFile, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return debug && l == zapcore.DebugLevel
		})),
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stdout), consoleLevel),
	)

	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	zap.ReplaceGlobals(l)
	Logger = l.Sugar()
	return nil
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	_ = Logger.Sync()
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	Logger.Errorf(format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	Logger.Debugf(format, v...)
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	Logger.Infow("request",
		"method", method,
		"path", path,
		"ip", ip,
		"status", status,
		"duration", duration,
	)
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	Logger.Errorw("panic recovered", "error", err, "stack", string(stack))
}
