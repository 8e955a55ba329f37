package logging

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "NEVIWEB_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks NEVIWEB_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from NEVIWEB_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Explicitly set but unknown: be useful rather than silent
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so library callers never print unexpectedly
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Passing nil restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogLoginAttempt logs an outbound login request. The password is never logged.
func LogLoginAttempt(loginURL, username string) {
	Debug("Login request",
		zap.String("url", loginURL),
		zap.String("account", MaskAccount(username)),
	)
}

// LogLoginResult logs the classified outcome of a login request.
// status is 0 when no HTTP response was received.
func LogLoginResult(username string, status int, code string, result string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("account", MaskAccount(username)),
		zap.String("result", result),
		zap.Duration("elapsed", elapsed),
	}
	if status != 0 {
		fields = append(fields, zap.Int("status", status))
	}
	if code != "" {
		fields = append(fields, zap.String("error_code", code))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Warn("Login rejected", fields...)
		return
	}
	Info("Login accepted", fields...)
}

// LogFlowStep logs a wizard step transition.
func LogFlowStep(flow, step, outcome string, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.String("flow", flow),
		zap.String("step", step),
		zap.String("outcome", outcome),
	}, fields...)
	Debug("Flow step", all...)
}

// LogEntryChange logs a write to the entry store.
func LogEntryChange(action, entryID, title string) {
	Info("Entry "+action,
		zap.String("entry_id", entryID),
		zap.String("account", MaskAccount(title)),
	)
}

// MaskAccount hides most of an e-mail style account name for logs:
// "jane.doe@example.com" becomes "j***@example.com".
func MaskAccount(account string) string {
	if account == "" {
		return ""
	}
	local, domain, found := strings.Cut(account, "@")
	if local == "" {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(local)
	masked := string(first) + "***"
	if found {
		masked += "@" + domain
	}
	return masked
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
