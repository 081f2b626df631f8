package logging

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    = zap.NewNop()
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled.
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		logger = zap.NewNop()
		debugMode = false
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	debugMode = true

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open bubbletea log: %w", err)
	}

	cleanup = func() {
		_ = logger.Sync()
		tf.Close()
		f.Close()
		logger = zap.NewNop()
		debugMode = false
	}
	return cleanup, nil
}

// Use replaces the backing logger. Tests use it with zaptest/observer.
func Use(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool { return debugMode }

func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

func Debugf(format string, args ...any) { logger.Debug(fmt.Sprintf(format, args...)) }

func Infof(format string, args ...any) { logger.Info(fmt.Sprintf(format, args...)) }

func Warnf(format string, args ...any) { logger.Warn(fmt.Sprintf(format, args...)) }

func Errorf(format string, args ...any) { logger.Error(fmt.Sprintf(format, args...)) }
