// Package logging provides categorized structured logging for mindwell,
// backed by zap. Before Initialize is called every logger is a no-op, so
// library code can log unconditionally.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log subsystem.
type Category string

const (
	CategoryBoot         Category = "boot"         // startup and configuration resolution
	CategoryModel        Category = "model"        // generative backend calls
	CategoryGate         Category = "gate"         // security pre-flight classification
	CategoryOrchestrator Category = "orchestrator" // capability orchestration and fallbacks
	CategorySession      Category = "session"      // application shell state
	CategoryStore        Category = "store"        // persistence records
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop().Sugar()
	loggers = make(map[Category]*Logger)
)

// Logger is a category-scoped printf-style logger.
type Logger struct {
	s *zap.SugaredLogger
}

// Initialize builds the process logger. debug enables Debug-level output with
// the development console encoder; otherwise Info and above in production
// format. Safe to call more than once; the last call wins.
func Initialize(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	base = logger.Sugar()
	loggers = make(map[Category]*Logger)
	return nil
}

// Get returns the logger for a category, creating it on first use.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := &Logger{s: base.With("category", string(category))}
	loggers[category] = l
	return l
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) { l.s.Debugf(format, args...) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) { l.s.Infof(format, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) { l.s.Warnf(format, args...) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...interface{}) { l.s.Errorf(format, args...) }

// Convenience wrappers for the hot categories, mirroring call sites like
// logging.Model("...") / logging.ModelDebug("...").

func Boot(format string, args ...interface{})     { Get(CategoryBoot).Info(format, args...) }
func BootWarn(format string, args ...interface{}) { Get(CategoryBoot).Warn(format, args...) }

func Model(format string, args ...interface{})      { Get(CategoryModel).Info(format, args...) }
func ModelDebug(format string, args ...interface{}) { Get(CategoryModel).Debug(format, args...) }
func ModelWarn(format string, args ...interface{})  { Get(CategoryModel).Warn(format, args...) }
func ModelError(format string, args ...interface{}) { Get(CategoryModel).Error(format, args...) }

func Gate(format string, args ...interface{})      { Get(CategoryGate).Info(format, args...) }
func GateDebug(format string, args ...interface{}) { Get(CategoryGate).Debug(format, args...) }
func GateWarn(format string, args ...interface{})  { Get(CategoryGate).Warn(format, args...) }

func Orchestrator(format string, args ...interface{}) {
	Get(CategoryOrchestrator).Info(format, args...)
}
func OrchestratorDebug(format string, args ...interface{}) {
	Get(CategoryOrchestrator).Debug(format, args...)
}
func OrchestratorWarn(format string, args ...interface{}) {
	Get(CategoryOrchestrator).Warn(format, args...)
}

func Session(format string, args ...interface{})      { Get(CategorySession).Info(format, args...) }
func SessionDebug(format string, args ...interface{}) { Get(CategorySession).Debug(format, args...) }

func Store(format string, args ...interface{})     { Get(CategoryStore).Info(format, args...) }
func StoreWarn(format string, args ...interface{}) { Get(CategoryStore).Warn(format, args...) }
