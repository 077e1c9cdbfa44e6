package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	defLog = NewLoggerFromConfig(DefaultConfig())
)

// Default returns the package default logger.
func Default() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defLog
}

// SetDefault replaces the package default logger.
func SetDefault(logger zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defLog = logger
}

// Nop returns a disabled logger, useful for tests and silent library use.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
