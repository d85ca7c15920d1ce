// Package logging hands out the leveled loggers shared by every camcaps package.
//
// Levels are taken from the PION_LOG_* environment variables, see
// github.com/pion/logging, until SetLevel is called.
package logging

import (
	"sync"

	"github.com/pion/logging"
)

type levelSetter interface {
	SetLevel(logging.LogLevel)
}

var (
	mu            sync.Mutex
	loggerFactory = logging.NewDefaultLoggerFactory()
	loggers       []levelSetter
)

// NewLogger creates a logger for scope.
func NewLogger(scope string) logging.LeveledLogger {
	mu.Lock()
	defer mu.Unlock()

	l := loggerFactory.NewLogger(scope)
	if s, ok := l.(levelSetter); ok {
		loggers = append(loggers, s)
	}
	return l
}

// SetLevel sets the level of every logger, including the ones already created.
// Scope levels from the environment are discarded.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()

	loggerFactory.DefaultLogLevel = level
	loggerFactory.ScopeLevels = make(map[string]logging.LogLevel)
	for _, l := range loggers {
		l.SetLevel(level)
	}
}
