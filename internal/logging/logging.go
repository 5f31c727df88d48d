// SPDX-License-Identifier: MIT

// Package logging builds the command's logrus logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrUnknownFormat indicates a log format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to out at the given level ("debug", "info",
// ...) in the given format ("text" or "json"; empty means text).
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: %q: %w", format, ErrUnknownFormat)
	}

	return log, nil
}

// FieldHook stamps one field onto every entry, e.g. the run identifier.
// The value may be replaced while the logger is in use.
type FieldHook struct {
	mu    sync.RWMutex
	field string
	value any
}

// NewFieldHook returns a hook setting field to value on all levels.
func NewFieldHook(field string, value any) *FieldHook {
	return &FieldHook{field: field, value: value}
}

// SetValue replaces the value stamped on subsequent entries.
func (h *FieldHook) SetValue(value any) {
	h.mu.Lock()
	h.value = value
	h.mu.Unlock()
}

// Levels implements logrus.Hook.
func (h *FieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. Fields already set on the entry win.
func (h *FieldHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := entry.Data[h.field]; !ok {
		entry.Data[h.field] = h.value
	}
	return nil
}
