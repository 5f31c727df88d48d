// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownFormat indicates a format name other than "text" or "json".
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the report encoding.
type Format string

const (
	// FormatText renders tab-aligned sections.
	FormatText Format = "text"
	// FormatJSON renders one indented JSON document.
	FormatJSON Format = "json"
)

// ParseFormat resolves a user-supplied name, case-insensitively. The empty
// string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
}

// Option configures a rendered report.
type Option func(*options)

type options struct {
	runID uuid.UUID
	title string
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id uuid.UUID) Option {
	return func(o *options) { o.runID = id }
}

// WithTitle names the scenario the report belongs to.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}
	return o
}
