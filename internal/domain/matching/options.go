package matching

import (
	"fmt"
	"strings"
)

// DefaultStoreComposition is the variable store composition name.
const DefaultStoreComposition = "Hard_Card"

// PatternMode selects how the pattern strategy derives its registry key.
type PatternMode string

// Pattern modes.
const (
	// PatternLegacy lower-cases the first character of the raw layer name and
	// looks it up verbatim over the team, score, event and player tables.
	PatternLegacy PatternMode = "legacy"
	// PatternNormalized normalizes and collapses the layer name and also
	// consults the status, logo and image tables.
	PatternNormalized PatternMode = "normalized"
)

// ParsePatternMode validates a configured mode name.
func ParsePatternMode(s string) (PatternMode, error) {
	switch m := PatternMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", PatternLegacy:
		return PatternLegacy, nil
	case PatternNormalized:
		return m, nil
	default:
		return "", fmt.Errorf("unknown pattern mode %q", s)
	}
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithPatternMode sets the pattern strategy mode.
func WithPatternMode(mode PatternMode) Option {
	return func(e *Engine) {
		if mode != "" {
			e.mode = mode
		}
	}
}

// WithStoreComposition sets the composition whose layers are never matched.
func WithStoreComposition(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.storeComposition = name
		}
	}
}
