package analysis

import (
	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/pkg/logger"
)

// DefaultMinConfidence is the threshold used when callers have no preference.
const DefaultMinConfidence = 0.6

type config struct {
	storeComposition string
	patternMode      matching.PatternMode
	caseSensitive    bool
	logoMaxWidth     float64
	logoMaxHeight    float64
	imageScaleMode   expression.ScaleMode
	log              logger.Logger
}

// Option applies a configuration option to the Analyzer.
type Option func(*config)

// WithStoreComposition sets the variable store composition, which is skipped
// during analysis and referenced by every expression.
func WithStoreComposition(name string) Option {
	return func(c *config) {
		if name != "" {
			c.storeComposition = name
		}
	}
}

// WithPatternMode selects how the pattern strategy derives lookup keys.
func WithPatternMode(mode matching.PatternMode) Option {
	return func(c *config) {
		c.patternMode = mode
	}
}

// WithCaseSensitive makes visibility expressions compare case-sensitively.
func WithCaseSensitive(enabled bool) Option {
	return func(c *config) {
		c.caseSensitive = enabled
	}
}

// WithLogoBounds sets the box logo layers are fitted into.
func WithLogoBounds(maxWidth, maxHeight float64) Option {
	return func(c *config) {
		if maxWidth > 0 && maxHeight > 0 {
			c.logoMaxWidth = maxWidth
			c.logoMaxHeight = maxHeight
		}
	}
}

// WithImageScaleMode sets how image layers are scaled to their composition.
func WithImageScaleMode(mode expression.ScaleMode) Option {
	return func(c *config) {
		c.imageScaleMode = mode
	}
}

// WithLogger sets the logger for analysis events.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
