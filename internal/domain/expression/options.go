package expression

import (
	"fmt"
	"strings"
)

// Synthesis defaults.
const (
	DefaultStoreComposition = "Hard_Card"
	DefaultLogoMaxWidth     = 200.0
	DefaultLogoMaxHeight    = 200.0
)

// ScaleMode chooses how an image is scaled against its composition.
type ScaleMode string

// Scale modes.
const (
	ScaleFit   ScaleMode = "fit"
	ScaleCover ScaleMode = "cover"
)

// ParseScaleMode validates a scale mode name.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch m := ScaleMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ScaleFit, ScaleCover:
		return m, nil
	case "":
		return ScaleFit, nil
	default:
		return "", fmt.Errorf("%w: scale mode %q", ErrInvalidMode, s)
	}
}

// Comparison is a numeric comparison operator.
type Comparison string

// Comparison operators.
const (
	GreaterThan Comparison = "gt"
	LessThan    Comparison = "lt"
	Equal       Comparison = "eq"
)

// ParseComparison validates a comparison operator name.
func ParseComparison(s string) (Comparison, error) {
	switch c := Comparison(strings.ToLower(strings.TrimSpace(s))); c {
	case GreaterThan, LessThan, Equal:
		return c, nil
	default:
		return "", fmt.Errorf("%w: comparison %q", ErrInvalidMode, s)
	}
}

func (c Comparison) operator() string {
	switch c {
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	default:
		return "=="
	}
}

// Option applies a configuration option to the Synthesizer.
type Option func(*Synthesizer)

// WithStoreComposition sets the composition holding store layers.
func WithStoreComposition(name string) Option {
	return func(s *Synthesizer) {
		if name != "" {
			s.storeComposition = name
		}
	}
}

// WithCaseSensitive makes text visibility comparisons case-sensitive.
func WithCaseSensitive(enabled bool) Option {
	return func(s *Synthesizer) {
		s.caseSensitive = enabled
	}
}

// WithLogoBounds sets the box logos are fitted into by ForTarget.
func WithLogoBounds(maxWidth, maxHeight float64) Option {
	return func(s *Synthesizer) {
		if maxWidth > 0 && maxHeight > 0 {
			s.logoMaxWidth = maxWidth
			s.logoMaxHeight = maxHeight
		}
	}
}

// WithImageScaleMode sets how ForTarget scales image layers.
func WithImageScaleMode(mode ScaleMode) Option {
	return func(s *Synthesizer) {
		if mode == ScaleFit || mode == ScaleCover {
			s.imageScaleMode = mode
		}
	}
}
