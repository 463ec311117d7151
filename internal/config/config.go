// Package config defines toolkit configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// StoreComposition names the variable store composition.
	StoreComposition string `koanf:"store_composition"`

	// Namespace is the project XML namespace tried before bare elements.
	Namespace string `koanf:"namespace"`

	// MinConfidence is the default analysis threshold.
	MinConfidence float64 `koanf:"min_confidence"`

	// PatternMode selects legacy or normalized pattern key derivation.
	PatternMode string `koanf:"pattern_mode"`

	// CaseSensitive makes visibility comparisons case-sensitive.
	CaseSensitive bool `koanf:"case_sensitive"`

	// LogoMaxWidth and LogoMaxHeight bound logo scale-to-fit.
	LogoMaxWidth  float64 `koanf:"logo_max_width"`
	LogoMaxHeight float64 `koanf:"logo_max_height"`

	// ImageScaleMode is fit or cover.
	ImageScaleMode string `koanf:"image_scale_mode"`

	// Workers bounds parallel document processing.
	Workers int `koanf:"workers"`

	// MaxDocumentBytes caps HTTP request bodies.
	MaxDocumentBytes int64 `koanf:"max_document_bytes"`

	// Metrics naming and collection.
	MetricsEnabled   bool              `koanf:"metrics_enabled"`
	MetricsNamespace string            `koanf:"metrics_namespace"`
	MetricsSubsystem string            `koanf:"metrics_subsystem"`
	MetricsPrefix    string            `koanf:"metrics_prefix"`
	MetricsBuckets   []float64         `koanf:"metrics_buckets"`
	MetricsLabels    map[string]string `koanf:"metrics_labels"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		StoreComposition: "Hard_Card",
		Namespace:        "http://www.adobe.com/products/aftereffects/project",
		MinConfidence:    0.6,
		PatternMode:      "legacy",
		CaseSensitive:    false,
		LogoMaxWidth:     200,
		LogoMaxHeight:    200,
		ImageScaleMode:   "fit",
		Workers:          runtime.NumCPU(),
		MaxDocumentBytes: 32 << 20,
		MetricsEnabled:   true,
		MetricsNamespace: "hardcard",
		MetricsSubsystem: "toolkit",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.StoreComposition == "":
		return fmt.Errorf("%w: store_composition must not be empty", ErrInvalidConfig)
	case c.MinConfidence < 0 || c.MinConfidence > 1:
		return fmt.Errorf("%w: min_confidence %v outside [0, 1]", ErrInvalidConfig, c.MinConfidence)
	case c.LogoMaxWidth <= 0 || c.LogoMaxHeight <= 0:
		return fmt.Errorf("%w: logo bounds must be positive", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	case c.MaxDocumentBytes < 1:
		return fmt.Errorf("%w: max_document_bytes must be positive", ErrInvalidConfig)
	case c.MetricsEnabled && c.MetricsNamespace == "":
		return fmt.Errorf("%w: metrics_namespace must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.PatternMode) {
	case "legacy", "normalized":
	default:
		return fmt.Errorf("%w: %w: pattern_mode %q", ErrInvalidConfig, ErrUnknownMode, c.PatternMode)
	}
	switch strings.ToLower(c.ImageScaleMode) {
	case "fit", "cover":
	default:
		return fmt.Errorf("%w: %w: image_scale_mode %q", ErrInvalidConfig, ErrUnknownMode, c.ImageScaleMode)
	}
	for i := 1; i < len(c.MetricsBuckets); i++ {
		if c.MetricsBuckets[i] <= c.MetricsBuckets[i-1] {
			return fmt.Errorf("%w: metrics_buckets must be strictly increasing", ErrInvalidConfig)
		}
	}
	return nil
}
