package service

import (
	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStoreComposition sets the variable store composition name.
func WithStoreComposition(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.storeComposition = name
		}
	}
}

// WithNamespace sets the project XML namespace.
func WithNamespace(uri string) Option {
	return func(s *Service) {
		if uri != "" {
			s.namespace = uri
		}
	}
}

// WithPatternMode selects the pattern strategy key derivation.
func WithPatternMode(mode matching.PatternMode) Option {
	return func(s *Service) {
		s.patternMode = mode
	}
}

// WithCaseSensitive makes visibility comparisons case-sensitive.
func WithCaseSensitive(enabled bool) Option {
	return func(s *Service) {
		s.caseSensitive = enabled
	}
}

// WithLogoBounds sets the box logos are fitted into.
func WithLogoBounds(maxWidth, maxHeight float64) Option {
	return func(s *Service) {
		if maxWidth > 0 && maxHeight > 0 {
			s.logoMaxWidth = maxWidth
			s.logoMaxHeight = maxHeight
		}
	}
}

// WithImageScaleMode sets how image layers are scaled.
func WithImageScaleMode(mode expression.ScaleMode) Option {
	return func(s *Service) {
		s.imageScaleMode = mode
	}
}

// WithMinConfidence sets the default analysis threshold.
func WithMinConfidence(min float64) Option {
	return func(s *Service) {
		if min >= 0 && min <= 1 {
			s.minConfidence = min
		}
	}
}

// WithWorkers sets the number of documents analyzed in parallel.
func WithWorkers(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workers = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
