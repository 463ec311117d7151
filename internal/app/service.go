// Package service provides the core toolkit service used by the CLI and
// the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/okian/hardcard/internal/adapters/batch"
	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/analysis"
	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/internal/domain/registry"
	"github.com/okian/hardcard/internal/domain/types"
	"github.com/okian/hardcard/pkg/logger"
)

// FileAnalysis is the analysis of one document in a batch.
type FileAnalysis struct {
	Path            string                           `json:"path" yaml:"path"`
	Recommendations []types.ExpressionRecommendation `json:"recommendations" yaml:"recommendations"`
	Error           string                           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Service wires the registry, analyzer, document writer and batch pool.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry *registry.Registry
	analyzer *analysis.Analyzer
	pool     *batch.Pool

	// Configuration
	storeComposition string
	namespace        string
	patternMode      matching.PatternMode
	caseSensitive    bool
	logoMaxWidth     float64
	logoMaxHeight    float64
	imageScaleMode   expression.ScaleMode
	minConfidence    float64
	workers          int

	// State
	started bool

	// Counters for GetStats
	documentsAnalyzed  atomic.Int64
	documentsApplied   atomic.Int64
	recommendations    atomic.Int64
	expressionsWritten atomic.Int64
	applyFailures      atomic.Int64

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeComposition: expression.DefaultStoreComposition,
		namespace:        document.DefaultNamespace,
		patternMode:      matching.PatternLegacy,
		logoMaxWidth:     expression.DefaultLogoMaxWidth,
		logoMaxHeight:    expression.DefaultLogoMaxHeight,
		imageScaleMode:   expression.ScaleFit,
		minConfidence:    analysis.DefaultMinConfidence,
		workers:          0, // batch pool picks NumCPU
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.registry = registry.Default()
	s.analyzer = analysis.New(s.registry,
		analysis.WithStoreComposition(s.storeComposition),
		analysis.WithPatternMode(s.patternMode),
		analysis.WithCaseSensitive(s.caseSensitive),
		analysis.WithLogoBounds(s.logoMaxWidth, s.logoMaxHeight),
		analysis.WithImageScaleMode(s.imageScaleMode),
		analysis.WithLogger(s.logger.Named("analysis")),
	)
	s.pool = batch.NewPool(s.workers,
		batch.WithName("analyze"),
		batch.WithLogger(s.logger),
	)

	s.started = true
	s.logger.Info(ctx, "hardcard service started",
		logger.Int("variables", s.registry.Len()),
		logger.String("storeComposition", s.storeComposition),
		logger.String("patternMode", string(s.patternMode)),
		logger.Int("workers", s.pool.Workers()),
	)

	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "hardcard service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// MinConfidence returns the configured default analysis threshold.
func (s *Service) MinConfidence() float64 { return s.minConfidence }

// Variables lists catalog entries, optionally narrowed by category and data type.
func (s *Service) Variables(category types.Category, dataType types.DataType) []types.VariableDefinition {
	reg := registry.Default()
	var out []types.VariableDefinition
	for _, v := range reg.All() {
		if category != "" && v.Category != category {
			continue
		}
		if dataType != "" && v.DataType != dataType {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SearchVariables ranks catalog entries by fuzzy similarity to term.
func (s *Service) SearchVariables(term string, limit int) []types.VariableDefinition {
	reg := registry.Default()
	var out []types.VariableDefinition
	for _, name := range reg.Suggest(term, limit) {
		if v, ok := reg.ByName(name); ok {
			out = append(out, v)
		}
	}
	return out
}

// Validate runs the expression syntax check.
func (s *Service) Validate(text string) []string {
	return expression.Validate(text)
}

// OpenDocument opens a project document with the configured namespace.
func (s *Service) OpenDocument(ctx context.Context, path string) (*document.Writer, error) {
	return document.Open(path, s.documentOptions()...)
}

// ParseDocument parses project document bytes with the configured namespace.
func (s *Service) ParseDocument(ctx context.Context, data []byte) (*document.Writer, error) {
	return document.Parse(data, s.documentOptions()...)
}

func (s *Service) documentOptions() []document.Option {
	l := s.logger
	if l == nil {
		l = logger.Nop()
	}
	return []document.Option{
		document.WithNamespace(s.namespace),
		document.WithLogger(l.Named("document")),
	}
}

// Analyze recommends expressions for one document.
func (s *Service) Analyze(ctx context.Context, src analysis.Source, minConfidence float64) ([]types.ExpressionRecommendation, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	recs, err := s.analyzer.Analyze(ctx, src, minConfidence)
	if err != nil {
		return nil, err
	}
	s.documentsAnalyzed.Add(1)
	s.recommendations.Add(int64(len(recs)))
	return recs, nil
}

// AnalyzeFiles analyzes many documents in parallel. A file that cannot be
// opened or analyzed is reported in its own entry.
func (s *Service) AnalyzeFiles(ctx context.Context, paths []string, minConfidence float64) ([]FileAnalysis, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	results := batch.Run(ctx, s.pool, paths, func(ctx context.Context, path string) ([]types.ExpressionRecommendation, error) {
		w, err := s.OpenDocument(ctx, path)
		if err != nil {
			return nil, err
		}
		return s.Analyze(ctx, w, minConfidence)
	})

	out := make([]FileAnalysis, len(results))
	for i, r := range results {
		out[i] = FileAnalysis{Path: r.Item, Recommendations: r.Value}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out, nil
}

// Apply writes a plan of expressions into a document.
func (s *Service) Apply(ctx context.Context, w *document.Writer, items []types.LayerExpression, validate, stopOnError bool) (document.BatchResult, error) {
	if err := s.ready(); err != nil {
		return document.BatchResult{}, err
	}
	res := w.AddMultiple(ctx, items, validate, stopOnError)
	s.documentsApplied.Add(1)
	s.expressionsWritten.Add(int64(len(res.Added)))
	s.applyFailures.Add(int64(len(res.Failures)))
	s.logger.Info(ctx, "plan applied",
		logger.String("session", w.Session()),
		logger.Int("added", len(res.Added)),
		logger.Int("failed", len(res.Failures)),
		logger.Int("skipped", res.Skipped),
	)
	return res, nil
}

// AutoApply analyzes a document and writes every recommendation.
func (s *Service) AutoApply(ctx context.Context, w *document.Writer, minConfidence float64, validate, stopOnError bool) (document.BatchResult, []types.ExpressionRecommendation, error) {
	recs, err := s.Analyze(ctx, w, minConfidence)
	if err != nil {
		return document.BatchResult{}, nil, fmt.Errorf("analyze: %w", err)
	}
	items := make([]types.LayerExpression, 0, len(recs))
	for _, r := range recs {
		items = append(items, r.AsLayerExpression())
	}
	res, err := s.Apply(ctx, w, items, validate, stopOnError)
	return res, recs, err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":            s.started,
		"storeComposition":   s.storeComposition,
		"patternMode":        string(s.patternMode),
		"minConfidence":      s.minConfidence,
		"variables":          registry.Default().Len(),
		"documentsAnalyzed":  s.documentsAnalyzed.Load(),
		"documentsApplied":   s.documentsApplied.Load(),
		"recommendations":    s.recommendations.Load(),
		"expressionsWritten": s.expressionsWritten.Load(),
		"applyFailures":      s.applyFailures.Load(),
	}
	if s.started {
		stats["workers"] = s.pool.Workers()
	}
	return stats
}
