// Package analysis turns a document's layers into expression recommendations.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/internal/domain/registry"
	"github.com/okian/hardcard/internal/domain/target"
	"github.com/okian/hardcard/internal/domain/types"
	"github.com/okian/hardcard/pkg/logger"
	"github.com/okian/hardcard/pkg/metrics"
)

// Source provides the compositions of a document.
type Source interface {
	Compositions() []types.Composition
}

// Analyzer runs Match, Resolve and synthesis over every layer of a source.
type Analyzer struct {
	engine           *matching.Engine
	synth            *expression.Synthesizer
	storeComposition string
	log              logger.Logger
}

// New builds an Analyzer over reg.
func New(reg *registry.Registry, opts ...Option) *Analyzer {
	cfg := config{
		storeComposition: expression.DefaultStoreComposition,
		patternMode:      matching.PatternLegacy,
		logoMaxWidth:     expression.DefaultLogoMaxWidth,
		logoMaxHeight:    expression.DefaultLogoMaxHeight,
		imageScaleMode:   expression.ScaleFit,
		log:              logger.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Analyzer{
		engine: matching.New(reg,
			matching.WithStoreComposition(cfg.storeComposition),
			matching.WithPatternMode(cfg.patternMode),
		),
		synth: expression.New(reg,
			expression.WithStoreComposition(cfg.storeComposition),
			expression.WithCaseSensitive(cfg.caseSensitive),
			expression.WithLogoBounds(cfg.logoMaxWidth, cfg.logoMaxHeight),
			expression.WithImageScaleMode(cfg.imageScaleMode),
		),
		storeComposition: cfg.storeComposition,
		log:              cfg.log,
	}
}

// Synthesizer exposes the synthesizer configured for this Analyzer.
func (a *Analyzer) Synthesizer() *expression.Synthesizer { return a.synth }

// Engine exposes the matching engine configured for this Analyzer.
func (a *Analyzer) Engine() *matching.Engine { return a.engine }

// Analyze recommends one expression per matched layer with confidence at
// least minConfidence. Layers that do not match, or whose target has no
// synthesis pattern, are skipped. An unknown variable aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, src Source, minConfidence float64) ([]types.ExpressionRecommendation, error) {
	start := time.Now()
	defer func() {
		metrics.RecordAnalysisLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	recs := []types.ExpressionRecommendation{}
	for _, comp := range src.Compositions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if comp.Name == a.storeComposition {
			continue
		}
		for _, l := range comp.Layers {
			rec, ok, err := a.recommend(ctx, comp.Name, l)
			if err != nil {
				return nil, err
			}
			if !ok || rec.Confidence < minConfidence {
				continue
			}
			metrics.RecordRecommendation(string(types.BucketFor(rec.Confidence)))
			recs = append(recs, rec)
		}
	}

	a.log.Debug(ctx, "analysis complete",
		logger.Int("recommendations", len(recs)),
		logger.Float64("min_confidence", minConfidence),
	)
	return recs, nil
}

func (a *Analyzer) recommend(ctx context.Context, comp string, l types.Layer) (types.ExpressionRecommendation, bool, error) {
	m, ok := a.engine.MatchLayer(comp, l.Name, l.Kind)
	if !ok {
		metrics.RecordLayerUnmatched()
		return types.ExpressionRecommendation{}, false, nil
	}
	metrics.RecordLayerMatch(string(m.Strategy))

	tgt := target.Resolve(l.Kind, m.Variable)
	text, err := a.synth.ForTarget(tgt, m.Variable)
	switch {
	case errors.Is(err, expression.ErrUnsupportedTarget):
		a.log.Debug(ctx, "no expression pattern for layer",
			logger.String("composition", comp),
			logger.String("layer", l.Name),
			logger.String("target", string(tgt)),
		)
		return types.ExpressionRecommendation{}, false, nil
	case err != nil:
		return types.ExpressionRecommendation{}, false, err
	}

	return types.ExpressionRecommendation{
		Composition: comp,
		Layer:       l.Name,
		LayerKind:   l.Kind,
		Variable:    m.Variable,
		Target:      tgt,
		Expression:  text,
		Confidence:  m.Confidence,
		Reason:      m.Reason,
	}, true, nil
}
