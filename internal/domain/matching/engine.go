// Package matching classifies template layer names against the variable
// catalog.
//
// Three strategies run in order and the first success wins:
//  1. exact: the normalized layer name equals a variable's lower-cased name
//     or store name
//  2. pattern: category regex tables tested against the raw layer name
//  3. fuzzy: best Similarity over the whole catalog, above a fixed floor
//
// Every match carries a confidence and a human-readable reason. The engine
// is a best-effort classifier; callers threshold and review.
package matching

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okian/hardcard/internal/domain/registry"
	"github.com/okian/hardcard/internal/domain/types"
)

// fuzzyFloor is the similarity a fuzzy candidate must exceed.
const fuzzyFloor = 0.7

// Strategy names the matching strategy that produced a result.
type Strategy string

// Matching strategies in evaluation order.
const (
	StrategyExact   Strategy = "exact"
	StrategyPattern Strategy = "pattern"
	StrategyFuzzy   Strategy = "fuzzy"
)

// Match is a classified layer.
type Match struct {
	Variable   types.VariableDefinition
	Confidence float64
	Reason     string
	Strategy   Strategy
}

// Engine matches layer names to catalog variables. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	reg              *registry.Registry
	all              []types.VariableDefinition
	exact            map[string]types.VariableDefinition
	collapsed        map[string]types.VariableDefinition
	tables           []patternTable
	mode             PatternMode
	storeComposition string
}

// New builds an engine over reg.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		reg:              reg,
		mode:             PatternLegacy,
		storeComposition: DefaultStoreComposition,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.all = reg.All()
	e.exact = make(map[string]types.VariableDefinition, 2*len(e.all))
	e.collapsed = make(map[string]types.VariableDefinition, len(e.all))
	for _, v := range e.all {
		e.exact[strings.ToLower(v.Name)] = v
		e.exact[strings.ToLower(v.StoreName())] = v
		e.collapsed[strings.ToLower(v.Name)] = v
	}

	if e.mode == PatternNormalized {
		e.tables = normalizedTables()
	} else {
		e.tables = legacyTables()
	}
	return e
}

// Mode reports the configured pattern mode.
func (e *Engine) Mode() PatternMode { return e.mode }

// MatchLayer classifies a layer inside a composition. Layers of the variable
// store composition never match.
func (e *Engine) MatchLayer(composition, layerName string, kind types.LayerKind) (Match, bool) {
	if composition == e.storeComposition {
		return Match{}, false
	}
	return e.Match(layerName, kind)
}

// Match classifies a raw layer name. The layer kind does not influence the
// strategies; it is accepted so callers can pass layers through unchanged.
func (e *Engine) Match(layerName string, _ types.LayerKind) (Match, bool) {
	if m, ok := e.matchExact(layerName); ok {
		return m, true
	}
	if m, ok := e.matchPattern(layerName); ok {
		return m, true
	}
	return e.matchFuzzy(layerName)
}

func (e *Engine) matchExact(layerName string) (Match, bool) {
	v, ok := e.exact[Normalize(layerName)]
	if !ok {
		return Match{}, false
	}
	return Match{
		Variable:   v,
		Confidence: types.ConfidenceExact,
		Reason:     "exact match: " + v.Name,
		Strategy:   StrategyExact,
	}, true
}

func (e *Engine) matchPattern(layerName string) (Match, bool) {
	for _, t := range e.tables {
		for _, p := range t.patterns {
			if !p.re.MatchString(layerName) {
				continue
			}
			v, ok := e.patternCandidate(layerName)
			if !ok {
				return Match{}, false
			}
			return Match{
				Variable:   v,
				Confidence: p.confidence,
				Reason:     fmt.Sprintf("matched %s pattern: %s", t.label, p.source),
				Strategy:   StrategyPattern,
			}, true
		}
	}
	return Match{}, false
}

// patternCandidate derives the registry key for a pattern hit.
//
// Legacy mode lower-cases only the first character and looks the result up
// verbatim, which resolves camelCase names only. Normalized mode reuses
// Normalize, drops word separators and compares case-insensitively.
func (e *Engine) patternCandidate(layerName string) (types.VariableDefinition, bool) {
	if e.mode == PatternNormalized {
		v, ok := e.collapsed[collapse(Normalize(layerName))]
		return v, ok
	}
	return e.reg.ByName(lowerFirst(layerName))
}

func (e *Engine) matchFuzzy(layerName string) (Match, bool) {
	norm := Normalize(layerName)
	var (
		best      types.VariableDefinition
		bestScore float64
	)
	for _, v := range e.all {
		if s := Similarity(norm, strings.ToLower(v.Name)); s > bestScore {
			best, bestScore = v, s
		}
	}
	if bestScore <= fuzzyFloor {
		return Match{}, false
	}
	return Match{
		Variable:   best,
		Confidence: fuzzyConfidence(bestScore),
		Reason:     fmt.Sprintf("fuzzy match: %s (similarity %.2f)", best.Name, bestScore),
		Strategy:   StrategyFuzzy,
	}, true
}

func fuzzyConfidence(score float64) float64 {
	switch {
	case score >= 0.95:
		return types.ConfidenceHigh
	case score >= 0.85:
		return types.ConfidenceGood
	case score >= 0.75:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
