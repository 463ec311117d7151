package analysis

import (
	"slices"
	"unicode/utf8"

	"github.com/okian/hardcard/internal/domain/types"
)

// exportExpressionLimit is the number of runes of expression text kept by
// Exportable.
const exportExpressionLimit = 100

// FilterOptions narrows a recommendation list. Zero values do not filter.
type FilterOptions struct {
	MinConfidence *float64
	LayerKinds    []types.LayerKind
	Compositions  []string
}

// Filter returns the recommendations matching every set option, in order.
func Filter(recs []types.ExpressionRecommendation, opts FilterOptions) []types.ExpressionRecommendation {
	out := make([]types.ExpressionRecommendation, 0, len(recs))
	for _, r := range recs {
		if opts.MinConfidence != nil && r.Confidence < *opts.MinConfidence {
			continue
		}
		if len(opts.LayerKinds) > 0 && !slices.Contains(opts.LayerKinds, r.LayerKind) {
			continue
		}
		if len(opts.Compositions) > 0 && !slices.Contains(opts.Compositions, r.Composition) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GroupByBucket groups recommendations by confidence bucket, keeping order
// within each bucket.
func GroupByBucket(recs []types.ExpressionRecommendation) map[types.Bucket][]types.ExpressionRecommendation {
	groups := make(map[types.Bucket][]types.ExpressionRecommendation)
	for _, r := range recs {
		b := types.BucketFor(r.Confidence)
		groups[b] = append(groups[b], r)
	}
	return groups
}

// Record is the flat, display-oriented form of a recommendation.
type Record struct {
	Composition string  `json:"composition" yaml:"composition"`
	Layer       string  `json:"layer" yaml:"layer"`
	LayerKind   string  `json:"layer_kind" yaml:"layer_kind"`
	Variable    string  `json:"variable" yaml:"variable"`
	Category    string  `json:"category" yaml:"category"`
	Target      string  `json:"target" yaml:"target"`
	Expression  string  `json:"expression" yaml:"expression"`
	Confidence  float64 `json:"confidence" yaml:"confidence"`
	Bucket      string  `json:"bucket" yaml:"bucket"`
	Reason      string  `json:"reason" yaml:"reason"`
}

// Exportable flattens recommendations for display, truncating expression
// text to 100 characters followed by "...".
func Exportable(recs []types.ExpressionRecommendation) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, Record{
			Composition: r.Composition,
			Layer:       r.Layer,
			LayerKind:   string(r.LayerKind),
			Variable:    r.Variable.Name,
			Category:    string(r.Variable.Category),
			Target:      string(r.Target),
			Expression:  truncate(r.Expression, exportExpressionLimit),
			Confidence:  r.Confidence,
			Bucket:      string(types.BucketFor(r.Confidence)),
			Reason:      r.Reason,
		})
	}
	return out
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
