package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/analysis"
	"github.com/okian/hardcard/internal/domain/types"
)

// AnalyzeDependencies defines the document analysis used by the handler.
type AnalyzeDependencies interface {
	ParseDocument(ctx context.Context, data []byte) (*document.Writer, error)
	Analyze(ctx context.Context, src analysis.Source, minConfidence float64) ([]types.ExpressionRecommendation, error)
	MinConfidence() float64
}

// AnalyzeHandler recommends expressions for an uploaded document.
type AnalyzeHandler struct {
	deps     AnalyzeDependencies
	maxBytes int64
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps AnalyzeDependencies, maxBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps, maxBytes: maxBytes}
}

type analyzeResponse struct {
	Count           int                              `json:"count"`
	Buckets         map[types.Bucket]int             `json:"buckets"`
	Recommendations []types.ExpressionRecommendation `json:"recommendations"`
}

// HandlePostAnalyze handles POST /analyze?min_confidence=&kind=&comp= with
// the project XML as body. kind and comp may repeat.
func (h *AnalyzeHandler) HandlePostAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_analyze"
	if r.Method != http.MethodPost {
		writeFailure(w, NewKind(op, ErrMethod))
		return
	}

	q := r.URL.Query()
	minConf := h.deps.MinConfidence()
	if s := q.Get("min_confidence"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			writeFailure(w, WrapKind(op, ErrBadRequest, fmt.Errorf("min_confidence must be within [0,1], got %q", s)))
			return
		}
		minConf = v
	}

	body, err := readBody(w, r, op, h.maxBytes)
	if err != nil {
		writeFailure(w, err)
		return
	}
	doc, err := h.deps.ParseDocument(r.Context(), body)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	recs, err := h.deps.Analyze(r.Context(), doc, minConf)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}

	var opts analysis.FilterOptions
	for _, k := range q["kind"] {
		opts.LayerKinds = append(opts.LayerKinds, types.ParseLayerKind(k))
	}
	opts.Compositions = q["comp"]
	recs = analysis.Filter(recs, opts)

	resp := analyzeResponse{
		Count:           len(recs),
		Buckets:         make(map[types.Bucket]int),
		Recommendations: recs,
	}
	for b, group := range analysis.GroupByBucket(recs) {
		resp.Buckets[b] = len(group)
	}
	writeJSON(w, http.StatusOK, resp)
}
