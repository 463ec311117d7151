// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/analysis"
	"github.com/okian/hardcard/internal/domain/types"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 32 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	// Catalog and syntax checks.
	Variables(category types.Category, dataType types.DataType) []types.VariableDefinition
	Validate(text string) []string

	// Document operations.
	ParseDocument(ctx context.Context, data []byte) (*document.Writer, error)
	Analyze(ctx context.Context, src analysis.Source, minConfidence float64) ([]types.ExpressionRecommendation, error)
	Apply(ctx context.Context, w *document.Writer, items []types.LayerExpression, validate, stopOnError bool) (document.BatchResult, error)
	MinConfidence() float64
}

// Server wires HTTP routes for the toolkit API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	variablesHandler *VariablesHandler
	analyzeHandler   *AnalyzeHandler
	applyHandler     *ApplyHandler
	validateHandler  *ValidateHandler
}

// NewServer creates a new API server with all handlers. A non-positive
// maxBodyBytes selects DefaultMaxBodyBytes.
func NewServer(deps Dependencies, maxBodyBytes int64) *Server {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(deps),
		variablesHandler: NewVariablesHandler(deps),
		analyzeHandler:   NewAnalyzeHandler(deps, maxBodyBytes),
		applyHandler:     NewApplyHandler(deps, maxBodyBytes),
		validateHandler:  NewValidateHandler(deps, maxBodyBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/variables", MetricsMiddleware(s.variablesHandler.HandleGetVariables, "variables"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandlePostAnalyze, "analyze"))
	mux.HandleFunc("/apply", MetricsMiddleware(s.applyHandler.HandlePostApply, "apply"))
	mux.HandleFunc("/validate", MetricsMiddleware(s.validateHandler.HandlePostValidate, "validate"))
}
