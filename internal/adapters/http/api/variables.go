package api

import (
	"net/http"
	"strings"

	"github.com/okian/hardcard/internal/domain/types"
)

// VariablesDependencies defines the catalog lookup used by the handler.
type VariablesDependencies interface {
	Variables(category types.Category, dataType types.DataType) []types.VariableDefinition
}

// VariablesHandler serves the variable catalog.
type VariablesHandler struct {
	deps VariablesDependencies
}

// NewVariablesHandler creates a new variables handler.
func NewVariablesHandler(deps VariablesDependencies) *VariablesHandler {
	return &VariablesHandler{deps: deps}
}

type variablesResponse struct {
	Count     int                        `json:"count"`
	Variables []types.VariableDefinition `json:"variables"`
}

// HandleGetVariables handles GET /variables?category=&type= requests.
func (h *VariablesHandler) HandleGetVariables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, NewKind("api.get_variables", ErrMethod))
		return
	}
	q := r.URL.Query()
	vars := h.deps.Variables(
		types.Category(strings.TrimSpace(q.Get("category"))),
		types.DataType(strings.TrimSpace(q.Get("type"))),
	)
	if vars == nil {
		vars = []types.VariableDefinition{}
	}
	writeJSON(w, http.StatusOK, variablesResponse{Count: len(vars), Variables: vars})
}
