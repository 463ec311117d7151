package api

import (
	"net/http"
)

// ValidateDependencies defines the syntax check used by the handler.
type ValidateDependencies interface {
	Validate(text string) []string
}

// ValidateHandler checks expression syntax.
type ValidateHandler struct {
	deps     ValidateDependencies
	maxBytes int64
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(deps ValidateDependencies, maxBytes int64) *ValidateHandler {
	return &ValidateHandler{deps: deps, maxBytes: maxBytes}
}

type validateRequest struct {
	Expression string `json:"expression"`
}

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// HandlePostValidate handles POST /validate requests.
func (h *ValidateHandler) HandlePostValidate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_validate"
	if r.Method != http.MethodPost {
		writeFailure(w, NewKind(op, ErrMethod))
		return
	}
	var req validateRequest
	if err := decodeJSON(w, r, op, h.maxBytes, &req); err != nil {
		writeFailure(w, err)
		return
	}
	violations := h.deps.Validate(req.Expression)
	if violations == nil {
		violations = []string{}
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: len(violations) == 0, Errors: violations})
}
