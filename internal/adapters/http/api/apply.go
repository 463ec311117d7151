package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/types"
)

// ApplyDependencies defines the document mutation used by the handler.
type ApplyDependencies interface {
	ParseDocument(ctx context.Context, data []byte) (*document.Writer, error)
	Apply(ctx context.Context, w *document.Writer, items []types.LayerExpression, validate, stopOnError bool) (document.BatchResult, error)
}

// ApplyHandler writes a plan of expressions into an uploaded document.
type ApplyHandler struct {
	deps     ApplyDependencies
	maxBytes int64
}

// NewApplyHandler creates a new apply handler.
func NewApplyHandler(deps ApplyDependencies, maxBytes int64) *ApplyHandler {
	return &ApplyHandler{deps: deps, maxBytes: maxBytes}
}

// applyRequest carries the document as XML text. Validate defaults to true.
type applyRequest struct {
	Document    string                  `json:"document"`
	Expressions []types.LayerExpression `json:"expressions"`
	Validate    *bool                   `json:"validate"`
	StopOnError bool                    `json:"stop_on_error"`
}

type applyResponse struct {
	Result   document.BatchResult `json:"result"`
	Document string               `json:"document"`
}

// HandlePostApply handles POST /apply requests.
func (h *ApplyHandler) HandlePostApply(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_apply"
	if r.Method != http.MethodPost {
		writeFailure(w, NewKind(op, ErrMethod))
		return
	}
	var req applyRequest
	if err := decodeJSON(w, r, op, h.maxBytes, &req); err != nil {
		writeFailure(w, err)
		return
	}
	if req.Document == "" {
		writeFailure(w, WrapKind(op, ErrBadRequest, errors.New("missing document")))
		return
	}
	validate := true
	if req.Validate != nil {
		validate = *req.Validate
	}

	doc, err := h.deps.ParseDocument(r.Context(), []byte(req.Document))
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	res, err := h.deps.Apply(r.Context(), doc, req.Expressions, validate, req.StopOnError)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	out, err := doc.Bytes()
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, applyResponse{Result: res, Document: string(out)})
}
