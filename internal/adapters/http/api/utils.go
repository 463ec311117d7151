package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/registry"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps err onto a status code and error code.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPayloadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", err)
	case errors.Is(err, ErrMethod):
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", err)
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, document.ErrDocumentParse),
		errors.Is(err, document.ErrValidation),
		errors.Is(err, document.ErrInvalidTarget):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, document.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, registry.ErrUnknownVariable):
		writeError(w, http.StatusUnprocessableEntity, "unknown_variable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// readBody reads at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, op string, limit int64) ([]byte, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, WrapKind(op, ErrPayloadTooLarge, fmt.Errorf("limit is %d bytes", tooLarge.Limit))
		}
		return nil, WrapKind(op, ErrBadRequest, err)
	}
	if len(b) == 0 {
		return nil, WrapKind(op, ErrBadRequest, errors.New("empty body"))
	}
	return b, nil
}

// decodeJSON reads a size-capped JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, limit int64, v any) error {
	b, err := readBody(w, r, op, limit)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return WrapKind(op, ErrBadRequest, err)
	}
	return nil
}
