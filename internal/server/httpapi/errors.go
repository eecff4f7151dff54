package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
)

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUploadNotFound):
		return http.StatusConflict
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, common.ErrPartialFailure):
		return http.StatusInternalServerError
	case errors.Is(err, common.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	kind := common.Kind(err)

	msg := err.Error()
	if kind == "InternalError" {
		msg = "internal server error"
	}

	if code >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "kind", kind, "error", err)
	} else {
		h.logger.Info(r.Context(), "request rejected", "method", r.Method, "path", r.URL.Path, "kind", kind, "error", err)
	}

	writeJSON(w, code, api.ErrorResponse{Error: kind, Message: msg})
}
