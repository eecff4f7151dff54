// Package httpapi serves the asset operations over HTTP with JSON bodies.
// The same handler backs the standalone server and the Lambda adapter.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
)

// maxBodyBytes caps JSON request bodies. Image bytes never pass through here.
const maxBodyBytes = 64 << 10

type Handler struct {
	api    *api.Server
	logger logging.Logger
	mux    *http.ServeMux
	root   http.Handler
}

func New(s *api.Server, logger logging.Logger) *Handler {
	h := &Handler{
		api:    s,
		logger: logger.With("module", "http"),
		mux:    http.NewServeMux(),
	}

	h.mux.HandleFunc("POST /images/upload-url", h.reserveUpload)
	h.mux.HandleFunc("POST /images/complete", h.confirmUpload)
	h.mux.HandleFunc("GET /images", h.listAssets)
	h.mux.HandleFunc("GET /images/{asset_id}/download-url", h.getDownload)
	h.mux.HandleFunc("DELETE /images/{asset_id}", h.deleteAsset)
	h.mux.HandleFunc("GET /healthz", h.health)

	h.root = h.withRequestID(h.withCORS(h.mux))
	return h
}

// Mount serves next under prefix, with the prefix stripped. The app uses it
// to expose the in-memory object store at /objects/.
func (h *Handler) Mount(prefix string, next http.Handler) {
	prefix = "/" + strings.Trim(prefix, "/")
	h.mux.Handle(prefix+"/", http.StripPrefix(prefix, next))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}

func (h *Handler) reserveUpload(w http.ResponseWriter, r *http.Request) {
	var req api.ReserveUploadRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, func(ctx context.Context) (any, error) { return h.api.ReserveUpload(ctx, &req) })
}

func (h *Handler) confirmUpload(w http.ResponseWriter, r *http.Request) {
	var req api.ConfirmUploadRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, func(ctx context.Context) (any, error) { return h.api.ConfirmUpload(ctx, &req) })
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	req, err := listRequestFromQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, func(ctx context.Context) (any, error) { return h.api.ListAssets(ctx, req) })
}

func (h *Handler) getDownload(w http.ResponseWriter, r *http.Request) {
	req := &api.GetDownloadRequest{AssetID: r.PathValue("asset_id")}
	h.respond(w, r, func(ctx context.Context) (any, error) { return h.api.GetDownload(ctx, req) })
}

// deleteAsset takes owner_id from the JSON body when one is sent, otherwise
// from the query string.
func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	req := &api.DeleteAssetRequest{}
	if r.ContentLength != 0 && r.Body != nil && r.Body != http.NoBody {
		if err := decodeBody(r, req); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	if req.OwnerID == "" {
		req.OwnerID = r.URL.Query().Get("owner_id")
	}
	req.AssetID = r.PathValue("asset_id")
	h.respond(w, r, func(ctx context.Context) (any, error) { return h.api.DeleteAsset(ctx, req) })
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, call func(context.Context) (any, error)) {
	res, err := call(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", common.ErrValidation)
		}
		return fmt.Errorf("%w: malformed request body: %v", common.ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
