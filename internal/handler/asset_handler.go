package handler

import (
	"errors"
	"log"
	"net/http"
	"path"
	"static-page/internal/metrics"
	"static-page/internal/models"
	"static-page/internal/service"
)

// AssetHandler handles HTTP requests for static assets and the index page
type AssetHandler struct {
	assets  *service.AssetService
	pages   *service.PageService
	metrics *metrics.Metrics
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assets *service.AssetService, pages *service.PageService, metrics *metrics.Metrics) *AssetHandler {
	return &AssetHandler{
		assets:  assets,
		pages:   pages,
		metrics: metrics,
	}
}

// Routes returns the full handler chain: static assets first, then the root
// route, then not found.
func (h *AssetHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Index)

	return RequestID(LogRequests(h.metrics, h.Static(mux)))
}

// Static serves a file from the static directory when the request path names
// one, and passes the request to next otherwise.
func (h *AssetHandler) Static(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Answered here so the mux cannot redirect to a cleaned path
		if service.IsTraversal(r.URL.Path) {
			h.rejectTraversal(w, r)
			return
		}
		// Unclean paths never name an asset and would otherwise get a 301 from the mux
		if !isCleanPath(r.URL.Path) {
			h.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		asset, err := h.assets.Lookup(r.Context(), r.URL.Path)
		if err != nil {
			if errors.Is(err, service.ErrAssetNotFound) {
				next.ServeHTTP(w, r)
				return
			}
			if errors.Is(err, service.ErrPathTraversal) {
				h.rejectTraversal(w, r)
				return
			}
			log.Printf("request_id=%s: error serving asset: %v", RequestIDFromContext(r.Context()), err)
			h.metrics.IncrementErrors()
			http.Error(w, "failed to read asset", http.StatusInternalServerError)
			return
		}

		serveAsset(w, r, asset)
	})
}

// Index handles GET /
func (h *AssetHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.NotFound(w, r)
		return
	}

	asset, err := h.pages.Index(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrIndexNotFound) {
			log.Printf("request_id=%s: index document missing: %s", RequestIDFromContext(r.Context()), h.pages.IndexPath())
			h.NotFound(w, r)
			return
		}
		log.Printf("request_id=%s: error serving index: %v", RequestIDFromContext(r.Context()), err)
		h.metrics.IncrementErrors()
		http.Error(w, "failed to read index document", http.StatusInternalServerError)
		return
	}

	serveAsset(w, r, asset)
}

func (h *AssetHandler) rejectTraversal(w http.ResponseWriter, r *http.Request) {
	log.Printf("request_id=%s: rejected path traversal: %q", RequestIDFromContext(r.Context()), r.URL.Path)
	h.NotFound(w, r)
}

// NotFound writes a 404 response
func (h *AssetHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncrementNotFound()
	http.NotFound(w, r)
}

// isCleanPath reports whether ServeMux would route p without redirecting it
func isCleanPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	cleaned := path.Clean(p)
	if p[len(p)-1] == '/' && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned == p
}

func serveAsset(w http.ResponseWriter, r *http.Request, asset *models.Asset) {
	defer func() {
		if err := asset.Close(); err != nil {
			log.Printf("request_id=%s: error closing %s: %v", RequestIDFromContext(r.Context()), asset.Name, err)
		}
	}()

	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	http.ServeContent(w, r, asset.Name, asset.ModTime, asset.Content)
}
