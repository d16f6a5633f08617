package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// StaticHandler serves the browser front end from a directory
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a handler serving files from dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// RegisterRoutes registers the front end pages and the file server fallback
func (h *StaticHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.page("login.html"))
	r.Get("/index", h.page("index.html"))
	r.Get("/*", http.FileServer(http.Dir(h.dir)).ServeHTTP)
}

func (h *StaticHandler) page(name string) http.HandlerFunc {
	path := filepath.Join(h.dir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
