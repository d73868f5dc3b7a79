package presentation

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed web/*
var webFS embed.FS

// MountStatic serves the embedded shop page at the root.
func MountStatic(r chi.Router) {
	sub, _ := fs.Sub(webFS, "web")

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, sub, "index.html")
	})
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(sub))))
}
