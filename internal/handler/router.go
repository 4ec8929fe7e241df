package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions configures the parts of the router that are not handlers
type RouterOptions struct {
	StaticDir      string
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	extractionHandler *ExtractionHandler,
	readabilityHandler *ReadabilityHandler,
	middleware func(http.Handler) http.Handler,
	opts RouterOptions,
) http.Handler {
	router := mux.NewRouter()
	if middleware != nil {
		router.Use(middleware)
	}

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"mrc-extractor"}`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/upload", extractionHandler.Upload).Methods(http.MethodPost)
	router.HandleFunc("/check-mrc", readabilityHandler.CheckMRC).Methods(http.MethodPost)

	// Built frontend, if configured
	if opts.StaticDir != "" {
		router.PathPrefix("/").Handler(spaHandler{dir: opts.StaticDir}).Methods(http.MethodGet, http.MethodHead)
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}

// spaHandler serves files from dir and falls back to index.html for unknown paths.
type spaHandler struct {
	dir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path as if rooted so it cannot leave dir.
	target := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}
	http.ServeFile(w, r, target)
}
