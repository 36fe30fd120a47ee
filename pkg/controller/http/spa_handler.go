package http

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// SPAHandler serves the dashboard page and its static assets. Unknown paths
// fall back to index.html so the page can be reloaded at any URL.
type SPAHandler struct {
	fileSystem http.FileSystem
	index      []byte
	loadedAt   time.Time
}

// NewSPAHandler creates a new SPA handler
func NewSPAHandler(filesystem http.FileSystem) (*SPAHandler, error) {
	indexFile, err := filesystem.Open("/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open index.html for SPA handler")
	}
	defer indexFile.Close()

	index, err := io.ReadAll(indexFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read index.html content")
	}

	return &SPAHandler{
		fileSystem: filesystem,
		index:      index,
		loadedAt:   time.Now(),
	}, nil
}

// ServeHTTP implements the http.Handler interface for SPA routing
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + r.URL.Path)

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			h.serveIndex(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		h.serveIndex(w, r)
		return
	}

	if contentType := getContentType(cleanPath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
}

func (h *SPAHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "index.html", h.loadedAt, bytes.NewReader(h.index))
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}
