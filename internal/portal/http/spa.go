package http

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

//go:embed static
var embeddedStatic embed.FS

// SPAHandler serves the single page app. Existing files are served as is;
// any other path gets index.html so the client side router can take over.
// Unknown /api/ paths get a JSON 404 instead of the shell.
func SPAHandler(staticDir string) http.Handler {
	var root fs.FS
	if staticDir != "" {
		root = os.DirFS(staticDir)
	} else {
		sub, err := fs.Sub(embeddedStatic, "static")
		if err != nil {
			panic(err)
		}
		root = sub
	}

	files := http.FileServerFS(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			errRouteNotFound.write(w)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name != "" && name != "index.html" {
			if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}

		serveIndex(w, r, root)
	})
}

func serveIndex(w http.ResponseWriter, r *http.Request, root fs.FS) {
	body, err := fs.ReadFile(root, "index.html")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		errInternal.write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}
