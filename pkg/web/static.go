package web

import (
	"bytes"
	"embed"
	"net/http"
	"time"
)

// PublicFile returns a handler that serves a single file from an
// embedded filesystem. The content type is inferred from the filename.
func PublicFile(fsys embed.FS, subdir, filename string) http.HandlerFunc {
	path := subdir + "/" + filename
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fsys.ReadFile(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, filename, time.Time{}, bytes.NewReader(data))
	}
}
