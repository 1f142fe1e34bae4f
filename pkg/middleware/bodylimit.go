package middleware

import "net/http"

// BodyLimit returns middleware that caps the request body at maxBytes.
// Reads past the limit fail with a *http.MaxBytesError, which handlers
// surface as a bad request. A non-positive limit disables the cap.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
