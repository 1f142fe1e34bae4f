package routes

import "net/http"

// Route pairs an HTTP method and ServeMux pattern with the handler that
// serves it. Patterns are relative to the owning group's prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
