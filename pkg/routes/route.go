// Package routes declares HTTP endpoints as data. Handlers describe their
// routes as nested groups and the server registers them onto a ServeMux.
package routes

import "net/http"

// Route binds an HTTP method and ServeMux pattern to a handler. The pattern
// is relative to the enclosing group's prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
