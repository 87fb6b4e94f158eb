package routes

import "net/http"

// Group organizes routes under a common prefix. Child groups nest, with
// prefixes concatenated outermost first.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds every route in the given groups, and their children, to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.register(mux, "")
	}
}

func (g Group) register(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix

	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}

	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}
