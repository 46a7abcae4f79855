package server

import (
	"net/http"
	"sort"
	"strings"
)

// BasicRouter is a simple HTTP router implementing the [Router] interface.
//
// Uses [http.ServeMux] internally for routing.
type BasicRouter struct {
	mux         *http.ServeMux
	middlewares []Middleware
	routes      []string
}

// NewBasicRouter creates a new [BasicRouter] instance.
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{
		mux:         http.NewServeMux(),
		middlewares: []Middleware{},
	}
}

// Use adds [Middleware] to the [Router] instance's middleware stack, applied in the order it's added.
//
// Middleware only wraps handlers registered after the call.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a [Handler] for the specified HTTP method and path.
//
// The handler is wrapped with all registered middleware. GET routes also answer HEAD.
func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	method = strings.ToUpper(method)
	allow := method
	if method == http.MethodGet {
		allow = "GET, HEAD"
	}

	methodHandler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !allows(method, req.Method) {
			w.Header().Set("Allow", allow)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, req)
	})

	// Middleware wraps the method check too, so rejected requests are logged.
	r.mux.Handle(pattern(path), r.Apply(methodHandler))
	r.routes = append(r.routes, method+" "+path)
}

// Handler registers a custom Handler implementation.
//
// All routes returned by [Handler.Routes] are registered for GET.
func (r *BasicRouter) Handler(handler Handler) {
	for _, route := range handler.Routes() {
		r.Handle(http.MethodGet, route, handler)
	}
}

// NotFound sets the handler for requests no route matches.
func (r *BasicRouter) NotFound(handler http.Handler) {
	r.mux.Handle("/", r.Apply(handler))
}

// Routes lists the registered "METHOD path" pairs, sorted by path.
func (r *BasicRouter) Routes() []string {
	routes := append([]string(nil), r.routes...)
	sort.Slice(routes, func(i, j int) bool {
		_, a, _ := strings.Cut(routes[i], " ")
		_, b, _ := strings.Cut(routes[j], " ")
		return a < b
	})
	return routes
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Apply wraps a handler with all registered middleware.
//
// Middleware is applied in reverse order (last added wraps first).
func (r *BasicRouter) Apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}

// pattern turns a route path into a [http.ServeMux] pattern. "/" matches only the root.
func pattern(path string) string {
	if path == "/" {
		return "/{$}"
	}
	return path
}

func allows(route, method string) bool {
	if strings.EqualFold(route, method) {
		return true
	}
	return route == http.MethodGet && method == http.MethodHead
}
