package server

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// writeText sends body as a plain-text response with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// TextHandler answers each of its paths with a fixed body.
type TextHandler struct {
	bodies map[string]string
}

// NewTextHandler creates a [TextHandler] from a path to body map.
func NewTextHandler(bodies map[string]string) *TextHandler {
	return &TextHandler{bodies: bodies}
}

// MenuHandler returns the [TextHandler] for the root greeting and food routes.
func MenuHandler() *TextHandler {
	return NewTextHandler(map[string]string{
		"/":                "Hello Express!",
		"/burgers":         "We have juicy double cheese burgers!",
		"/pizza/pepperoni": "Your pizza is on the way!",
		"/pizza/pineapple": "We don't serve that here. Never call again!",
	})
}

// Routes returns the HTTP routes this handler serves.
func (h *TextHandler) Routes() []string {
	routes := make([]string, 0, len(h.bodies))
	for path := range h.bodies {
		routes = append(routes, path)
	}
	sort.Strings(routes)
	return routes
}

func (h *TextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, ok := h.bodies[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeText(w, http.StatusOK, body)
}

// EchoHandler describes the incoming request back to the client.
type EchoHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (EchoHandler) Routes() []string { return []string{"/echo"} }

func (EchoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := fmt.Sprintf(`Here are some details of your request:
	Method: %s
	Protocol: %s
	Base URL: %s
	Host: %s
	Path: %s
	IP address: %s
`, r.Method, protocol(r), "", hostname(r.Host), r.URL.Path, clientIP(r))

	writeText(w, http.StatusOK, body)
}

func protocol(r *http.Request) string {
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		p, _, _ = strings.Cut(p, ",")
		return strings.ToLower(strings.TrimSpace(p))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func hostname(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return hostport
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return hostname(r.RemoteAddr)
}

// QueryViewerHandler logs the query parameters and sends back an empty body.
type QueryViewerHandler struct {
	logger *log.Logger
}

// NewQueryViewerHandler creates a [QueryViewerHandler] logging to logger.
func NewQueryViewerHandler(logger *log.Logger) *QueryViewerHandler {
	return &QueryViewerHandler{logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *QueryViewerHandler) Routes() []string { return []string{"/queryViewer"} }

func (h *QueryViewerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("query", "values", r.URL.Query(), "request_id", RequestIDFrom(r.Context()))
	w.WriteHeader(http.StatusOK)
}

// GreetingsHandler greets a named traveller of some race.
type GreetingsHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (GreetingsHandler) Routes() []string { return []string{"/greetings"} }

func (GreetingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name, race := q.Get("name"), q.Get("race")

	if name == "" {
		writeText(w, http.StatusBadRequest, "Please provide a name")
		return
	}
	if race == "" {
		writeText(w, http.StatusBadRequest, "Please provide a race")
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("Greetings %s the %s, welcome to our kingdom.", name, race))
}

// SumHandler adds the integers a and b.
type SumHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (SumHandler) Routes() []string { return []string{"/sum"} }

func (SumHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawA, rawB := q.Get("a"), q.Get("b")

	if rawA == "" || rawB == "" {
		writeText(w, http.StatusBadRequest, "Please provide two values to add together.")
		return
	}

	a, errA := strconv.Atoi(strings.TrimSpace(rawA))
	b, errB := strconv.Atoi(strings.TrimSpace(rawB))
	if errA != nil || errB != nil {
		writeText(w, http.StatusBadRequest, "Values must be integers.")
		return
	}

	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		writeText(w, http.StatusBadRequest, "Sum is out of range.")
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("The sum of %d and %d is %d.", a, b, a+b))
}
