package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/models"
	"github.com/desertthunder/drills/internal/shared"
)

type memoryDraws struct {
	mu    sync.Mutex
	draws []*models.Draw
	err   error
}

func (m *memoryDraws) Create(d *models.Draw) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.draws = append(m.draws, d)
	return nil
}

func newTestApp(t *testing.T, opts AppOptions) (*BasicRouter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(&buf)
	}
	return NewApp(opts), &buf
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStaticRoutes(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	tc := []struct {
		path string
		want string
	}{
		{path: "/", want: "Hello Express!"},
		{path: "/burgers", want: "We have juicy double cheese burgers!"},
		{path: "/pizza/pepperoni", want: "Your pizza is on the way!"},
		{path: "/pizza/pineapple", want: "We don't serve that here. Never call again!"},
	}

	for _, tt := range tc {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(app, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if rec.Body.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("expected text/plain, got %q", ct)
			}
		})
	}

	t.Run("unknown path", func(t *testing.T) {
		if rec := get(app, "/pizza/anchovy"); rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/burgers", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestEcho(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	t.Run("direct", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com:8000/echo?x=1", nil)
		req.RemoteAddr = "10.0.0.7:51234"
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		body := rec.Body.String()
		for _, want := range []string{
			"Here are some details of your request:",
			"Method: GET",
			"Protocol: http\n",
			"Host: example.com\n",
			"Path: /echo\n",
			"IP address: 10.0.0.7",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("expected %q in %q", want, body)
			}
		}
	})

	t.Run("behind a proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		req.Header.Set("X-Forwarded-Proto", "HTTPS")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		body := rec.Body.String()
		if !strings.Contains(body, "Protocol: https") {
			t.Errorf("expected https protocol in %q", body)
		}
		if !strings.Contains(body, "IP address: 203.0.113.9") {
			t.Errorf("expected first forwarded hop in %q", body)
		}
	})
}

func TestQueryViewer(t *testing.T) {
	app, logs := newTestApp(t, AppOptions{})

	rec := get(app, "/queryViewer?color=red")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "red") {
		t.Errorf("expected query to be logged, got %q", logs.String())
	}
}

func TestGreetings(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	tc := []struct {
		name   string
		target string
		status int
		want   string
	}{
		{name: "valid", target: "/greetings?name=Frodo&race=hobbit", status: 200, want: "Greetings Frodo the hobbit, welcome to our kingdom."},
		{name: "missing name", target: "/greetings?race=elf", status: 400, want: "Please provide a name"},
		{name: "empty name", target: "/greetings?name=&race=elf", status: 400, want: "Please provide a name"},
		{name: "missing race", target: "/greetings?name=Legolas", status: 400, want: "Please provide a race"},
		{name: "missing both", target: "/greetings", status: 400, want: "Please provide a name"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(app, tt.target)
			if rec.Code != tt.status || rec.Body.String() != tt.want {
				t.Errorf("expected %d %q, got %d %q", tt.status, tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSum(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	tc := []struct {
		name   string
		target string
		status int
		want   string
	}{
		{name: "valid", target: "/sum?a=2&b=3", status: 200, want: "The sum of 2 and 3 is 5."},
		{name: "negative", target: "/sum?a=-7&b=3", status: 200, want: "The sum of -7 and 3 is -4."},
		{name: "missing b", target: "/sum?a=2", status: 400, want: "Please provide two values to add together."},
		{name: "missing both", target: "/sum", status: 400, want: "Please provide two values to add together."},
		{name: "not integers", target: "/sum?a=two&b=3", status: 400, want: "Values must be integers."},
		{name: "overflow", target: "/sum?a=9223372036854775807&b=1", status: 400, want: "Sum is out of range."},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(app, tt.target)
			if rec.Code != tt.status || rec.Body.String() != tt.want {
				t.Errorf("expected %d %q, got %d %q", tt.status, tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCipher(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	tc := []struct {
		name   string
		target string
		status int
		want   string
	}{
		{name: "shift one", target: "/cipher?text=hello&shift=1", status: 200, want: "IFMMP"},
		{name: "wrap", target: "/cipher?text=XYZ&shift=2", status: 200, want: "ZAB"},
		{name: "negative", target: "/cipher?text=A&shift=-1", status: 200, want: "Z"},
		{name: "passthrough", target: "/cipher?text=A1B2&shift=1", status: 200, want: "B1C2"},
		{name: "spaces", target: "/cipher?text=hi+there&shift=1", status: 200, want: "IJ UIFSF"},
		{name: "missing text", target: "/cipher?shift=3", status: 400, want: "text required"},
		{name: "missing shift", target: "/cipher?text=HELLO", status: 400, want: "shift must be a number"},
		{name: "bad shift", target: "/cipher?text=HELLO&shift=abc", status: 400, want: "shift must be a number"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(app, tt.target)
			if rec.Code != tt.status || rec.Body.String() != tt.want {
				t.Errorf("expected %d %q, got %d %q", tt.status, tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLotto(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		app, _ := newTestApp(t, AppOptions{})

		tc := []struct {
			name   string
			target string
			want   string
		}{
			{name: "none", target: "/lotto", want: "Please enter exactly 6 numbers."},
			{name: "five", target: "/lotto?arr=1&arr=2&arr=3&arr=4&arr=5", want: "Please enter exactly 6 numbers."},
			{name: "out of range", target: "/lotto?arr=1&arr=2&arr=3&arr=4&arr=5&arr=21", want: "Numbers must be between 1 and 20."},
			{name: "not numbers", target: "/lotto?arr=a&arr=2&arr=3&arr=4&arr=5&arr=6", want: "Numbers must be between 1 and 20."},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				rec := get(app, tt.target)
				if rec.Code != http.StatusBadRequest || rec.Body.String() != tt.want {
					t.Errorf("expected 400 %q, got %d %q", tt.want, rec.Code, rec.Body.String())
				}
			})
		}
	})

	t.Run("jackpot is saved", func(t *testing.T) {
		winning := lotto.NewDrawer(rand.NewPCG(9, 9)).Draw()
		draws := &memoryDraws{}
		app, _ := newTestApp(t, AppOptions{Drawer: lotto.NewDrawer(rand.NewPCG(9, 9)), Draws: draws})

		target := "/lotto?"
		for i, n := range winning {
			if i > 0 {
				target += "&"
			}
			target += "arr[]=" + lotto.Ticket{n}.String()
		}

		rec := get(app, target)
		if rec.Code != http.StatusOK || rec.Body.String() != lotto.OutcomeJackpot {
			t.Fatalf("expected jackpot, got %d %q", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get(WinningHeader); got != lotto.Ticket(winning).String() {
			t.Errorf("expected winning header %q, got %q", lotto.Ticket(winning).String(), got)
		}
		if len(draws.draws) != 1 || draws.draws[0].Matches() != lotto.Picks {
			t.Errorf("expected one saved jackpot draw, got %d", len(draws.draws))
		}
	})

	t.Run("storage failure still answers", func(t *testing.T) {
		draws := &memoryDraws{err: errors.New("disk full")}
		app, logs := newTestApp(t, AppOptions{Draws: draws})

		rec := get(app, "/lotto?arr=1&arr=2&arr=3&arr=4&arr=5&arr=6")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(logs.String(), "disk full") {
			t.Errorf("expected storage error to be logged, got %q", logs.String())
		}
	})
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	rec := get(app, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp.Status != "ok" || resp.Version != shared.Version {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestAppRateLimit(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{RateLimit: 0.001, Burst: 1})

	if rec := get(app, "/"); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	if rec := get(app, "/burgers"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
}

func TestAppRoutes(t *testing.T) {
	app, _ := newTestApp(t, AppOptions{})

	routes := strings.Join(app.Routes(), "\n")
	for _, path := range []string{"/", "/echo", "/queryViewer", "/greetings", "/sum", "/cipher", "/lotto", "/health"} {
		if !strings.Contains(routes, "GET "+path+"\n") && !strings.HasSuffix(routes, "GET "+path) {
			t.Errorf("expected GET %s to be registered, routes:\n%s", path, routes)
		}
	}
}
