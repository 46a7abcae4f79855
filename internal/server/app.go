package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/shared"
	"golang.org/x/time/rate"
)

// AppOptions holds the dependencies of the drills routes.
type AppOptions struct {
	Logger    *log.Logger
	Drawer    *lotto.Drawer
	Draws     DrawStore // optional
	RateLimit float64   // requests per second, 0 disables limiting
	Burst     int
	StartedAt time.Time
}

// NewApp builds the router serving every drills route.
func NewApp(opts AppOptions) *BasicRouter {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Drawer == nil {
		opts.Drawer = lotto.NewDrawer(nil)
	}
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}

	router := NewBasicRouter()
	router.Use(RequestID(), Logging(opts.Logger), Recover(opts.Logger))
	if opts.RateLimit > 0 {
		burst := max(opts.Burst, 1)
		router.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	for _, h := range []Handler{
		MenuHandler(),
		EchoHandler{},
		NewQueryViewerHandler(opts.Logger),
		GreetingsHandler{},
		SumHandler{},
		CipherHandler{},
		NewLottoHandler(opts.Drawer, opts.Draws, opts.Logger),
		NewHealthHandler(opts.StartedAt),
	} {
		router.Handler(h)
	}
	router.NotFound(http.NotFoundHandler())

	return router
}
