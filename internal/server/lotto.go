package server

import (
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/models"
)

// WinningHeader lists the drawn numbers on /lotto responses.
const WinningHeader = "X-Lotto-Winning"

// DrawStore saves played draws.
type DrawStore interface {
	Create(draw *models.Draw) error
}

// LottoHandler plays a ticket from the repeated "arr" query parameter.
type LottoHandler struct {
	drawer *lotto.Drawer
	draws  DrawStore
	logger *log.Logger
}

// NewLottoHandler creates a [LottoHandler]. draws may be nil, in which case nothing is saved.
func NewLottoHandler(drawer *lotto.Drawer, draws DrawStore, logger *log.Logger) *LottoHandler {
	return &LottoHandler{drawer: drawer, draws: draws, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *LottoHandler) Routes() []string { return []string{"/lotto"} }

// ServeHTTP accepts both arr=1&arr=2 and arr[]=1&arr[]=2.
//
// A storage failure is logged and the player still gets their result.
func (h *LottoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	values := slices.Concat(q["arr"], q["arr[]"])

	ticket, err := lotto.ParseTicket(values)
	if err != nil {
		writeError(w, err)
		return
	}

	result := h.drawer.Play(ticket)

	if h.draws != nil {
		draw := models.NewDraw(result)
		if err := h.draws.Create(draw); err != nil {
			h.logger.Error("failed to save draw", "error", err, "request_id", RequestIDFrom(r.Context()))
		} else {
			h.logger.Debug("draw saved", "id", draw.ID(), "sequence", draw.Sequence())
		}
	}

	w.Header().Set(WinningHeader, lotto.Ticket(result.Winning).String())
	writeText(w, http.StatusOK, result.Outcome)
}
