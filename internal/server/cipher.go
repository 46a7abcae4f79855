package server

import (
	"errors"
	"net/http"

	"github.com/desertthunder/drills/internal/cipher"
	"github.com/desertthunder/drills/internal/shared"
)

// CipherHandler serves the shift transform.
type CipherHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (CipherHandler) Routes() []string { return []string{"/cipher"} }

// ServeHTTP reads text and shift from the query. Bad input gets a 400 with the validation message.
func (CipherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	out, err := cipher.ShiftParams(q.Get("text"), q.Get("shift"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeText(w, http.StatusOK, out)
}

// writeError maps validation errors to 400 and anything else to 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, shared.ErrInvalidArgument) {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}
	writeText(w, http.StatusInternalServerError, "Internal server error")
}
