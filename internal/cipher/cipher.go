package cipher

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/desertthunder/drills/internal/shared"
)

const (
	base     = 'A'
	alphabet = 26
	// last is the highest code treated as a letter. It sits one past 'Z' so
	// that '[' counts as position 26 (which wraps to 0).
	last = base + alphabet
)

var (
	errTextRequired = shared.NewArgumentError("text", "text required")
	errShiftNaN     = shared.NewArgumentError("shift", "shift must be a number")
)

// Shift moves each in-range character of text by amount places.
//
// amount is truncated toward zero before use, so 1.9 and -0.5 shift by 1 and 0.
func Shift(text string, amount float64) string {
	k := offset(amount)

	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		up := unicode.ToUpper(c)
		if up < base || up > last {
			b.WriteRune(c)
			continue
		}
		diff := (int(up-base) + k) % alphabet
		b.WriteRune(rune(base + diff))
	}
	return b.String()
}

// ShiftParams validates raw text and shift values and applies [Shift].
//
// An empty text or a shift that is empty, unparseable or not finite yields a [*shared.ArgumentError].
func ShiftParams(text, shift string) (string, error) {
	if text == "" {
		return "", errTextRequired
	}

	amount, err := ParseShift(shift)
	if err != nil {
		return "", err
	}

	return Shift(text, amount), nil
}

// ParseShift parses a shift amount, rejecting NaN and infinities.
func ParseShift(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errShiftNaN
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errShiftNaN
	}
	return amount, nil
}

// offset reduces amount to a position offset in [0, 26). Non-finite amounts do not shift.
func offset(amount float64) int {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	k := int(math.Mod(math.Trunc(amount), alphabet))
	return ((k % alphabet) + alphabet) % alphabet
}
