package cipher

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/desertthunder/drills/internal/shared"
)

func TestShift(t *testing.T) {
	tc := []struct {
		name   string
		text   string
		amount float64
		want   string
	}{
		{name: "lowercase is upper-cased", text: "hello", amount: 1, want: "IFMMP"},
		{name: "wraps past Z", text: "XYZ", amount: 2, want: "ZAB"},
		{name: "negative shift", text: "B", amount: -1, want: "A"},
		{name: "negative shift wraps", text: "A", amount: -1, want: "Z"},
		{name: "digits pass through", text: "A1B2", amount: 1, want: "B1C2"},
		{name: "whitespace and punctuation", text: "hi, you!", amount: 3, want: "KL, BRX!"},
		{name: "zero is identity on upper", text: "Go Gophers", amount: 0, want: "GO GOPHERS"},
		{name: "full turn", text: "ABC", amount: 26, want: "ABC"},
		{name: "large negative", text: "ABC", amount: -27, want: "ZAB"},
		{name: "fraction truncates toward zero", text: "A", amount: 1.9, want: "B"},
		{name: "negative fraction truncates toward zero", text: "A", amount: -0.5, want: "A"},
		{name: "negative fraction beyond one", text: "A", amount: -1.7, want: "Z"},
		{name: "huge amount", text: "A", amount: 26e6 + 1, want: "B"},
		{name: "bracket counts as position 26", text: "[", amount: 1, want: "B"},
		{name: "bracket at zero", text: "[", amount: 0, want: "A"},
		{name: "backslash is outside", text: `\`, amount: 1, want: `\`},
		{name: "at sign is outside", text: "@", amount: 1, want: "@"},
		{name: "non-ascii keeps original case", text: "é", amount: 1, want: "é"},
		{name: "empty", text: "", amount: 5, want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shift(tt.text, tt.amount); got != tt.want {
				t.Errorf("Shift(%q, %v) = %q, want %q", tt.text, tt.amount, got, tt.want)
			}
		})
	}
}

func TestShiftProperties(t *testing.T) {
	inputs := []string{"hello", "The Quick Brown Fox", "A1B2", "zzz...", "ßtraße", "日本語 text", "[]^_`{"}

	t.Run("length preservation", func(t *testing.T) {
		for _, in := range inputs {
			for k := -30; k <= 30; k++ {
				out := Shift(in, float64(k))
				if utf8.RuneCountInString(out) != utf8.RuneCountInString(in) {
					t.Fatalf("Shift(%q, %d) changed length: %q", in, k, out)
				}
			}
		}
	})

	t.Run("periodicity", func(t *testing.T) {
		for _, in := range inputs {
			for k := -30; k <= 30; k++ {
				a, b := Shift(in, float64(k)), Shift(in, float64(k+26))
				if a != b {
					t.Fatalf("Shift(%q, %d) = %q but Shift(%q, %d) = %q", in, k, a, in, k+26, b)
				}
			}
		}
	})

	t.Run("case normalization", func(t *testing.T) {
		for _, in := range []string{"hello", "MiXeD", "abcxyz"} {
			for k := 0; k < 26; k++ {
				out := Shift(in, float64(k))
				if strings.ToUpper(out) != out {
					t.Fatalf("Shift(%q, %d) = %q has lowercase letters", in, k, out)
				}
			}
		}
	})

	t.Run("identity at zero", func(t *testing.T) {
		for _, in := range []string{"hello", "WORLD", "MiXeD"} {
			if got := Shift(in, 0); got != strings.ToUpper(in) {
				t.Errorf("Shift(%q, 0) = %q, want %q", in, got, strings.ToUpper(in))
			}
		}
	})

	t.Run("inverse", func(t *testing.T) {
		for k := -30; k <= 30; k++ {
			if got := Shift(Shift("ATTACK AT DAWN", float64(k)), float64(-k)); got != "ATTACK AT DAWN" {
				t.Fatalf("round trip with %d gave %q", k, got)
			}
		}
	})
}

func TestShiftParams(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tc := []struct {
			text  string
			shift string
			want  string
		}{
			{text: "hello", shift: "1", want: "IFMMP"},
			{text: "XYZ", shift: " 2 ", want: "ZAB"},
			{text: "A", shift: "-1", want: "Z"},
			{text: "A", shift: "1.9", want: "B"},
			{text: "A", shift: "2e1", want: "U"},
		}

		for _, tt := range tc {
			got, err := ShiftParams(tt.text, tt.shift)
			if err != nil {
				t.Errorf("ShiftParams(%q, %q) unexpected error: %v", tt.text, tt.shift, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ShiftParams(%q, %q) = %q, want %q", tt.text, tt.shift, got, tt.want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tc := []struct {
			name    string
			text    string
			shift   string
			field   string
			message string
		}{
			{name: "empty text", text: "", shift: "3", field: "text", message: "text required"},
			{name: "empty text and shift", text: "", shift: "", field: "text", message: "text required"},
			{name: "empty shift", text: "HELLO", shift: "", field: "shift", message: "shift must be a number"},
			{name: "blank shift", text: "HELLO", shift: "   ", field: "shift", message: "shift must be a number"},
			{name: "word shift", text: "HELLO", shift: "three", field: "shift", message: "shift must be a number"},
			{name: "trailing garbage", text: "HELLO", shift: "3abc", field: "shift", message: "shift must be a number"},
			{name: "NaN", text: "HELLO", shift: "NaN", field: "shift", message: "shift must be a number"},
			{name: "infinity", text: "HELLO", shift: "-Inf", field: "shift", message: "shift must be a number"},
			{name: "overflow", text: "HELLO", shift: "1e400", field: "shift", message: "shift must be a number"},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ShiftParams(tt.text, tt.shift)
				if !errors.Is(err, shared.ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}

				var argErr *shared.ArgumentError
				if !errors.As(err, &argErr) {
					t.Fatalf("expected *shared.ArgumentError, got %T", err)
				}
				if argErr.Field != tt.field {
					t.Errorf("expected field %q, got %q", tt.field, argErr.Field)
				}
				if err.Error() != tt.message {
					t.Errorf("expected message %q, got %q", tt.message, err.Error())
				}
			})
		}
	})
}
