// Package cipher implements the shift transform served on /cipher.
//
// [Shift] moves every letter a fixed number of places through the 26-letter
// alphabet A..Z, upper-casing the letters it moves. Characters outside the
// alphabet range pass through untouched, in their original case. The output
// always has the same number of runes as the input.
//
// Callers holding raw strings (query parameters, CLI arguments, TUI fields)
// go through [ShiftParams], which validates and parses before transforming
// and reports bad input as a
// [*shared.ArgumentError].
//
// This is a teaching toy. It offers no confidentiality.
package cipher
