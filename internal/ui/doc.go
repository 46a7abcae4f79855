// Package ui implements an interactive cipher playground using bubbletea's Elm architecture.
//
// The [Model] holds two text inputs (the text and the shift amount) and re-runs the shift transform on
// every keystroke, so the output pane always shows the current result or the validation message.
// Pressing enter keeps the current result in a history list.
//
// Keyboard: tab/shift+tab move focus between the inputs and the history list, enter saves, esc or ctrl+c quits.
// Contextual help is rendered with charmbracelet/bubbles/help.
package ui
