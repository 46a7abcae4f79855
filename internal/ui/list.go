package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = historyItem{}

// historyItem is a kept cipher result shown in the history [list.Model].
type historyItem struct {
	text   string
	shift  string
	result string
}

func (i historyItem) FilterValue() string { return i.result }
func (i historyItem) Title() string       { return i.result }
func (i historyItem) Description() string {
	return fmt.Sprintf("%q shifted by %s", i.text, i.shift)
}
