package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(inputMode bool) string {
	if inputMode {
		return "enter apply  esc back"
	}
	return "1/2/3 preset  f flip  x reset  m max delay  drag markers  enter accept  q quit"
}
