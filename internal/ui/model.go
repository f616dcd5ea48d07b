package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/olivier-w/stagger/internal/curve"
	"github.com/olivier-w/stagger/internal/plot"
)

// Vertical layout: header block above the plot, axis and status block
// below. The mapper's rectangle is derived from these so mouse rows map
// straight onto normalized curve space.
const (
	plotTop    = 5 // blank, header, blank, toolbar, blank
	plotIndent = 2 // left margin before the seconds gutter
	plotLeft   = plotIndent + plot.Gutter
	chromeRows = plotTop + 2 + 3 // + axis rows + blank, status, help
)

// Model is the Bubbletea model for the curve editor screen.
type Model struct {
	editor *curve.Editor
	mapper curve.Mapper
	zones  *zone.Manager
	log    zerolog.Logger

	width  int
	height int

	input     textinput.Model
	inputMode bool

	drag     dragState
	accepted bool
	quitting bool
}

// New creates the editor screen. The editor must already hold the item
// layout; logger may be a Nop logger.
func New(editor *curve.Editor, logger zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = strconv.FormatFloat(curve.DefaultMaxDelay, 'f', -1, 64)
	ti.CharLimit = 6
	ti.Width = 8

	m := Model{
		editor: editor,
		zones:  zone.New(),
		log:    logger,
		input:  ti,
	}
	m.relayout()
	return m
}

// Accepted reports whether the user confirmed the schedule rather than
// cancelling.
func (m Model) Accepted() bool {
	return m.accepted
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("stagger")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			next, cmd := m.updateMaxDelayInput(msg)
			return next, cmd
		}
		next, cmd := m.handleKey(msg)
		return next, cmd

	case tea.MouseMsg:
		next, cmd := m.handleMouse(msg)
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	switch msg.String() {
	case "1", "u":
		m.applyPreset(curve.Uniform)
	case "2":
		m.applyPreset(curve.Quadratic)
	case "3", "n":
		m.applyPreset(curve.Random)
	case "f":
		m.editor.ToggleFlip()
		m.log.Debug().Bool("flipped", m.editor.Config().Flipped).Msg("curve flipped")
	case "x":
		m.editor.Reset()
		m.log.Debug().Msg("curve reset")
	case "m":
		m.inputMode = true
		m.input.SetValue(formatMaxDelay(m.editor.Config().MaxDelay))
		m.input.Focus()
		return m, textinput.Blink
	case "enter":
		m.accepted = true
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	return m, nil
}

func (m Model) updateMaxDelayInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editor.SetMaxDelayText(m.input.Value())
		m.log.Debug().Float64("max_delay", m.editor.Config().MaxDelay).Msg("max delay set")
		m.inputMode = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.inputMode = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyPreset(kind curve.Kind) {
	m.editor.ApplyPreset(kind)
	m.log.Debug().Stringer("kind", kind).Msg("preset applied")
}

// relayout rebuilds the coordinate mapper for the current window. It runs
// on every WindowSizeMsg, before any later mouse event is processed, so
// drags never see stale bounds.
func (m *Model) relayout() {
	w := m.width
	if w < 40 {
		w = 80
	}
	h := m.height
	if h < chromeRows+6 {
		h = chromeRows + 12
	}
	m.mapper = curve.NewMapper(plotLeft, plotTop, w-plotLeft-plotIndent, h-chromeRows)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.editor.Config()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("stagger") +
		statusStyle.Render(" — delay curve editor") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + m.toolbar(cfg) + "\n")
	b.WriteString("\n")

	frame := plot.Render(m.editor.Markers(), m.mapper, cfg.MaxDelay, m.drag.preview())
	for line := range strings.SplitSeq(frame, "\n") {
		b.WriteString(strings.Repeat(" ", plotIndent) + plotStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + statusStyle.Render(m.statusLine(cfg)) + "\n")
	b.WriteString("  " + helpStyle.Render(helpText(m.inputMode)) + "\n")

	return m.zones.Scan(b.String())
}

func (m Model) toolbar(cfg curve.Config) string {
	button := func(id, label string, active bool) string {
		style := buttonStyle
		if active {
			style = activeButtonStyle
		}
		return m.zones.Mark(id, style.Render(label))
	}

	parts := []string{
		button(zonePresetUniform, "uniform", cfg.Kind == curve.Uniform),
		button(zonePresetQuadratic, "quadratic", cfg.Kind == curve.Quadratic),
		button(zonePresetRandom, "random", cfg.Kind == curve.Random),
		button(zoneFlip, "flip", cfg.Flipped),
		button(zoneReset, "reset", false),
	}

	maxLabel := "max " + formatMaxDelay(cfg.MaxDelay) + "s"
	if m.inputMode {
		maxLabel = "max " + m.input.View()
	}
	parts = append(parts, m.zones.Mark(zoneMaxDelay, buttonStyle.Render(maxLabel)))

	return strings.Join(parts, " ")
}

func (m Model) statusLine(cfg curve.Config) string {
	kind := cfg.Kind.String()
	if cfg.Flipped {
		kind += " (flipped)"
	}
	s := fmt.Sprintf("%s  %d items  max %ss", kind, len(m.editor.Markers()),
		formatMaxDelay(cfg.MaxDelay))
	if m.drag.active {
		s += fmt.Sprintf("  dragging #%d → %.1fs",
			m.drag.index+1, curve.Seconds(m.drag.y, cfg.MaxDelay))
	}
	return s
}

func formatMaxDelay(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
