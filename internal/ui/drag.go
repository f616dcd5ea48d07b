package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/stagger/internal/curve"
	"github.com/olivier-w/stagger/internal/plot"
)

// Toolbar hit zone IDs.
const (
	zonePresetUniform   = "preset-uniform"
	zonePresetQuadratic = "preset-quadratic"
	zonePresetRandom    = "preset-random"
	zoneFlip            = "flip"
	zoneReset           = "reset"
	zoneMaxDelay        = "max-delay"
)

// dragState tracks one drag gesture: idle -> dragging -> idle. At most one
// marker is dragged at a time. The candidate y is presentation only; the
// store is untouched until the gesture ends.
type dragState struct {
	active bool
	index  int     // Marker.Index of the grabbed marker
	y      float64 // clamped candidate position
}

func (d dragState) preview() *plot.Preview {
	if !d.active {
		return nil
	}
	return &plot.Preview{Index: d.index, Y: d.y}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if handled, next := m.pressToolbar(msg); handled {
			return next, nil
		}
		if mk, ok := m.markerAt(msg.X, msg.Y); ok {
			m.drag = dragState{active: true, index: mk.Index, y: mk.Y}
		}

	case tea.MouseActionMotion:
		if m.drag.active {
			// Horizontal movement is ignored; only the row repositions,
			// clamped when the pointer leaves the plot.
			m.drag.y = m.mapper.YFor(msg.Y)
		}

	case tea.MouseActionRelease:
		if m.drag.active {
			m.editor.CommitDrag(m.drag.index, m.drag.y)
			m.log.Debug().
				Int("marker", m.drag.index).
				Float64("y", m.drag.y).
				Msg("drag committed")
			m.drag = dragState{}
		}
	}
	return m, nil
}

func (m Model) pressToolbar(msg tea.MouseMsg) (bool, Model) {
	if m.zones == nil {
		return false, m
	}
	switch {
	case m.zones.Get(zonePresetUniform).InBounds(msg):
		m.applyPreset(curve.Uniform)
	case m.zones.Get(zonePresetQuadratic).InBounds(msg):
		m.applyPreset(curve.Quadratic)
	case m.zones.Get(zonePresetRandom).InBounds(msg):
		m.applyPreset(curve.Random)
	case m.zones.Get(zoneFlip).InBounds(msg):
		m.editor.ToggleFlip()
	case m.zones.Get(zoneReset).InBounds(msg):
		m.editor.Reset()
	case m.zones.Get(zoneMaxDelay).InBounds(msg):
		m.inputMode = true
		m.input.SetValue(formatMaxDelay(m.editor.Config().MaxDelay))
		m.input.Focus()
	default:
		return false, m
	}
	return true, m
}

// markerAt finds the marker rendered nearest to a cell, within a one-cell
// tolerance. Marker cells are pure mapper geometry, so no zone scanning is
// needed; ties go to the earliest stored marker.
func (m Model) markerAt(col, row int) (curve.Marker, bool) {
	const tolerance = 1

	best := curve.Marker{}
	bestDist := -1
	for _, mk := range m.editor.Markers() {
		dc := absDiff(m.mapper.Col(mk.X), col)
		dr := absDiff(m.mapper.Row(mk.Y), row)
		if dc > tolerance || dr > tolerance {
			continue
		}
		dist := dc + dr
		if bestDist == -1 || dist < bestDist {
			best = mk
			bestDist = dist
		}
	}
	return best, bestDist != -1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
