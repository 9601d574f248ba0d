// Package tui implements an interactive terminal preview of patterns,
// drawn with braille characters.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/spiro"
	"honnef.co/go/spiro/internal/request"
)

const (
	penStep    = 0.05
	radiusStep = 0.5
	// rods need a parameter; this one is used when cycling to a rod
	defaultRodParam = 0.3
	outlineRes      = 120
)

// Model is the state of the preview. The query may be invalid while the user
// is adjusting it; the last valid pattern stays on screen until it is fixed.
type Model struct {
	width, height int

	query   request.Query
	pts     []spiro.Point
	outline []spiro.Point
	status  string
	invalid bool

	keys keyMap
	help help.Model
}

// New returns a preview of q. q must describe a valid pattern.
func New(q request.Query) (Model, error) {
	m := Model{
		width:  80,
		height: 24,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.query = q
	if err := m.recompute(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Query returns the query currently being edited.
func (m Model) Query() request.Query {
	return m.query
}

// recompute rebuilds the pattern from the current query. On failure the
// previous pattern is kept and the error shown in the status line.
func (m *Model) recompute() error {
	p, err := m.query.Pattern()
	if err != nil {
		m.status = err.Error()
		m.invalid = true
		return err
	}
	m.pts = p.Points()
	m.outline = p.Outline(outlineRes)
	m.status = m.query.Key()
	m.invalid = false
	return nil
}
