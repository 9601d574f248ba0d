package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/spiro/internal/request"
)

const thetaStep = math.Pi / 16

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		q := &m.query
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PenOut):
			q.PenRadius = roundStep(min(1, q.PenRadius+penStep))
		case key.Matches(msg, m.keys.PenIn):
			q.PenRadius = roundStep(max(0, q.PenRadius-penStep))
		case key.Matches(msg, m.keys.ThetaUp):
			q.PenTheta = wrapAngle(q.PenTheta + thetaStep)
		case key.Matches(msg, m.keys.ThetaDown):
			q.PenTheta = wrapAngle(q.PenTheta - thetaStep)
		case key.Matches(msg, m.keys.Inside):
			q.Inside = request.Bool(!q.IsInside())
		case key.Matches(msg, m.keys.Guide):
			q.Guide = q.Guide.Next()
			if q.Guide.NeedsParam() && q.GuideParam == nil {
				q.GuideParam = request.Float(defaultRodParam)
			}
		case key.Matches(msg, m.keys.Wheel):
			q.Wheel = q.Wheel.Next()
			if q.Wheel.NeedsParam() && q.WheelParam == nil {
				q.WheelParam = request.Float(defaultRodParam)
			}
		case key.Matches(msg, m.keys.WheelGrow):
			q.WheelRadius += radiusStep
		case key.Matches(msg, m.keys.WheelShrink):
			q.WheelRadius -= radiusStep
		case key.Matches(msg, m.keys.GuideGrow):
			q.GuideRadius += radiusStep
		case key.Matches(msg, m.keys.GuideShrink):
			q.GuideRadius -= radiusStep
		default:
			return m, nil
		}
		_ = m.recompute()
		return m, nil
	}
	return m, nil
}

// roundStep drops the error accumulated by repeatedly adding penStep.
func roundStep(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

// wrapAngle maps th into [0, 2π).
func wrapAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th < 1e-12 || 2*math.Pi-th < 1e-12 {
		return 0
	}
	return th
}
