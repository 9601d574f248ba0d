package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PenOut      key.Binding
	PenIn       key.Binding
	ThetaDown   key.Binding
	ThetaUp     key.Binding
	Inside      key.Binding
	Guide       key.Binding
	Wheel       key.Binding
	WheelGrow   key.Binding
	WheelShrink key.Binding
	GuideGrow   key.Binding
	GuideShrink key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PenOut: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pen out"),
		),
		PenIn: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pen in"),
		),
		ThetaDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pen angle -"),
		),
		ThetaUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pen angle +"),
		),
		Inside: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inside/outside"),
		),
		Guide: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "guide shape"),
		),
		Wheel: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wheel shape"),
		),
		WheelGrow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wheel bigger"),
		),
		WheelShrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "wheel smaller"),
		),
		GuideGrow: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "guide bigger"),
		),
		GuideShrink: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "guide smaller"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PenOut, k.ThetaUp, k.Inside, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PenOut, k.PenIn, k.ThetaDown, k.ThetaUp},
		{k.Inside, k.Guide, k.Wheel},
		{k.WheelGrow, k.WheelShrink, k.GuideGrow, k.GuideShrink},
		{k.Help, k.Quit},
	}
}
