package main

import (
	"flag"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/spiro/internal/request"
	"honnef.co/go/spiro/internal/tui"
)

func preview(args []string) error {
	q, err := previewQuery(args)
	if err != nil {
		return err
	}
	m, err := tui.New(q)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// previewQuery builds the starting query from the preview flags. The
// defaults describe a deltoid.
func previewQuery(args []string) (request.Query, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.String("guide", "Circle", "guide shape, Circle or Rod")
	fs.String("wheel", "Circle", "wheel shape, Circle or Rod")
	fs.Float64("guide-radius", 3, "guide radius")
	fs.Float64("wheel-radius", 1, "wheel radius")
	fs.Float64("pen-radius", 1, "pen distance from the wheel's centre, in [0, 1]")
	fs.Float64("pen-theta", 0, "pen angle, in [0, 2π]")
	fs.Float64("guide-param", 0, "guide aspect ratio, required for a Rod")
	fs.Float64("wheel-param", 0, "wheel aspect ratio, required for a Rod")
	fs.Bool("inside", true, "roll the wheel inside the guide")
	if err := fs.Parse(args); err != nil {
		return request.Query{}, err
	}

	// Defaults count as given, shape parameters only when set explicitly.
	v := url.Values{}
	fs.VisitAll(func(f *flag.Flag) {
		if f.Name == "guide-param" || f.Name == "wheel-param" {
			return
		}
		v.Set(queryName(f.Name), f.Value.String())
	})
	fs.Visit(func(f *flag.Flag) {
		v.Set(queryName(f.Name), f.Value.String())
	})

	return request.ParseQuery(v)
}

var queryNames = map[string]string{
	"guide-radius": "guide_radius",
	"wheel-radius": "wheel_radius",
	"pen-radius":   "pen_radius",
	"pen-theta":    "pen_theta",
	"guide-param":  "guide_param",
	"wheel-param":  "wheel_param",
}

// queryName maps a flag name to the URL parameter of the same meaning.
func queryName(flagName string) string {
	if n, ok := queryNames[flagName]; ok {
		return n
	}
	return flagName
}
