package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spiro"
	"honnef.co/go/spiro/internal/log"
	"honnef.co/go/spiro/internal/request"
)

const (
	defaultSize        = 800
	guideResolution    = 200
	defaultStrokeWidth = 2
)

var ErrInvalidJobs = errors.New("invalid job file")

// Jobs is a batch of patterns to render, as read from a YAML job file:
//
//	width: 800
//	height: 800
//	stroke_width: 2
//	guide: true
//	jobs:
//	  - name: deltoid
//	    output: deltoid.png
//	    query:
//	      guide: Circle
//	      wheel: Circle
//	      guide_radius: 3
//	      wheel_radius: 1
//	      pen_radius: 1
//	      pen_theta: 0
//	      inside: true
//
// The output format is chosen by the file extension, .png or .svg.
type Jobs struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	StrokeWidth float64 `yaml:"stroke_width"`
	// Guide draws the guide's outline beneath every pattern.
	Guide bool  `yaml:"guide"`
	Jobs  []Job `yaml:"jobs"`
}

type Job struct {
	Name   string        `yaml:"name"`
	Output string        `yaml:"output"`
	Query  request.Query `yaml:"query"`
}

// LoadJobs decodes and checks a job file. Queries are validated too, so
// that a bad job is reported before anything is rendered.
func LoadJobs(r io.Reader) (Jobs, error) {
	var js Jobs
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&js); err != nil {
		if errors.Is(err, io.EOF) {
			return Jobs{}, fmt.Errorf("%w: no jobs", ErrInvalidJobs)
		}
		return Jobs{}, fmt.Errorf("%w: %w", ErrInvalidJobs, err)
	}
	if js.Width == 0 {
		js.Width = defaultSize
	}
	if js.Height == 0 {
		js.Height = defaultSize
	}
	if js.StrokeWidth == 0 {
		js.StrokeWidth = defaultStrokeWidth
	}
	if err := js.Validate(); err != nil {
		return Jobs{}, err
	}
	return js, nil
}

func (js Jobs) Validate() error {
	if js.Width <= 0 || js.Height <= 0 {
		return fmt.Errorf("%w: invalid image size %dx%d", ErrInvalidJobs, js.Width, js.Height)
	}
	if js.StrokeWidth < 0 {
		return fmt.Errorf("%w: negative stroke width", ErrInvalidJobs)
	}
	if len(js.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidJobs)
	}
	names := make(map[string]bool, len(js.Jobs))
	outputs := make(map[string]bool, len(js.Jobs))
	for i, job := range js.Jobs {
		if job.Name == "" {
			return fmt.Errorf("%w: job %d has no name", ErrInvalidJobs, i+1)
		}
		if names[job.Name] {
			return fmt.Errorf("%w: duplicate job name %q", ErrInvalidJobs, job.Name)
		}
		names[job.Name] = true
		if outputs[job.Output] {
			return fmt.Errorf("%w: job %q: output %q written by another job", ErrInvalidJobs, job.Name, job.Output)
		}
		outputs[job.Output] = true
		if _, err := job.format(); err != nil {
			return fmt.Errorf("%w: job %q: %w", ErrInvalidJobs, job.Name, err)
		}
		if _, err := job.Query.Pattern(); err != nil {
			return fmt.Errorf("%w: job %q: %w", ErrInvalidJobs, job.Name, err)
		}
	}
	return nil
}

type format int

const (
	formatPNG format = iota
	formatSVG
)

func (job Job) format() (format, error) {
	switch strings.ToLower(filepath.Ext(job.Output)) {
	case ".png":
		return formatPNG, nil
	case ".svg":
		return formatSVG, nil
	default:
		return 0, fmt.Errorf("output %q must end in .png or .svg", job.Output)
	}
}

// Render draws one job to w.
func (js Jobs) Render(w io.Writer, job Job) error {
	f, err := job.format()
	if err != nil {
		return err
	}
	p, err := job.Query.Pattern()
	if err != nil {
		return err
	}
	pts := p.Points()
	var guide []spiro.Point
	if js.Guide {
		guide = p.Outline(guideResolution)
	}

	switch f {
	case formatSVG:
		side := float64(max(js.Width, js.Height))
		return SVG(w, pts, SVGOptions{
			StrokeWidth: js.StrokeWidth / side,
			Guide:       guide,
		})
	default:
		return PNG(w, pts, PNGOptions{
			Width:       js.Width,
			Height:      js.Height,
			StrokeWidth: js.StrokeWidth,
			Guide:       guide,
		})
	}
}

// Run renders every job into dir, at most workers at a time. Relative
// outputs are resolved against dir. The first failure cancels the jobs
// that haven't started yet and is returned.
func Run(ctx context.Context, js Jobs, dir string, workers int, logger log.Log) error {
	if workers <= 0 {
		workers = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range js.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out := job.Output
			if !filepath.IsAbs(out) {
				out = filepath.Join(dir, out)
			}
			if err := js.renderFile(out, job); err != nil {
				logger.Error("Job failed", log.String("job", job.Name), log.Error(err))
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			logger.Info("Job rendered",
				log.String("job", job.Name),
				log.String("output", out),
				log.Duration("duration", time.Since(start)))
			return nil
		})
	}
	return g.Wait()
}

func (js Jobs) renderFile(path string, job Job) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return js.Render(f, job)
}
