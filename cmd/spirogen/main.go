// Command spirogen serves, renders and previews spirograph patterns.
//
// Usage:
//
//	spirogen serve [-config file] [-addr host:port]
//	spirogen render -jobs file [-out dir] [-workers n] [-config file]
//	spirogen preview [-guide kind] [-wheel kind] [-guide-radius r] ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"honnef.co/go/spiro/internal/config"
	"honnef.co/go/spiro/internal/injector"
	"honnef.co/go/spiro/internal/log"
	"honnef.co/go/spiro/internal/render"
)

const usage = `usage: spirogen <command> [flags]

commands:
  serve    run the HTTP and WebSocket service
  render   render the patterns of a job file to PNG or SVG
  preview  explore a pattern in the terminal
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "serve":
		err = serve(ctx, args)
	case "render":
		err = renderJobs(ctx, args)
	case "preview":
		err = preview(args)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "spirogen: unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "spirogen:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func serve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML configuration `file`")
	addr := fs.String("addr", "", "listen address, overriding the configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.ListenAddr = *addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	srv, cleanup, err := injector.InitializeServer(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	// The signal context is already cancelled; Stop applies its own
	// shutdown timeout.
	return srv.Stop(context.Background())
}

func renderJobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	jobsPath := fs.String("jobs", "", "YAML job `file`")
	out := fs.String("out", ".", "output `directory` for relative job outputs")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "number of jobs rendered at once")
	cfgPath := fs.String("config", "", "YAML configuration `file`, for logging settings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobsPath == "" {
		fs.Usage()
		return errors.New("render: -jobs is required")
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	logger, cleanup, err := injector.InitializeLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Open(*jobsPath)
	if err != nil {
		return err
	}
	js, err := render.LoadJobs(f)
	f.Close()
	if err != nil {
		return err
	}

	logger.Info("Rendering jobs",
		log.Int("jobs", len(js.Jobs)),
		log.Int("workers", *workers),
		log.String("dir", *out))
	return render.Run(ctx, js, *out, *workers, logger)
}
