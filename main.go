package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/listbox-control/internal/app"
	"github.com/atomicstack/listbox-control/internal/config"
	"github.com/atomicstack/listbox-control/internal/logging"
	"github.com/atomicstack/listbox-control/internal/logging/events"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

var runAppFn = app.Run

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

// run loads configuration, prepares logging and runs the program, returning
// the process exit code.
func run(args, environ []string, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetLevel(cfg.Logging.Level)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg))
	}

	if err := runAppFn(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logLevel"] = cfg.Logging.Level
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyProbe  `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func probeTTY(name string, f *os.File) ttyProbe {
	p := ttyProbe{Name: name}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return p
	}
	p.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width, p.Height = width, height
	return p
}

// collectTTYDetails probes the standard descriptors. The first terminal with
// a known size is reported as detected.
func collectTTYDetails() ttyDetails {
	details := ttyDetails{Probes: []ttyProbe{
		probeTTY("stdin", os.Stdin),
		probeTTY("stdout", os.Stdout),
		probeTTY("stderr", os.Stderr),
	}}
	for i := range details.Probes {
		if p := details.Probes[i]; p.IsTerminal && p.Error == "" {
			details.Detected = &details.Probes[i]
			break
		}
	}
	return details
}
