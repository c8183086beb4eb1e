package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/listbox-control/internal/app"
	"github.com/atomicstack/listbox-control/internal/backend"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envItemsFile     = "LISTBOX_CONTROL_ITEMS_FILE"
	envFilter        = "LISTBOX_CONTROL_FILTER"
	envWidth         = "LISTBOX_CONTROL_WIDTH"
	envShowFooter    = "LISTBOX_CONTROL_FOOTER"
	envWatch         = "LISTBOX_CONTROL_WATCH"
	envWatchInterval = "LISTBOX_CONTROL_WATCH_INTERVAL"
	envTrace         = "LISTBOX_CONTROL_TRACE"
	envLogFile       = "LISTBOX_CONTROL_LOG_FILE"
	envLogLevel      = "LISTBOX_CONTROL_LOG_LEVEL"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags take
// precedence over the environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("listbox-control", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	itemsFile := fs.String("items-file", envOrDefault(env, envItemsFile, ""), "menu definition file (.toml, .yaml or .yml)")
	filter := fs.String("filter", envOrDefault(env, envFilter, ""), "fuzzy filter applied to item labels")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired layout width in cells (0 uses terminal width)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the menu when the items file changes")
	interval := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, backend.DefaultInterval), "polling interval for --watch")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "minimum log level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *interval <= 0 {
		return Config{}, fmt.Errorf("watch-interval must be > 0 (got %s)", *interval)
	}

	cfg := Config{
		App: app.Config{
			ItemsFile:     *itemsFile,
			Filter:        *filter,
			Width:         *width,
			ShowFooter:    *footer,
			Watch:         *watch,
			WatchInterval: *interval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"itemsFile":     *itemsFile,
			"filter":        *filter,
			"width":         strconv.Itoa(*width),
			"footer":        strconv.FormatBool(*footer),
			"watch":         strconv.FormatBool(*watch),
			"watchInterval": interval.String(),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"logLevel":      *logLevel,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks option combinations that flag parsing alone cannot.
func Validate(cfg Config) error {
	if cfg.App.Watch && cfg.App.ItemsFile == "" {
		return fmt.Errorf("--watch requires --items-file")
	}
	return nil
}
