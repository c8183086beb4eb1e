package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox-control/internal/backend"
	"github.com/atomicstack/listbox-control/internal/logging/events"
	"github.com/atomicstack/listbox-control/internal/menu"
	"github.com/atomicstack/listbox-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ItemsFile     string
	Filter        string
	Width         int
	ShowFooter    bool
	Watch         bool
	WatchInterval time.Duration
}

var newProgramFn = func(model tea.Model) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// LoadDefinition returns the menu named by cfg, narrowed by cfg.Filter.
// Without an items file the built-in menu is used.
func LoadDefinition(cfg Config) (menu.Definition, error) {
	def := menu.Default()
	source := "default"
	if cfg.ItemsFile != "" {
		loaded, err := menu.LoadFile(cfg.ItemsFile)
		if err != nil {
			return menu.Definition{}, err
		}
		def = loaded
		source = cfg.ItemsFile
	}
	def.Items = menu.Filter(def.Items, cfg.Filter)
	events.App.ItemsLoaded(source, len(def.Items), cfg.Filter)
	return def, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	def, err := LoadDefinition(cfg)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	var reload ui.Loader
	if cfg.ItemsFile != "" {
		reload = func() (menu.Definition, error) { return LoadDefinition(cfg) }
	}
	model := ui.NewModel(def, cfg.Width, cfg.ShowFooter, reload)
	defer model.Close()

	if cfg.Watch && cfg.ItemsFile != "" {
		watcher := backend.NewWatcher(cfg.ItemsFile, cfg.WatchInterval, backend.Loader(reload))
		defer watcher.Stop()
		model.Watch(watcher)
	}

	_, err = newProgramFn(model).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
