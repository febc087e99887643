package app

import (
	"fmt"
	"os"

	"launchbox/internal/catalog"
	"launchbox/internal/config"
	"launchbox/internal/process"
	"launchbox/internal/registry"
	"launchbox/internal/session"
)

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to a .launchbox file. When empty it is searched for
	// from StartDir (or the current directory) upwards.
	ConfigPath string
	StartDir   string
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	cfg config.Config
	cat catalog.Catalog
	reg *registry.Registry
}

// New locates and loads the configuration and returns the shared controller.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		start := opts.StartDir
		if start == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			start = wd
		}
		found, err := config.Find(start)
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cat, err := config.LoadCatalog(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewWithCatalog(cfg, cat), nil
}

// NewWithCatalog builds a controller from already loaded pieces.
func NewWithCatalog(cfg config.Config, cat catalog.Catalog) *App {
	reg := registry.New(
		process.WithStartTimeout(cfg.StartTimeout),
		process.WithPollInterval(cfg.PollInterval),
	)
	return &App{cfg: cfg, cat: cat, reg: reg}
}

// Config returns the loaded launcher settings.
func (a *App) Config() config.Config {
	return a.cfg
}

// Catalog returns the command menu.
func (a *App) Catalog() catalog.Catalog {
	return a.cat
}

// Registry returns the live process registry.
func (a *App) Registry() *registry.Registry {
	return a.reg
}

// Session returns a fresh interactive session over the shared registry.
func (a *App) Session() *session.Session {
	return session.New(a.cat, a.reg, a.cfg.Dir)
}
