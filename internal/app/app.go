package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/modslots/internal/config"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/ctxlog"
	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/internal/netsync"
	"github.com/vk/modslots/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	ctx        context.Context
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	registry   *registry.Registry
	session    *loader.Session
	transport  netsync.Transport
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Go extensions passed
// in exts replace the ones selected by name in cfg. Configuration and
// extension errors are fatal and panic.
func NewApp(outW io.Writer, cfg *Config, cfgLoader config.Loader, exts ...loader.Extension) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.ConfigPath != "" {
		paths = append(paths, cfg.ConfigPath)
	}
	if cfg.ModsPath != "" {
		paths = append(paths, cfg.ModsPath)
	}

	model := config.NewModel()
	if len(paths) > 0 {
		loaded, err := cfgLoader.Load(ctx, paths...)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model = loaded
	}
	logger.Debug("Configuration loaded.", "mods", len(model.Mods))

	reg := registry.New(logger,
		registry.WithBuiltin(content.DefaultBuiltin().Merge(kindCounts(model.Session.Builtin))),
		registry.WithCapacity(kindCounts(model.Session.Capacity)),
	)

	if len(exts) == 0 {
		selected, err := extensionsByName(cfg.Extensions)
		if err != nil {
			panic(err)
		}
		exts = selected
	}
	manifests, err := loader.FromModel(model)
	if err != nil {
		panic(fmt.Errorf("invalid mod manifest: %w", err))
	}
	exts = append(exts, manifests...)

	session, err := loader.NewSession(reg, exts...)
	if err != nil {
		panic(err)
	}
	logger.Debug("Extension session prepared.", "extensions", len(exts))

	return &App{
		outW:     outW,
		ctx:      ctx,
		logger:   logger,
		config:   cfg,
		model:    model,
		registry: reg,
		session:  session,
	}
}

func kindCounts(in map[string]int) map[content.Kind]int {
	out := make(map[content.Kind]int, len(in))
	for k, v := range in {
		out[content.Kind(k)] = v
	}
	return out
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Session returns the application's extension session.
func (a *App) Session() *loader.Session {
	return a.session
}

// Transport returns the packet transport opened by Run, or nil before Run.
func (a *App) Transport() netsync.Transport {
	return a.transport
}
