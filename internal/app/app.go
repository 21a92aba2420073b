package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/contentkit/taxokit/internal/config"
	"github.com/contentkit/taxokit/internal/ctxlog"
	"github.com/contentkit/taxokit/internal/registry"
	"github.com/contentkit/taxokit/internal/taxonomy"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	host     taxonomy.Host

	adminServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry.
// Construction wires everything together but performs no host calls; the
// bootstrap registration pass belongs to Run.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, host taxonomy.Host, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load taxonomy definitions from files, when a path is configured.
	model := config.NewModel()
	if appConfig.TaxonomiesPath != "" {
		loaded, err := loader.Load(ctx, appConfig.TaxonomiesPath)
		if err != nil {
			// A failure to load definitions is a fatal startup error.
			panic(fmt.Errorf("failed to load taxonomy definitions: %w", err))
		}
		model = loaded
	}
	logger.Debug("Taxonomy definitions loaded into unified model.", "count", len(model.Order))

	// Create the registry and let compiled-in modules contribute first, so
	// built-ins keep stable keys that definition files cannot silently take.
	reg := registry.New(taxonomy.NewHooks())
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	// A key collision between modules and definition files is a
	// configuration mistake we cannot order around, so this panics too.
	reg.PopulateFromModel(model)
	logger.Debug("Registry populated from definition model.", "taxonomies", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		host:     host,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
