package app

import (
	"context"
	"fmt"

	"github.com/contentkit/taxokit/internal/ctxlog"
)

// Run executes the bootstrap: it optionally starts the admin server, then
// registers every taxonomy with the host in registry order. Registration
// order is owned here, not by the taxonomies themselves.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.AdminPort > 0 {
		a.startAdminServer(appConfig.AdminPort)
	}

	a.logger.Info("Registering taxonomies with host...", "count", a.registry.Len(), "keys", a.registry.Keys())
	if err := a.registry.RegisterAll(ctx, a.host); err != nil {
		return fmt.Errorf("taxonomy registration failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
