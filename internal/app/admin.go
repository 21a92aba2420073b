package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contentkit/taxokit/internal/taxonomy"
)

// taxonomyView is the JSON shape served by the /taxonomies endpoint.
type taxonomyView struct {
	Key       string        `json:"key"`
	PostTypes []string      `json:"post_types"`
	Args      taxonomy.Args `json:"args"`
}

// healthHandler reports liveness and logs the request.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// taxonomiesHandler serves a read-only snapshot of the registered
// taxonomies and the arguments the host was (or would be) given.
func (a *App) taxonomiesHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Taxonomies endpoint hit.", "remote_addr", r.RemoteAddr)

	views := make([]taxonomyView, 0, a.registry.Len())
	for _, key := range a.registry.Keys() {
		t, ok := a.registry.Get(key)
		if !ok {
			continue
		}
		cfg := t.Config()
		views = append(views, taxonomyView{
			Key:       key,
			PostTypes: cfg.PostTypes,
			Args:      t.Args(t.Labels()),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		a.logger.Error("Failed to encode taxonomies response", "error", err)
	}
}

// startAdminServer initializes and runs the read-only admin HTTP server.
func (a *App) startAdminServer(port int) {
	a.logger.Debug("Configuring admin server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/taxonomies", a.taxonomiesHandler)

	addr := fmt.Sprintf(":%d", port)
	a.adminServer = &http.Server{Addr: addr, Handler: mux}

	go func() {
		a.logger.Info("Admin server starting", "address", fmt.Sprintf("http://localhost%s/taxonomies", addr))
		if err := a.adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Admin server failed", "error", err)
		}
	}()
}
