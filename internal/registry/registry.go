package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contentkit/taxokit/internal/config"
	"github.com/contentkit/taxokit/internal/ctxlog"
	"github.com/contentkit/taxokit/internal/taxonomy"
)

// Module is the interface compiled-in plugins implement to contribute
// taxonomies (and filters) to an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry maps taxonomy keys to their single cached instance. One
// Registry exists per application instance, owned by the composition root.
type Registry struct {
	taxonomies map[string]*taxonomy.Taxonomy
	order      []string
	hooks      *taxonomy.Hooks
}

// New creates an empty Registry using the given filter bus.
func New(hooks *taxonomy.Hooks) *Registry {
	if hooks == nil {
		hooks = taxonomy.NewHooks()
	}
	return &Registry{
		taxonomies: make(map[string]*taxonomy.Taxonomy),
		hooks:      hooks,
	}
}

// Hooks returns the registry's filter bus, for modules that want to
// post-process labels or arguments.
func (r *Registry) Hooks() *taxonomy.Hooks { return r.hooks }

// Add inserts a taxonomy under its key. Adding two taxonomies with the
// same key is a programmer error and panics, as does an empty key.
func (r *Registry) Add(t *taxonomy.Taxonomy) {
	key := t.Key()
	if key == "" {
		panic("taxonomy with empty key cannot be added to the registry")
	}
	if _, exists := r.taxonomies[key]; exists {
		panic(fmt.Sprintf("taxonomy with key '%s' already registered", key))
	}
	slog.Debug("Adding taxonomy to registry.", "key", key)
	r.taxonomies[key] = t
	r.order = append(r.order, key)
}

// Get returns the cached instance for a key. Repeated calls with the same
// key return the identical instance.
func (r *Registry) Get(key string) (*taxonomy.Taxonomy, bool) {
	t, ok := r.taxonomies[key]
	return t, ok
}

// Keys returns the taxonomy keys in insertion order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered taxonomies.
func (r *Registry) Len() int { return len(r.taxonomies) }

// PopulateFromModel constructs taxonomies from the loaded definitions and
// adds them, applying the compiled defaults to omitted attributes.
func (r *Registry) PopulateFromModel(model *config.Model) {
	for _, key := range model.Order {
		r.Add(taxonomy.New(configFromDefinition(model.Definitions[key])))
	}
}

// RegisterAll registers every taxonomy against the host in insertion
// order. It aborts on the first failure; host errors propagate
// untranslated.
func (r *Registry) RegisterAll(ctx context.Context, host taxonomy.Host) error {
	logger := ctxlog.FromContext(ctx)
	for _, key := range r.order {
		if err := r.taxonomies[key].Register(ctx, host, r.hooks); err != nil {
			return err
		}
		logger.Debug("Taxonomy registered with host.", "key", key)
	}
	logger.Info("All taxonomies registered with host.", "count", len(r.order))
	return nil
}

// configFromDefinition translates a loaded definition into the typed
// configuration, filling omitted toggles from the defaults.
func configFromDefinition(def *config.Definition) taxonomy.Config {
	cfg := taxonomy.DefaultConfig()
	cfg.Key = def.Key
	cfg.Slug = def.Slug
	cfg.Singular = def.Singular
	cfg.Plural = def.Plural
	cfg.MenuName = def.MenuName
	cfg.PostTypes = def.PostTypes

	if def.Hierarchical != nil {
		cfg.Hierarchical = *def.Hierarchical
	}
	if def.ShowUI != nil {
		cfg.ShowUI = *def.ShowUI
	}
	if def.ShowAdminColumn != nil {
		cfg.ShowAdminColumn = *def.ShowAdminColumn
	}
	if def.QueryVar != nil {
		cfg.QueryVar = *def.QueryVar
	}
	return cfg
}
