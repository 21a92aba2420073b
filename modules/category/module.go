// Package category provides the built-in hierarchical "category" taxonomy.
package category

import (
	"github.com/contentkit/taxokit/internal/registry"
	"github.com/contentkit/taxokit/internal/taxonomy"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the category taxonomy to the registry. Categories are
// hierarchical and attach to the stock "post" content type.
func (m *Module) Register(r *registry.Registry) {
	cfg := taxonomy.DefaultConfig()
	cfg.Key = "category"
	cfg.Slug = "category"
	cfg.Singular = "Category"
	cfg.Plural = "Categories"
	cfg.PostTypes = []string{"post"}

	r.Add(taxonomy.New(cfg))
}
