// Package tag provides the built-in flat "post_tag" taxonomy.
package tag

import (
	"github.com/contentkit/taxokit/internal/registry"
	"github.com/contentkit/taxokit/internal/taxonomy"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the post_tag taxonomy to the registry. Tags are flat and
// attach to the stock "post" content type.
func (m *Module) Register(r *registry.Registry) {
	cfg := taxonomy.DefaultConfig()
	cfg.Key = "post_tag"
	cfg.Slug = "tag"
	cfg.Singular = "Tag"
	cfg.Plural = "Tags"
	cfg.Hierarchical = false
	cfg.PostTypes = []string{"post"}

	r.Add(taxonomy.New(cfg))
}
