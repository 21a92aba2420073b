package app

import (
	"github.com/contentkit/taxokit/internal/registry"
	"github.com/contentkit/taxokit/modules/category"
	"github.com/contentkit/taxokit/modules/tag"
)

// coreModules is the definitive list of taxonomy modules that are compiled
// into the taxokit binary.
var coreModules = []registry.Module{
	&category.Module{},
	&tag.Module{},
}
