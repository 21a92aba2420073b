package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/contentkit/taxokit/internal/config"
	"github.com/contentkit/taxokit/internal/ctxlog"
	"github.com/contentkit/taxokit/internal/fsutil"
	"github.com/contentkit/taxokit/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks every given path for .hcl files, parses them, and translates
// the taxonomy blocks into the format-agnostic model. A taxonomy key
// declared twice, within or across files, is a load error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk definitions path %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl definition files found.", "paths", paths)
	} else {
		logger.Debug("Found definition files to load.", "files", filePaths)
	}

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse definition file %s: %w", filePath, diags)
		}

		var file schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode definition file %s: %w", filePath, diags)
		}

		for _, block := range file.Taxonomies {
			def, err := translateTaxonomy(block, filePath)
			if err != nil {
				return nil, err
			}
			if !model.Add(def) {
				prev := model.Definitions[def.Key]
				return nil, fmt.Errorf("taxonomy %q in %s is already defined in %s", def.Key, filePath, prev.File)
			}
			logger.Debug("Loaded taxonomy definition.", "key", def.Key, "file", filePath)
		}
	}

	logger.Info("Taxonomy definitions loaded.", "count", len(model.Order))
	return model, nil
}
