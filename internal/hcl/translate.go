package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/contentkit/taxokit/internal/config"
	"github.com/contentkit/taxokit/internal/schema"
)

// translateTaxonomy converts the HCL-specific taxonomy schema into the
// agnostic model. Definition files carry no variables, so expressions are
// evaluated against a nil context.
func translateTaxonomy(s *schema.Taxonomy, filePath string) (*config.Definition, error) {
	def := &config.Definition{
		Key:             s.Key,
		Slug:            s.Slug,
		Singular:        s.Singular,
		Plural:          s.Plural,
		MenuName:        s.MenuName,
		Hierarchical:    s.Hierarchical,
		ShowUI:          s.ShowUI,
		ShowAdminColumn: s.ShowAdminColumn,
		QueryVar:        s.QueryVar,
		File:            filePath,
	}

	postTypes, err := evalStringList(s.PostTypes)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %q in %s: invalid post_types: %w", s.Key, filePath, err)
	}
	def.PostTypes = postTypes

	return def, nil
}

// evalStringList evaluates an optional expression into a string slice.
func evalStringList(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, err
	}

	var out []string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, err
	}
	return out, nil
}
