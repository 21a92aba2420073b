// Package schema declares the HCL shapes of taxonomy definition files.
package schema

import "github.com/hashicorp/hcl/v2"

// Taxonomy represents a `taxonomy "<key>" { ... }` block from a
// definition file. All attributes are optional at parse time; required
// fields are enforced when the taxonomy is registered, not when it is
// loaded. Unrecognized attributes land in Remain and are ignored.
type Taxonomy struct {
	Key      string `hcl:"key,label"`
	Slug     string `hcl:"slug,optional"`
	Singular string `hcl:"singular,optional"`
	Plural   string `hcl:"plural,optional"`
	MenuName string `hcl:"menu_name,optional"`

	Hierarchical    *bool `hcl:"hierarchical,optional"`
	ShowUI          *bool `hcl:"show_ui,optional"`
	ShowAdminColumn *bool `hcl:"show_admin_column,optional"`
	QueryVar        *bool `hcl:"query_var,optional"`

	PostTypes hcl.Expression `hcl:"post_types,optional"`

	Remain hcl.Body `hcl:",remain"`
}

// File represents the top-level structure of a taxonomy definition file.
type File struct {
	Taxonomies []*Taxonomy `hcl:"taxonomy,block"`
	Remain     hcl.Body    `hcl:",remain"`
}
