package taxonomy

import "context"

// Host is the narrow surface of the host CMS this package needs: one
// registration entry point. The host owns storage, querying, admin UI,
// and URL rewriting; we only hand it configuration.
type Host interface {
	RegisterTaxonomy(ctx context.Context, key string, postTypes []string, args Args) error
}

// Rewrite configures the host's URL rewriting for this taxonomy.
type Rewrite struct {
	Slug string `json:"slug"`
}

// Args is the argument structure handed to the host registration call.
type Args struct {
	Hierarchical    bool    `json:"hierarchical"`
	Labels          Labels  `json:"labels"`
	ShowUI          bool    `json:"show_ui"`
	ShowAdminColumn bool    `json:"show_admin_column"`
	QueryVar        bool    `json:"query_var"`
	Rewrite         Rewrite `json:"rewrite"`
}

// Taxonomy is one declared taxonomy. It is immutable after construction;
// registration against the host happens later, driven by the bootstrap.
type Taxonomy struct {
	cfg Config
}

// New constructs a Taxonomy from cfg. MenuName falls back to Plural when
// empty. No validation happens here; Validate runs on every registration
// attempt instead, so an incomplete declaration is only an error if it is
// ever registered.
func New(cfg Config) *Taxonomy {
	if cfg.MenuName == "" {
		cfg.MenuName = cfg.Plural
	}
	return &Taxonomy{cfg: cfg}
}

// Key returns the taxonomy identifier.
func (t *Taxonomy) Key() string { return t.cfg.Key }

// Config returns a copy of the taxonomy's configuration.
func (t *Taxonomy) Config() Config { return t.cfg }

// name returns the best available identity for error reporting.
func (t *Taxonomy) name() string {
	switch {
	case t.cfg.Key != "":
		return t.cfg.Key
	case t.cfg.Singular != "":
		return t.cfg.Singular
	case t.cfg.Slug != "":
		return t.cfg.Slug
	default:
		return "(unnamed)"
	}
}

// Validate checks the required fields in a fixed order and reports the
// first one that is unset.
func (t *Taxonomy) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"key", t.cfg.Key},
		{"slug", t.cfg.Slug},
		{"singular", t.cfg.Singular},
		{"plural", t.cfg.Plural},
	}
	for _, r := range required {
		if r.value == "" {
			return &ConfigError{Name: t.name(), Field: r.field}
		}
	}
	return nil
}

// Args assembles the host argument structure from the configuration and
// the provided label mapping.
func (t *Taxonomy) Args(labels Labels) Args {
	return Args{
		Hierarchical:    t.cfg.Hierarchical,
		Labels:          labels,
		ShowUI:          t.cfg.ShowUI,
		ShowAdminColumn: t.cfg.ShowAdminColumn,
		QueryVar:        t.cfg.QueryVar,
		Rewrite:         Rewrite{Slug: t.cfg.Slug},
	}
}

// Register validates the taxonomy, derives its labels, runs both filter
// hookpoints, and hands the result to the host. Errors from the host call
// propagate untranslated. Calling Register again simply re-invokes the
// host with freshly computed arguments.
func (t *Taxonomy) Register(ctx context.Context, host Host, hooks *Hooks) error {
	if err := t.Validate(); err != nil {
		return err
	}

	labels := hooks.applyLabels(t.cfg.Key, t.Labels())
	args := hooks.applyArgs(t.cfg.Key, t.Args(labels))

	return host.RegisterTaxonomy(ctx, t.cfg.Key, t.cfg.PostTypes, args)
}
