package taxonomy

// Config holds the declaration of a single taxonomy. Every field is
// explicit; there is no dynamic option map. Use DefaultConfig as the
// starting point so the boolean toggles carry their documented defaults.
type Config struct {
	// Key is the taxonomy identifier the host CMS registers it under.
	Key string
	// Slug is the URL path segment used for rewrites.
	Slug string
	// Singular and Plural are the display names labels are derived from.
	Singular string
	Plural   string
	// MenuName is the admin menu entry; empty means "use Plural".
	MenuName string

	// Hierarchical selects category-like (true) vs tag-like (false) mode.
	Hierarchical bool

	// Admin feature toggles, all enabled by default.
	ShowUI          bool
	ShowAdminColumn bool
	QueryVar        bool

	// PostTypes lists the content types this taxonomy attaches to.
	PostTypes []string
}

// DefaultConfig returns a Config with the default toggles set: taxonomies
// are hierarchical and fully visible in the admin unless declared otherwise.
func DefaultConfig() Config {
	return Config{
		Hierarchical:    true,
		ShowUI:          true,
		ShowAdminColumn: true,
		QueryVar:        true,
	}
}
