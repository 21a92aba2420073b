package config

// Model is the unified representation of all taxonomy definitions loaded
// from configuration files.
type Model struct {
	// Definitions maps taxonomy key to its loaded definition.
	Definitions map[string]*Definition
	// Order preserves the order definitions were encountered in, so the
	// bootstrap registers file-defined taxonomies deterministically.
	Order []string
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Definitions: make(map[string]*Definition)}
}

// Add inserts a definition. It reports false when the key is already
// present, leaving the existing definition in place.
func (m *Model) Add(def *Definition) bool {
	if _, exists := m.Definitions[def.Key]; exists {
		return false
	}
	m.Definitions[def.Key] = def
	m.Order = append(m.Order, def.Key)
	return true
}

// Definition is the format-agnostic representation of one `taxonomy`
// block. Boolean toggles are pointers so an omitted attribute is
// distinguishable from an explicit false and can take the compiled
// default.
type Definition struct {
	Key      string
	Slug     string
	Singular string
	Plural   string
	MenuName string

	Hierarchical    *bool
	ShowUI          *bool
	ShowAdminColumn *bool
	QueryVar        *bool

	PostTypes []string

	// File records where the definition came from, for error messages.
	File string
}
