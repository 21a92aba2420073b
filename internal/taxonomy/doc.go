// Package taxonomy defines the core domain types for content taxonomies:
// the typed configuration struct, label derivation for hierarchical and
// flat taxonomies, the host argument structure, and the filter hooks that
// run before a taxonomy is handed to the host CMS.
package taxonomy
