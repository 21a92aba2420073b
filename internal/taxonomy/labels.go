package taxonomy

import "strings"

// Labels maps host label identifiers to display strings.
type Labels map[string]string

// Flat-only label identifiers. A hierarchical taxonomy must not carry
// these; a flat one must.
const (
	labelPopularItems           = "popular_items"
	labelSeparateItemsWithComma = "separate_items_with_commas"
	labelAddOrRemoveItems       = "add_or_remove_items"
	labelChooseFromMostUsed     = "choose_from_most_used"
	labelNotFound               = "not_found"
)

// Labels derives the label mapping from the configured display names.
// The hierarchical variant carries parent-item labels and omits the
// tag-editing labels; the flat variant is the mirror image, with the
// parent-item labels present but empty.
func (t *Taxonomy) Labels() Labels {
	singular := t.cfg.Singular
	plural := t.cfg.Plural
	lower := strings.ToLower(plural)

	labels := Labels{
		"name":          plural,
		"singular_name": singular,
		"menu_name":     t.cfg.MenuName,
		"search_items":  "Search " + plural,
		"all_items":     "All " + plural,
		"edit_item":     "Edit " + singular,
		"update_item":   "Update " + singular,
		"add_new_item":  "Add New " + singular,
		"new_item_name": "New " + singular + " Name",
	}

	if t.cfg.Hierarchical {
		labels["parent_item"] = "Parent " + singular
		labels["parent_item_colon"] = "Parent " + singular + ":"
		return labels
	}

	labels["parent_item"] = ""
	labels["parent_item_colon"] = ""
	labels[labelPopularItems] = "Popular " + plural
	labels[labelSeparateItemsWithComma] = "Separate " + lower + " with commas"
	labels[labelAddOrRemoveItems] = "Add or remove " + lower
	labels[labelChooseFromMostUsed] = "Choose from the most used " + lower
	labels[labelNotFound] = "No " + lower + " found"
	return labels
}
