package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contentkit/taxokit/internal/config"
)

// writeDefinitions writes the given name->content HCL files into a temp
// directory and returns its path.
func writeDefinitions(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestLoad_FullDefinition(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"genre.hcl": `
taxonomy "genre" {
  slug              = "genres"
  singular          = "Genre"
  plural            = "Genres"
  menu_name         = "Book Genres"
  hierarchical      = true
  show_ui           = false
  show_admin_column = true
  query_var         = false
  post_types        = ["book", "magazine"]
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{"genre"}, model.Order)

	def := model.Definitions["genre"]
	require.NotNil(t, def)
	require.Equal(t, "genres", def.Slug)
	require.Equal(t, "Genre", def.Singular)
	require.Equal(t, "Genres", def.Plural)
	require.Equal(t, "Book Genres", def.MenuName)
	require.NotNil(t, def.Hierarchical)
	require.True(t, *def.Hierarchical)
	require.NotNil(t, def.ShowUI)
	require.False(t, *def.ShowUI)
	require.NotNil(t, def.QueryVar)
	require.False(t, *def.QueryVar)
	require.Equal(t, []string{"book", "magazine"}, def.PostTypes)
	require.Contains(t, def.File, "genre.hcl")
}

func TestLoad_MinimalDefinitionLeavesTogglesUnset(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"min.hcl": `
taxonomy "series" {
  slug     = "series"
  singular = "Series"
  plural   = "Series"
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	def := model.Definitions["series"]
	require.NotNil(t, def)
	require.Nil(t, def.Hierarchical, "omitted toggles stay unset so defaults apply later")
	require.Nil(t, def.ShowUI)
	require.Nil(t, def.ShowAdminColumn)
	require.Nil(t, def.QueryVar)
	require.Empty(t, def.PostTypes)
}

func TestLoad_UnrecognizedAttributesAreIgnored(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"extra.hcl": `
taxonomy "genre" {
  slug          = "genres"
  singular      = "Genre"
  plural        = "Genres"
  color         = "purple"
  sort_priority = 12
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, "genres", model.Definitions["genre"].Slug)
}

func TestLoad_MultipleFilesAndBlocks(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"book/genre.hcl": `
taxonomy "genre" {
  slug     = "genres"
  singular = "Genre"
  plural   = "Genres"
}

taxonomy "series" {
  slug     = "series"
  singular = "Series"
  plural   = "Series"
}
`,
		"book/audience.hcl": `
taxonomy "audience" {
  slug     = "audiences"
  singular = "Audience"
  plural   = "Audiences"
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Definitions, 3)
	require.ElementsMatch(t, []string{"genre", "series", "audience"}, model.Order)
}

func TestLoad_DuplicateKeyFails(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"a.hcl": `
taxonomy "genre" {
  slug = "genres"
}
`,
		"b.hcl": `
taxonomy "genre" {
  slug = "styles"
}
`,
	})

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), `taxonomy "genre"`)
	require.Contains(t, err.Error(), "already defined")
}

func TestLoad_ParseErrorFails(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"broken.hcl": `
taxonomy "genre" {
  slug = "genres"
`,
	})

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_SingleFilePath(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"genre.hcl": `
taxonomy "genre" {
  slug     = "genres"
  singular = "Genre"
  plural   = "Genres"
}
`,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "genre.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Definitions, 1)
}

func TestLoad_InvalidPostTypesFails(t *testing.T) {
	t.Parallel()

	dir := writeDefinitions(t, map[string]string{
		"bad.hcl": `
taxonomy "genre" {
  slug       = "genres"
  post_types = { book = true }
}
`,
	})

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid post_types")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, model.Definitions)
}

// Loader must satisfy the format-agnostic interface.
var _ config.Loader = (*Loader)(nil)
