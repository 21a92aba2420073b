package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contentkit/taxokit/internal/cli"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error is guaranteed to panic during the
	// loading phase inside app.NewApp().
	invalidHCL := `
		taxonomy "genre" {
			slug = "genres"
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"-log-level", "verbose", "./defs"}
	out := &bytes.Buffer{}

	err := run(out, args)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	definition := `
taxonomy "genre" {
  slug       = "genres"
  singular   = "Genre"
  plural     = "Genres"
  post_types = ["book"]
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "genre.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(definition), 0600))

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-log-format", "text", filePath}))
	require.Contains(t, out.String(), "All taxonomies registered with host.")
}
