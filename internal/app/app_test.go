package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contentkit/taxokit/internal/hcl"
	"github.com/contentkit/taxokit/internal/memhost"
)

func newTestApp(t *testing.T) (*App, *memhost.Host) {
	t.Helper()

	appConfig, err := NewConfig(Config{LogFormat: "text", LogLevel: "debug"})
	require.NoError(t, err)

	host := memhost.New()
	return NewApp(&bytes.Buffer{}, appConfig, hcl.NewLoader(), host), host
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	require.Equal(t, []string{"category", "post_tag"}, a.Registry().Keys())
}

func TestRun_RegistersWithHost(t *testing.T) {
	t.Parallel()

	a, host := newTestApp(t)
	appConfig, err := NewConfig(Config{LogFormat: "text", LogLevel: "debug"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), appConfig))
	require.Equal(t, 2, host.Len())
}

func TestNewConfig_RejectsNegativeAdminPort(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{AdminPort: -1})
	require.Error(t, err)
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "OK")
}

func TestTaxonomiesHandler(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	a.taxonomiesHandler(rec, httptest.NewRequest("GET", "/taxonomies", nil))
	require.Equal(t, 200, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var views []taxonomyView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	require.Equal(t, "category", views[0].Key)
	require.Equal(t, []string{"post"}, views[0].PostTypes)
	require.Equal(t, "Categories", views[0].Args.Labels["name"])
	require.Equal(t, "post_tag", views[1].Key)
	require.False(t, views[1].Args.Hierarchical)
}
