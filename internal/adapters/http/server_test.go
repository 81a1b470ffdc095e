package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wrangler "github.com/mestiri/wrangler"
	httpadapter "github.com/mestiri/wrangler/internal/adapters/http"
	"github.com/mestiri/wrangler/internal/logging"
	"github.com/mestiri/wrangler/internal/metrics"
	"github.com/mestiri/wrangler/pkg/ports"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m := metrics.New()
	engine := wrangler.New(wrangler.WithMetrics(m))
	srv := httptest.NewServer(httpadapter.NewHandler(engine, logging.NewNop(), m))
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestServer_Classify(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/classify", "application/yaml",
		strings.NewReader(ports.ContractSnapshot))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec ports.ScanRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "/shows/cocomelon/assets/char/jj/jj_rig_v012.ma", rec.Scene)

	kinds := make(map[string]string)
	for _, a := range rec.Assets {
		kinds[a.Root] = a.Kind
	}
	assert.Equal(t, map[string]string{
		"|jj:jj_char_grp": "char",
		"|ENV_grp":        "envr",
		"|table_glbl":     "prop",
	}, kinds)
}

func TestServer_Classify_EmptyBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/classify", "application/yaml", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Classify_BadSnapshot(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/classify", "application/yaml",
		strings.NewReader("nodes: [}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	// Classify once so counters exist.
	resp, err := http.Post(srv.URL+"/v1/classify", "application/yaml",
		strings.NewReader(ports.ContractSnapshot))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// failingClassifier always errors, for exercising the error path directly.
type failingClassifier struct{}

func (failingClassifier) ScanSnapshot(context.Context, []byte) (*ports.ScanRecord, error) {
	return nil, errors.New("boom")
}

func TestServer_Classify_EngineError(t *testing.T) {
	srv := httptest.NewServer(httpadapter.NewHandler(failingClassifier{}, logging.NewNop(), metrics.New()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/classify", "application/yaml",
		strings.NewReader("scene: x\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
