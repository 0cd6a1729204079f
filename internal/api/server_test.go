package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/api"
	"github.com/hawkeye-video/hawkeye/internal/control"
	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/orchestrator/orchestratortest"
)

const testToken = "test-token-abc123"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fake := orchestratortest.New()
	ctrl := control.NewService(fake, "default", "hawkeye-dev:latest")
	srv := api.NewServer(ctrl, "default", testToken, nil)
	return httptest.NewServer(srv.Handler())
}

func authedRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func TestMissingAuthHeaderIs401(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/watchers")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWrongBearerTokenIs401(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/watchers", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownRouteIs404(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	req := authedRequest(t, http.MethodGet, ts.URL+"/v1/nonsense", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWrongMethodIs405(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	req := authedRequest(t, http.MethodPut, ts.URL+"/v1/watchers", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthcheckNeedsNoAuth(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthcheck")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateThenListThenDeleteWatcher(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	data, err := os.ReadFile("../../testdata/watcher.json")
	require.NoError(t, err)

	req := authedRequest(t, http.MethodPost, ts.URL+"/v1/watchers", data)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Watcher
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotNil(t, created.ID)

	listReq := authedRequest(t, http.MethodGet, ts.URL+"/v1/watchers", nil)
	listResp, err := http.DefaultClient.Do(listReq)
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	delReq := authedRequest(t, http.MethodDelete, ts.URL+"/v1/watchers/"+*created.ID, nil)
	delResp, err := http.DefaultClient.Do(delReq)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusOK, delResp.StatusCode)
}

func TestCreateRejectsInvalidWatcher(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	req := authedRequest(t, http.MethodPost, ts.URL+"/v1/watchers", []byte(`{"slate_url":"not-a-url-scheme","source":{"ingest_port":1}}`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUnknownWatcherIs404(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	req := authedRequest(t, http.MethodGet, ts.URL+"/v1/watchers/does-not-exist", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
