package pipeline

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestFrameServesPublishedPNG(t *testing.T) {
	p := &Pipeline{cell: &FrameCell{}}
	p.cell.Publish([]byte("fake-png-bytes"))

	srv := httptest.NewServer(NewServerMux(p))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/latest_frame")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(body))
}

func TestLatestFrameServiceUnavailableBeforePublish(t *testing.T) {
	p := &Pipeline{cell: &FrameCell{}}

	srv := httptest.NewServer(NewServerMux(p))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/latest_frame")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsRouteServesPrometheusFormat(t *testing.T) {
	p := &Pipeline{cell: &FrameCell{}}
	srv := httptest.NewServer(NewServerMux(p))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
