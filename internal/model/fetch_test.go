package model_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

func TestFetchSlateHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("slate-bytes"))
	}))
	defer srv.Close()

	w := sampleWatcher()
	w.SlateURL = srv.URL

	b, err := model.FetchSlate(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, "slate-bytes", string(b))
}

func TestFetchSlateHTTPNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	w := sampleWatcher()
	w.SlateURL = srv.URL

	_, err := model.FetchSlate(context.Background(), w)
	assert.ErrorIs(t, err, model.ErrFetch)
}

func TestFetchSlateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slate.png")
	require.NoError(t, os.WriteFile(path, []byte("file-bytes"), 0o644))

	w := sampleWatcher()
	w.SlateURL = "file://" + path

	b, err := model.FetchSlate(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, "file-bytes", string(b))
}
