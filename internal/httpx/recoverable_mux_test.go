package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/httpx"
)

func TestRecoverableMuxRecoversPanicAndInvokesCallback(t *testing.T) {
	var recovered any
	mux := httpx.NewRecoverableMux(func(w http.ResponseWriter, rec any) bool {
		recovered = rec
		http.Error(w, "boom", http.StatusInternalServerError)
		return true
	})
	mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/panic")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "test panic", recovered)
}

func TestRecoverableMuxPassesThroughNormalHandlers(t *testing.T) {
	mux := httpx.NewRecoverableMux(nil)
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ok")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
