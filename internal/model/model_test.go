package model_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

func fixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "testdata", "watcher.json"))
	require.NoError(t, err)
	return b
}

func ptr[T any](v T) *T { return &v }

func sampleWatcher() *model.Watcher {
	return &model.Watcher{
		ID:          ptr("ee21fc9a-7225-450b-a2a7-2faf914e35b8"),
		Description: ptr("UEFA 2020 - Lyon vs. Bayern"),
		SlateURL:    "http://thumbor.example.com/original/hawkeye/video-slate.jpg",
		Source: model.Source{
			IngestPort: 5000,
			Container:  model.ContainerMpegTS,
			Codec:      model.CodecH264,
			Transport:  model.Transport{},
		},
		Transitions: []model.Transition{
			{
				From: model.ModeContent,
				To:   model.ModeSlate,
				Actions: []model.Action{
					{
						Kind: model.ActionKindHTTPCall,
						HTTPCall: &model.HTTPCallAction{
							Description: ptr("Trigger AdBreak using API"),
							Method:      model.MethodPOST,
							URL:         "http://non-existent.example.com/v1/organization/cbsa/channel/slate4/ad-break",
							Auth:        &model.BasicAuth{Username: "dev_user", Password: "something"},
							Headers:     map[string]string{"Content-Type": "application/json"},
							Body:        ptr(`{"duration":300}`),
							Retries:     ptr(uint8(3)),
							Timeout:     ptr(uint32(10)),
						},
					},
				},
			},
			{
				From: model.ModeSlate,
				To:   model.ModeContent,
				Actions: []model.Action{
					{
						Kind: model.ActionKindHTTPCall,
						HTTPCall: &model.HTTPCallAction{
							Description: ptr("Dump out of AdBreak API call"),
							Method:      model.MethodDELETE,
							URL:         "http://non-existent.example.com/v1/organization/cbsa/channel/slate4/ad-break",
							Auth:        &model.BasicAuth{Username: "dev_user", Password: "something"},
							Timeout:     ptr(uint32(10)),
						},
					},
				},
			},
		},
	}
}

func TestParseMatchesFixture(t *testing.T) {
	w, err := model.Parse(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, sampleWatcher(), w)
}

// TestSerialiseRoundTrip verifies invariant 1 from spec.md §8: for any
// Watcher that passes validate, parse(serialise(w)) == w, ignoring the
// server-derived fields.
func TestSerialiseRoundTrip(t *testing.T) {
	w := sampleWatcher()
	b, err := model.Serialise(w)
	require.NoError(t, err)

	got, err := model.Parse(b)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestSerialiseOmitsAbsentFields(t *testing.T) {
	w := sampleWatcher()
	b, err := model.Serialise(w)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	_, hasStatus := raw["status"]
	assert.False(t, hasStatus, "status should be omitted when unset")
	_, hasStatusDesc := raw["status_description"]
	assert.False(t, hasStatusDesc, "status_description should be omitted when unset")

	source := raw["source"].(map[string]any)
	_, hasIngestIP := source["ingest_ip"]
	assert.False(t, hasIngestIP, "ingest_ip should be omitted when unset")
}

func TestValidateRejectsBadSlateURLScheme(t *testing.T) {
	w := sampleWatcher()
	w.SlateURL = "ftp://example.com/slate.jpg"
	err := model.Validate(w)
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangePort(t *testing.T) {
	for _, port := range []int{0, 1024, 60000, 70000} {
		w := sampleWatcher()
		w.Source.IngestPort = port
		err := model.Validate(w)
		assert.Errorf(t, err, "port %d should be rejected", port)
	}
}

func TestValidateAcceptsBoundaryPorts(t *testing.T) {
	for _, port := range []int{1025, 59999} {
		w := sampleWatcher()
		w.Source.IngestPort = port
		assert.NoError(t, model.Validate(w))
	}
}

func TestValidateRejectsActionURLMissingScheme(t *testing.T) {
	w := sampleWatcher()
	w.Transitions[0].Actions[0].HTTPCall.URL = "no-scheme-here"
	err := model.Validate(w)
	require.Error(t, err)
}
