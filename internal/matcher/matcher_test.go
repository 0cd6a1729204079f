package matcher_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/matcher"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func checkerboard(w, h int, a, b color.Gray) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetGray(x, y, a)
			} else {
				img.SetGray(x, y, b)
			}
		}
	}
	return img
}

// TestIdenticalSlateIsMatch implements spec.md §8 scenario S4: the
// matcher constructed from a slate image, invoked with the same bytes,
// returns true and a scaled score of 0.
func TestIdenticalSlateIsMatch(t *testing.T) {
	slate := checkerboard(64, 64, color.Gray{Y: 40}, color.Gray{Y: 220})
	slateBytes := encodePNG(t, slate)

	m, err := matcher.New(slateBytes)
	require.NoError(t, err)

	w, h := m.RequiredImageSize()
	assert.Equal(t, 64, w)
	assert.Equal(t, 64, h)

	score, err := m.Score(slateBytes)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	match, err := m.IsMatch(slateBytes)
	require.NoError(t, err)
	assert.True(t, match)
}

// TestThreshold implements invariant 6: is_match returns true iff the
// integer-scaled dissimilarity is <= 900.
func TestThreshold(t *testing.T) {
	slate := checkerboard(64, 64, color.Gray{Y: 0}, color.Gray{Y: 255})
	slateBytes := encodePNG(t, slate)

	m, err := matcher.New(slateBytes)
	require.NoError(t, err)

	different := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range different.Pix {
		different.Pix[i] = 128
	}
	diffBytes := encodePNG(t, different)

	score, err := m.Score(diffBytes)
	require.NoError(t, err)

	match, err := m.IsMatch(diffBytes)
	require.NoError(t, err)
	assert.Equal(t, score <= 900, match)
	assert.Greater(t, score, 0)
}

func TestScoreRejectsWrongSize(t *testing.T) {
	slate := checkerboard(64, 64, color.Gray{Y: 0}, color.Gray{Y: 255})
	m, err := matcher.New(encodePNG(t, slate))
	require.NoError(t, err)

	wrongSize := image.NewGray(image.Rect(0, 0, 32, 32))
	_, err = m.Score(encodePNG(t, wrongSize))
	assert.Error(t, err)
}
