package ocr

import (
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, "eng", opts.Language)
	assert.Equal(t, []int{1, 2, 3}, opts.EngineModes)
	assert.Equal(t, []int{3, 4, 6, 11, 12}, opts.SegModes)
	assert.Equal(t, 10, opts.MinTextLength)
}

func TestOptionsDefaults_ExplicitValuesKept(t *testing.T) {
	opts := Options{
		Language:      "hin",
		EngineModes:   []int{3},
		SegModes:      []int{6},
		MinTextLength: 25,
	}.withDefaults()

	assert.Equal(t, "hin", opts.Language)
	assert.Equal(t, []int{3}, opts.EngineModes)
	assert.Equal(t, []int{6}, opts.SegModes)
	assert.Equal(t, 25, opts.MinTextLength)
}

func TestSaveToTemp(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))

	path, err := saveToTemp(img, "sweep-test")
	require.NoError(t, err)
	defer os.Remove(path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}

func TestSplitMarker(t *testing.T) {
	// The marker must carry its own newlines so provenance tags always start
	// a line; downstream line scans depend on that.
	assert.Equal(t, "\n===SPLIT===\n", SplitMarker)
}
