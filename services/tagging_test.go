package services

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFilenameMountain(t *testing.T) {
	for _, name := range []string{
		"mountain-trip-01.jpg",
		"MOUNTAIN.png",
		"Whistler_Mountain_View.jpeg",
		"마운틴 정상.jpg",
	} {
		tags, category := AnalyzeFilename(name)
		assert.Contains(t, tags, "마운틴", "filename %q", name)
		assert.Equal(t, "landscape", category, "filename %q", name)
	}
}

func TestCategoryPriorityOrder(t *testing.T) {
	// Matches both the action keywords (bike, downhill) and a landscape
	// keyword (mountain); landscape is checked first and must win.
	_, category := AnalyzeFilename("mountain-bike-downhill.jpg")
	assert.Equal(t, "landscape", category)

	// Without a landscape keyword the action family takes it.
	_, category = AnalyzeFilename("bike-downhill-run2.jpg")
	assert.Equal(t, "action", category)

	_, category = AnalyzeFilename("hotel-food.jpg")
	assert.Equal(t, "food", category)
}

func TestAnalyzeFilenamePureAndDeduplicated(t *testing.T) {
	tags1, cat1 := AnalyzeFilename("Whistler-Village-view.jpg")
	tags2, cat2 := AnalyzeFilename("Whistler-Village-view.jpg")
	assert.Equal(t, tags1, tags2)
	assert.Equal(t, cat1, cat2)

	// Repeated keyword hits collapse to one tag.
	tags, _ := AnalyzeFilename("mountain-Mountain-마운틴.jpg")
	count := 0
	for _, tag := range tags {
		if tag == "마운틴" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnalyzeFilenameDefaults(t *testing.T) {
	tags, category := AnalyzeFilename("IMG_20250830_1234.jpg")
	assert.Equal(t, []string{"여행", "캐나다", "추억"}, tags)
	assert.Equal(t, CategoryGeneral, category)

	// The tag set is never empty, even for an empty filename.
	tags, _ = AnalyzeFilename("")
	assert.NotEmpty(t, tags)
}

func TestDimensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3))))

	w, h, ok := Dimensions(buf.Bytes())
	require.True(t, ok)
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
}

func TestDimensionsUndecodable(t *testing.T) {
	_, _, ok := Dimensions([]byte("not an image"))
	assert.False(t, ok)
}
