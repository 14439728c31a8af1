package defs

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAtlas = `
sheet: sheet.png
sprites:
  player: {x: 224, y: 832, w: 99, h: 75}
  enemy:
    x: 425
    y: 552
    w: 93
    h: 84
`

func TestParseAtlas(t *testing.T) {
	atlas, err := ParseAtlas([]byte(sampleAtlas))
	require.NoError(t, err)

	assert.Equal(t, "sheet.png", atlas.Sheet)
	r, ok := atlas.Lookup("enemy")
	require.True(t, ok)
	assert.Equal(t, Region{X: 425, Y: 552, W: 93, H: 84}, r)
	assert.Equal(t, image.Rect(425, 552, 518, 636), r.Rect())

	_, ok = atlas.Lookup("laser")
	assert.False(t, ok)
}

func TestParseAtlasRejectsBadRegion(t *testing.T) {
	_, err := ParseAtlas([]byte("sprites:\n  laser: {x: 1, y: 1, w: 0, h: 5}\n"))
	require.Error(t, err)

	_, err = ParseAtlas([]byte("sprites: [1, 2"))
	require.Error(t, err)
}

func TestLoadAtlasFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleAtlas), 0o644))

	atlas, err := LoadAtlas(path)
	require.NoError(t, err)
	assert.Len(t, atlas.Sprites, 2)

	_, err = LoadAtlas(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNilAtlasLookup(t *testing.T) {
	var a *Atlas
	_, ok := a.Lookup("player")
	assert.False(t, ok)
	_, ok = DefaultAtlas().Lookup("laser")
	assert.True(t, ok)
}

func TestShippedAtlasMatchesDefault(t *testing.T) {
	atlas, err := LoadAtlas(filepath.Join("..", "..", "assets", "sheet.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAtlas(), atlas)
}

func TestRegionsFiltersBySheet(t *testing.T) {
	atlas := DefaultAtlas()

	found, outside := atlas.Regions(image.Rect(0, 0, 900, 900), "player", "enemy", "laser", "life")

	assert.Equal(t, image.Rect(425, 552, 518, 636), found["enemy"])
	assert.Equal(t, image.Rect(858, 230, 867, 284), found["laser"])
	assert.NotContains(t, found, "player")
	assert.NotContains(t, found, "life")
	assert.Equal(t, []string{"player"}, outside, "player region runs past the bottom edge")

	var empty *Atlas
	found, outside = empty.Regions(image.Rect(0, 0, 900, 900), "player")
	assert.Empty(t, found)
	assert.Empty(t, outside)
}
