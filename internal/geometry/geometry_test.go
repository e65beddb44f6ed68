package geometry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodgern/ricochet/internal/geometry"
)

// emptyBoardLines builds 16 lines of open tiles, i.e. every tile permits
// all four directions, except the outer edge which the board clamps
// regardless of the wall mask.
func emptyBoardLines() []string {
	lines := make([]string, geometry.Size)
	for i := range lines {
		lines[i] = strings.Repeat("0", geometry.Size)
	}
	return lines
}

func TestWallMaskAllFlagsOpenTile(t *testing.T) {
	up, down, left, right, ok := geometry.WallMask('0')
	require.True(t, ok)
	assert.True(t, up)
	assert.True(t, down)
	assert.True(t, left)
	assert.True(t, right)
}

func TestWallMaskUnknownCharacter(t *testing.T) {
	_, _, _, _, ok := geometry.WallMask('z')
	assert.False(t, ok)
}

func TestBuildEmptyBoardSlidesToEdge(t *testing.T) {
	b := geometry.Build(emptyBoardLines())

	mid := geometry.Position{X: 5, Y: 5}
	assert.Equal(t, geometry.Position{X: 5, Y: 0}, b.Tile(mid).SlideDestination(geometry.Up))
	assert.Equal(t, geometry.Position{X: 5, Y: geometry.Size - 1}, b.Tile(mid).SlideDestination(geometry.Down))
	assert.Equal(t, geometry.Position{X: 0, Y: 5}, b.Tile(mid).SlideDestination(geometry.Left))
	assert.Equal(t, geometry.Position{X: geometry.Size - 1, Y: 5}, b.Tile(mid).SlideDestination(geometry.Right))
}

func TestBuildRespectsClosedWall(t *testing.T) {
	lines := emptyBoardLines()
	// '6' closes up and down, leaves left/right open (see WallMask table).
	row := []byte(lines[5])
	row[5] = '6'
	lines[5] = string(row)

	b := geometry.Build(lines)
	tile := b.Tile(geometry.Position{X: 5, Y: 5})
	assert.False(t, tile.Open(geometry.Up))
	assert.False(t, tile.Open(geometry.Down))
	assert.True(t, tile.Open(geometry.Left))
	assert.True(t, tile.Open(geometry.Right))

	// Sliding down toward this tile's closed north wall from further up the
	// column should stop one tile above it, not pass through.
	above := geometry.Position{X: 5, Y: 0}
	assert.Equal(t, geometry.Position{X: 5, Y: 4}, b.Tile(above).SlideDestination(geometry.Down))
}

func TestPlayableExcludesCentralBlock(t *testing.T) {
	for _, p := range []geometry.Position{{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 8, Y: 7}, {X: 8, Y: 8}} {
		assert.False(t, geometry.Playable(p), "expected %v to be excluded", p)
	}
	assert.True(t, geometry.Playable(geometry.Position{X: 0, Y: 0}))
	assert.True(t, geometry.Playable(geometry.Position{X: 15, Y: 15}))
}

func TestPlayableTilesCount(t *testing.T) {
	tiles := geometry.PlayableTiles()
	assert.Len(t, tiles, geometry.Size*geometry.Size-4)
}

func TestAdjacentIgnoresWalls(t *testing.T) {
	b := geometry.Build(emptyBoardLines())
	tile := b.Tile(geometry.Position{X: 5, Y: 5})
	assert.Equal(t, geometry.Position{X: 5, Y: 4}, tile.Adjacent(geometry.Up))
	assert.Equal(t, geometry.Position{X: 6, Y: 5}, tile.Adjacent(geometry.Right))
}
