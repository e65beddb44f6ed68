package mapfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodgern/ricochet/internal/geometry"
	"github.com/woodgern/ricochet/internal/mapfile"
)

func writeTempMap(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestLoadValidMap(t *testing.T) {
	lines := make([]string, geometry.Size)
	for i := range lines {
		lines[i] = strings.Repeat("0", geometry.Size)
	}
	path := writeTempMap(t, lines)

	geo, err := mapfile.Load(path)
	require.NoError(t, err)
	require.NotNil(t, geo)

	tile := geo.Tile(geometry.Position{X: 5, Y: 5})
	assert.True(t, tile.Open(geometry.Up))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := mapfile.Load("/nonexistent/path/map.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapfile.ErrMapIO))
}

func TestLoadTooFewLines(t *testing.T) {
	path := writeTempMap(t, []string{"0000000000000000", "0000000000000000"})
	_, err := mapfile.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapfile.ErrMapDecode))
}

func TestLoadLineTooShort(t *testing.T) {
	lines := make([]string, geometry.Size)
	for i := range lines {
		lines[i] = strings.Repeat("0", geometry.Size)
	}
	lines[3] = "0000"
	path := writeTempMap(t, lines)

	_, err := mapfile.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapfile.ErrMapDecode))
}
