// Package mapfile loads the on-disk map format into a geometry.Board.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/woodgern/ricochet/internal/geometry"
)

// ErrMapIO reports a failure to read the map file itself (missing file,
// permission error, I/O error).
var ErrMapIO = errors.New("mapfile: I/O error")

// ErrMapDecode reports a map file that was read successfully but does not
// describe a valid 16x16 board.
var ErrMapDecode = errors.New("mapfile: decode error")

// Load reads the 16-line, 16-character-per-line wall-mask map at path and
// builds a geometry.Board from it. Lines are read tolerant of a trailing
// newline or extra trailing characters per line, matching the wall-mask
// alphabet's documented tolerance for stray input — but the file must
// supply at least 16 lines, each at least 16 characters, or Load returns
// ErrMapDecode.
func Load(path string) (*geometry.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map file %q: %w", path, ErrMapIO)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map file %q: %w", path, ErrMapIO)
	}

	if len(lines) < geometry.Size {
		return nil, fmt.Errorf("map file %q has %d lines, need %d: %w", path, len(lines), geometry.Size, ErrMapDecode)
	}
	for i := 0; i < geometry.Size; i++ {
		if len(lines[i]) < geometry.Size {
			return nil, fmt.Errorf("map file %q line %d has %d characters, need %d: %w", path, i+1, len(lines[i]), geometry.Size, ErrMapDecode)
		}
	}

	return geometry.Build(lines), nil
}
