package solver

import (
	"github.com/woodgern/ricochet/internal/boardstate"
	"github.com/woodgern/ricochet/internal/geometry"
)

// maxMoves bounds the path length a history value can encode: 32 base-4
// digits fit in a uint64, which is far beyond any move count a solve on
// this board should ever produce.
const maxMoves = 32

// history packs a sequence of moves compactly: one base-4 digit per move in
// each of two parallel uint64 fields, directions and colours, so a path can
// be carried on every frontier entry without allocating a slice per node.
type history struct {
	length     int
	directions uint64
	colours    uint64
}

// append returns a new history with (c, d) appended as the next move. It
// panics if the path has already reached maxMoves, which would indicate a
// pathological solve far outside this board's scale.
func (h history) append(c boardstate.Colour, d geometry.Direction) history {
	if h.length >= maxMoves {
		panic("solver: move history exceeds maximum encodable length")
	}
	return history{
		length:     h.length + 1,
		directions: h.directions<<2 | uint64(d),
		colours:    h.colours<<2 | uint64(c),
	}
}

// Move is a single decoded (colour, direction) step in a solution path.
type Move struct {
	Colour    boardstate.Colour
	Direction geometry.Direction
}

// moves unpacks the history into an ordered slice of Move, from first move
// to last. append shifts each new move in as the lowest base-4 digit (the
// oldest move is the top digit), so unpacking takes the lowest digit first
// and fills the slice from the end.
func (h history) moves() []Move {
	out := make([]Move, h.length)
	dirs, cols := h.directions, h.colours
	for i := h.length - 1; i >= 0; i-- {
		out[i] = Move{
			Colour:    boardstate.Colour(cols & 0x3),
			Direction: geometry.Direction(dirs & 0x3),
		}
		dirs >>= 2
		cols >>= 2
	}
	return out
}
