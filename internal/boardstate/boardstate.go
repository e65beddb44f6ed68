// Package boardstate models the product state of four robots on a shared
// geometry.Board: their positions, a compact fingerprint for the solution
// cache, and the move engine that slides a robot under wall and
// robot-collision constraints.
package boardstate

import (
	"errors"
	"fmt"

	"github.com/woodgern/ricochet/internal/geometry"
)

// Colour identifies one of the four robots.
type Colour uint8

const (
	Red Colour = iota
	Green
	Blue
	Yellow
)

// Colours lists all four robots in Colour order: the order of Positions and
// of the fingerprint's nibble layout.
var Colours = [4]Colour{Red, Green, Blue, Yellow}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "invalid"
	}
}

// ErrInvalidStart reports a start configuration that cannot be used: two
// robots sharing a tile, or a robot (or the goal) placed on the disallowed
// central block.
var ErrInvalidStart = errors.New("boardstate: invalid start configuration")

// Board is a four-robot state over a shared, immutable geometry.Board. Board
// values are small and cheap to copy; Move returns a new value rather than
// mutating the receiver.
type Board struct {
	Geo  *geometry.Board
	Goal geometry.Position

	Positions [4]geometry.Position // indexed by Colour
}

// New validates and constructs a Board. It rejects overlapping robots and
// any robot or the goal sitting on the disallowed central block.
func New(geo *geometry.Board, goal geometry.Position, red, green, blue, yellow geometry.Position) (Board, error) {
	b := Board{Geo: geo, Goal: goal, Positions: [4]geometry.Position{red, green, blue, yellow}}

	if !geometry.Playable(goal) {
		return Board{}, fmt.Errorf("goal %v not playable: %w", goal, ErrInvalidStart)
	}
	for _, c := range Colours {
		p := b.Positions[c]
		if !geometry.Playable(p) {
			return Board{}, fmt.Errorf("%s at %v not playable: %w", c, p, ErrInvalidStart)
		}
	}
	for i := range Colours {
		for j := i + 1; j < len(Colours); j++ {
			if b.Positions[i] == b.Positions[j] {
				return Board{}, fmt.Errorf("%s and %s overlap at %v: %w", Colours[i], Colours[j], b.Positions[i], ErrInvalidStart)
			}
		}
	}

	return b, nil
}

// At returns the position of the given robot.
func (b Board) At(c Colour) geometry.Position {
	return b.Positions[c]
}

// Solved reports whether the target colour sits on the goal tile.
func (b Board) Solved(target Colour) bool {
	return b.Positions[target] == b.Goal
}

func (b Board) occupiedBy(p geometry.Position, exclude Colour) bool {
	for _, c := range Colours {
		if c == exclude {
			continue
		}
		if b.Positions[c] == p {
			return true
		}
	}
	return false
}

// ValidDirections returns the directions in which the given robot can
// actually move: wall-open, and not already blocked by an adjacent robot.
func (b Board) ValidDirections(c Colour) []geometry.Direction {
	var out []geometry.Direction
	p := b.Positions[c]
	tile := b.Geo.Tile(p)
	for _, d := range geometry.Directions {
		if !tile.Open(d) {
			continue
		}
		adj := tile.Adjacent(d)
		if adj.X < 0 || adj.X >= geometry.Size || adj.Y < 0 || adj.Y >= geometry.Size {
			continue // open flag on the board edge: no tile to move into.
		}
		if b.occupiedBy(adj, c) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Move slides robot c in direction d and returns the resulting board. The
// robot travels along the precomputed wall-only slide destination, then
// stops on the tile just before the nearest other robot lying past its
// start, up to and including that destination.
func (b Board) Move(c Colour, d geometry.Direction) Board {
	start := b.Positions[c]
	dest := b.Geo.Tile(start).SlideDestination(d)

	for _, other := range Colours {
		if other == c {
			continue
		}
		op := b.Positions[other]
		if !onSegment(start, dest, d, op) {
			continue
		}
		candidate := stepBack(op, d)
		if closer(start, d, candidate, dest) {
			dest = candidate
		}
	}

	next := b
	next.Positions[c] = dest
	return next
}

// onSegment reports whether p lies strictly between start and dest
// (inclusive of dest, exclusive of start) along direction d — i.e. whether
// a robot at p could block the slide.
func onSegment(start, dest geometry.Position, d geometry.Direction, p geometry.Position) bool {
	switch d {
	case geometry.Up:
		return p.X == start.X && p.Y <= start.Y && p.Y >= dest.Y && p.Y != start.Y
	case geometry.Down:
		return p.X == start.X && p.Y >= start.Y && p.Y <= dest.Y && p.Y != start.Y
	case geometry.Left:
		return p.Y == start.Y && p.X <= start.X && p.X >= dest.X && p.X != start.X
	case geometry.Right:
		return p.Y == start.Y && p.X >= start.X && p.X <= dest.X && p.X != start.X
	}
	return false
}

// stepBack returns the tile immediately before the blocking robot at p,
// i.e. one step opposite to d.
func stepBack(p geometry.Position, d geometry.Direction) geometry.Position {
	switch d {
	case geometry.Up:
		return geometry.Position{X: p.X, Y: p.Y + 1}
	case geometry.Down:
		return geometry.Position{X: p.X, Y: p.Y - 1}
	case geometry.Left:
		return geometry.Position{X: p.X + 1, Y: p.Y}
	case geometry.Right:
		return geometry.Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// closer reports whether candidate is nearer to start than dest, along d.
func closer(start geometry.Position, d geometry.Direction, candidate, dest geometry.Position) bool {
	switch d {
	case geometry.Up:
		return candidate.Y > dest.Y
	case geometry.Down:
		return candidate.Y < dest.Y
	case geometry.Left:
		return candidate.X > dest.X
	case geometry.Right:
		return candidate.X < dest.X
	}
	return false
}

// Fingerprint packs the four robot positions into a single 64-bit value:
// one nibble per coordinate, in Red.X, Red.Y, Green.X, Green.Y, Blue.X,
// Blue.Y, Yellow.X, Yellow.Y order (most to least significant).
func (b Board) Fingerprint() uint64 {
	var fp uint64
	for _, c := range Colours {
		p := b.Positions[c]
		fp = fp<<4 | uint64(p.X&0xF)
		fp = fp<<4 | uint64(p.Y&0xF)
	}
	return fp
}

// permutations lists the six ways to permute the three non-target robots
// (green, blue, yellow), used to populate symmetric solution-cache entries.
// Each entry is an ordering over the indices {1,2,3} of Positions.
var permutations = [6][3]int{
	{1, 2, 3},
	{1, 3, 2},
	{2, 1, 3},
	{2, 3, 1},
	{3, 1, 2},
	{3, 2, 1},
}

// SymmetricFingerprints returns the six fingerprints obtained by permuting
// the three non-target robots across each other's tiles, holding the target
// robot's own position fixed. Each result is packed with the same fixed
// Red/Green/Blue/Yellow nibble layout Fingerprint uses — only the
// non-target colours' assigned positions change between the six — so a
// cache entry stored under one of these fingerprints is directly
// comparable with (and reachable by) a later Fingerprint() lookup for an
// equivalent configuration, regardless of which colour is the target.
func (b Board) SymmetricFingerprints(target Colour) [6]uint64 {
	others := otherColours(target)
	otherPos := [3]geometry.Position{b.Positions[others[0]], b.Positions[others[1]], b.Positions[others[2]]}

	var out [6]uint64
	for i, perm := range permutations {
		var positions [4]geometry.Position
		positions[target] = b.Positions[target]
		for k, idx := range perm {
			positions[others[k]] = otherPos[idx-1]
		}

		var fp uint64
		for _, c := range Colours {
			p := positions[c]
			fp = fp<<4 | uint64(p.X&0xF)
			fp = fp<<4 | uint64(p.Y&0xF)
		}
		out[i] = fp
	}
	return out
}

func otherColours(target Colour) [3]Colour {
	var out [3]Colour
	i := 0
	for _, c := range Colours {
		if c == target {
			continue
		}
		out[i] = c
		i++
	}
	return out
}
