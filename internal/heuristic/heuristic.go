// Package heuristic builds the admissible lower-bound distance table used
// by the solver: a single-robot flood fill from the goal tile across the
// shared geometry, ignoring every other robot.
package heuristic

import "github.com/woodgern/ricochet/internal/geometry"

// Unreached marks a tile the flood fill never reached (should not occur on
// a well-formed 16x16 board, since every tile can at minimum slide off a
// wall back toward the goal's row or column, but is kept as a defensive
// sentinel rather than assumed away). A large positive value, mirroring the
// original's i8::MAX sentinel, so an accidental read never makes a
// downstream priority (distance + heuristic) look artificially cheap.
const Unreached = 1 << 30

// Table holds, for every playable tile, a lower bound on the number of
// moves a single unobstructed robot needs to reach the goal.
type Table struct {
	goal geometry.Position
	dist [geometry.Size][geometry.Size]int
}

// Goal returns the tile this table was built for.
func (t *Table) Goal() geometry.Position {
	return t.goal
}

// At returns the lower-bound distance from p to the table's goal.
func (t *Table) At(p geometry.Position) int {
	return t.dist[p.X][p.Y]
}

// Build runs the flood fill from goal over geo and returns the resulting
// table. The fill is a breadth-first propagation using an explicit
// work-list rather than recursion, since the board's interior corridors can
// otherwise drive call-stack depth past what is reasonable for a hot-path
// routine built fresh for every distinct goal.
//
// A tile is reached at distance d+1 from every tile one slide away in each
// of the four directions from a tile already at distance d — that is,
// every intermediate tile passed over during a slide is treated as a valid
// stopping point for the purpose of this lower bound, not only the final
// resting tile. This keeps the heuristic's propagation a pure function of
// Geometry, independent of any robot configuration.
func Build(geo *geometry.Board, goal geometry.Position) *Table {
	t := &Table{goal: goal}
	for x := 0; x < geometry.Size; x++ {
		for y := 0; y < geometry.Size; y++ {
			t.dist[x][y] = Unreached
		}
	}

	t.dist[goal.X][goal.Y] = 0
	frontier := []geometry.Position{goal}

	for len(frontier) > 0 {
		var next []geometry.Position
		for _, p := range frontier {
			d := t.dist[p.X][p.Y]
			for _, dir := range geometry.Directions {
				next = append(next, expand(geo, t, p, dir, d)...)
			}
		}
		frontier = next
	}

	return t
}

// expand walks from p against direction dir (the direction a robot sliding
// toward p from further away would have travelled), marking every
// intermediate tile reached at d+1 and returning the newly marked
// positions. Because slides are reversible through the same corridor, a
// tile q reaches p by sliding in dir if stepping from q one tile at a time
// in dir never crosses a wall until q arrives at p's position or beyond —
// equivalently, walking from p in the opposite direction of dir along open
// tiles enumerates exactly the tiles that can reach p (or a tile beyond p)
// by sliding in dir.
func expand(geo *geometry.Board, t *Table, p geometry.Position, dir geometry.Direction, d int) []geometry.Position {
	opposite := opposite(dir)
	var newly []geometry.Position

	current := p
	for {
		tile := geo.Tile(current)
		if !tile.Open(opposite) {
			break
		}
		nextPos := tile.Adjacent(opposite)
		if !geometry.Playable(nextPos) {
			break
		}
		if t.dist[nextPos.X][nextPos.Y] != Unreached {
			current = nextPos
			continue
		}
		t.dist[nextPos.X][nextPos.Y] = d + 1
		newly = append(newly, nextPos)
		current = nextPos
	}

	return newly
}

func opposite(d geometry.Direction) geometry.Direction {
	switch d {
	case geometry.Up:
		return geometry.Down
	case geometry.Down:
		return geometry.Up
	case geometry.Left:
		return geometry.Right
	case geometry.Right:
		return geometry.Left
	}
	return d
}
