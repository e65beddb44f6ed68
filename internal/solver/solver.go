// Package solver implements the best-first search over boardstate.Board
// states: given a starting configuration and a target robot, it finds the
// shortest sequence of (colour, direction) moves that brings the target
// onto the goal tile.
package solver

import (
	"errors"

	"github.com/woodgern/ricochet/internal/boardstate"
	"github.com/woodgern/ricochet/internal/geometry"
	"github.com/woodgern/ricochet/internal/heuristic"
)

// ErrNoSolution reports that the search frontier emptied without reaching
// the goal. On a well-formed map this should not happen for a reachable
// target, but the search does not assume reachability.
var ErrNoSolution = errors.New("solver: no solution found")

// expansionOrder is the fixed order in which robots are tried when
// generating successors from a frontier node.
var expansionOrder = [4]boardstate.Colour{boardstate.Red, boardstate.Blue, boardstate.Yellow, boardstate.Green}

// Result is a completed solve: the target robot's shortest move sequence
// and bookkeeping about the search that found it.
type Result struct {
	Moves         []Move
	NodesExpanded int
	CacheHits     int
}

// Solve runs best-first search from start until target reaches goal. table
// must have been built for start.Goal; cache is optional shared state
// across many Solve calls (pass a fresh *Cache, or nil to run without one)
// that is both consulted for exact remaining-distance overrides and
// populated with the solved path's symmetric fingerprints on success.
func Solve(start boardstate.Board, target boardstate.Colour, table *heuristic.Table, cache *Cache) (Result, error) {
	if start.Solved(target) {
		return Result{Moves: nil}, nil
	}

	open := newFrontier()
	best := make(map[uint64]int)

	startFP := start.Fingerprint()
	best[startFP] = 0
	open.push(pathOption{
		priority: estimate(cache, startFP, table, start.At(target)),
		distance: 0,
		fp:       startFP,
		board:    start,
	})

	result := Result{}

	for !open.empty() {
		current, _ := open.popMin()
		result.NodesExpanded++

		if g, ok := best[current.fp]; ok && g < current.distance {
			continue // stale entry, a cheaper path to this fingerprint was already found
		}

		if current.board.Solved(target) {
			result.Moves = current.history.moves()
			storeSolvedPath(cache, start, target, result.Moves)
			return result, nil
		}

		for _, c := range expansionOrder {
			for _, d := range current.board.ValidDirections(c) {
				next := current.board.Move(c, d)
				nextFP := next.Fingerprint()
				if nextFP == current.fp {
					continue
				}
				nextDistance := current.distance + 1

				if g, ok := best[nextFP]; ok && g <= nextDistance {
					continue
				}
				best[nextFP] = nextDistance

				if cache != nil {
					if _, ok := cache.Lookup(nextFP); ok {
						result.CacheHits++
					}
				}

				open.push(pathOption{
					priority: nextDistance + estimate(cache, nextFP, table, next.At(c)),
					distance: nextDistance,
					fp:       nextFP,
					board:    next,
					history:  current.history.append(c, d),
				})
			}
		}
	}

	return Result{}, ErrNoSolution
}

// estimate returns the cached exact remaining distance for fp if known,
// otherwise the flood-fill heuristic lower bound evaluated at pos — the
// position of whichever robot just moved to produce this node (or the
// target's own position for the start node, where nothing has moved yet).
// A cached value is always exact and at least as tight as the heuristic, so
// preferring it never breaks admissibility.
func estimate(cache *Cache, fp uint64, table *heuristic.Table, pos geometry.Position) int {
	if cache != nil {
		if d, ok := cache.Lookup(fp); ok {
			return d
		}
	}
	return table.At(pos)
}

// storeSolvedPath replays the solved move sequence from start and records,
// for every state along the way (including start and the solved goal
// state), the exact remaining distance to goal under all six symmetric
// permutations of the non-target robots. This lets a later search that
// reaches an equivalent configuration reuse the known-optimal result
// instead of re-exploring from it.
func storeSolvedPath(cache *Cache, start boardstate.Board, target boardstate.Colour, moves []Move) {
	if cache == nil {
		return
	}

	board := start
	remaining := len(moves)
	for _, fp := range board.SymmetricFingerprints(target) {
		cache.Store(fp, remaining)
	}

	for _, mv := range moves {
		board = board.Move(mv.Colour, mv.Direction)
		remaining--
		for _, fp := range board.SymmetricFingerprints(target) {
			cache.Store(fp, remaining)
		}
	}
}
