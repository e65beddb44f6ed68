// Package driver implements the two run modes over the core solver
// packages: sweeping every 4-robot start configuration for a fixed goal,
// and solving one explicit configuration.
package driver

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodgern/ricochet/internal/boardstate"
	"github.com/woodgern/ricochet/internal/geometry"
	"github.com/woodgern/ricochet/internal/heuristic"
	"github.com/woodgern/ricochet/internal/solver"
)

// SweepResult summarises a completed sweep run.
type SweepResult struct {
	BoardsConsidered int
	BoardsSkipped    int // invalid start configurations
	BoardsUnsolved   int
	LongestMoves     int
	LongestBoard     boardstate.Board
	TotalDuration    time.Duration
	TotalMoves       int64
	TotalSolved      int64
}

// AverageLength returns the mean solution length across solved boards.
func (r SweepResult) AverageLength() float64 {
	if r.TotalSolved == 0 {
		return 0
	}
	return float64(r.TotalMoves) / float64(r.TotalSolved)
}

// AverageDuration returns the mean wall-clock time per solved board.
func (r SweepResult) AverageDuration() time.Duration {
	if r.TotalSolved == 0 {
		return 0
	}
	return r.TotalDuration / time.Duration(r.TotalSolved)
}

// Sweep enumerates every 4-combination of distinct playable tiles, assigned
// positionally to (Red, Green, Blue, Yellow) for the fixed goal, solving each for Red,
// reusing one heuristic table and one solution cache across the whole run,
// and logs progress every progressInterval boards.
func Sweep(log zerolog.Logger, geo *geometry.Board, goal geometry.Position, progressInterval int) SweepResult {
	table := heuristic.Build(geo, goal)
	cache := solver.NewCache()

	tiles := geometry.PlayableTiles()
	result := SweepResult{}
	start := time.Now()

	for i, red := range tiles {
		for j, green := range tiles {
			if j <= i {
				continue
			}
			for k, blue := range tiles {
				if k <= j {
					continue
				}
				for l, yellow := range tiles {
					if l <= k {
						continue
					}

					result.BoardsConsidered++

					board, err := boardstate.New(geo, goal, red, green, blue, yellow)
					if err != nil {
						result.BoardsSkipped++
						continue
					}

					solveStart := time.Now()
					res, err := solver.Solve(board, boardstate.Red, table, cache)
					elapsed := time.Since(solveStart)

					if err != nil {
						result.BoardsUnsolved++
					} else {
						result.TotalSolved++
						result.TotalMoves += int64(len(res.Moves))
						result.TotalDuration += elapsed
						if len(res.Moves) > result.LongestMoves {
							result.LongestMoves = len(res.Moves)
							result.LongestBoard = board
						}
					}

					if progressInterval > 0 && result.BoardsConsidered%progressInterval == 0 {
						log.Info().
							Int("boards", result.BoardsConsidered).
							Dur("elapsed", time.Since(start)).
							Float64("avg_length", result.AverageLength()).
							Dur("avg_time", result.AverageDuration()).
							Int("longest", result.LongestMoves).
							Int("cache_size", cache.Len()).
							Msg("sweep progress")
					}
				}
			}
		}
	}

	return result
}

// SolveOne solves a single explicit start configuration for target and
// returns the result, or boardstate.ErrInvalidStart / solver.ErrNoSolution.
func SolveOne(geo *geometry.Board, goal geometry.Position, red, green, blue, yellow geometry.Position, target boardstate.Colour) (solver.Result, time.Duration, error) {
	board, err := boardstate.New(geo, goal, red, green, blue, yellow)
	if err != nil {
		return solver.Result{}, 0, err
	}

	table := heuristic.Build(geo, goal)
	cache := solver.NewCache()

	start := time.Now()
	res, err := solver.Solve(board, target, table, cache)
	elapsed := time.Since(start)
	if err != nil {
		return solver.Result{}, elapsed, err
	}
	return res, elapsed, nil
}

// ParseColour maps a case-insensitive colour name to a boardstate.Colour.
func ParseColour(name string) (boardstate.Colour, error) {
	switch strings.ToLower(name) {
	case "red":
		return boardstate.Red, nil
	case "green":
		return boardstate.Green, nil
	case "blue":
		return boardstate.Blue, nil
	case "yellow":
		return boardstate.Yellow, nil
	default:
		return 0, fmt.Errorf("driver: unknown colour %q", name)
	}
}
