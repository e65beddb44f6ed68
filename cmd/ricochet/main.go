// Command ricochet solves Ricochet-Robots-style shortest-path puzzles over
// a 16x16 board, either for one explicit start configuration or swept
// across every possible one.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/woodgern/ricochet/internal/boardstate"
	"github.com/woodgern/ricochet/internal/config"
	"github.com/woodgern/ricochet/internal/driver"
	"github.com/woodgern/ricochet/internal/geometry"
	"github.com/woodgern/ricochet/internal/mapfile"
	"github.com/woodgern/ricochet/internal/solver"
)

// Exit codes, per the error taxonomy: 0 success, 1 map load/decode
// failure, 2 invalid start configuration (single mode only).
const (
	exitOK           = 0
	exitMapFailure   = 1
	exitInvalidStart = 2
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "ricochet",
		Short: "Solve Ricochet-Robots-style shortest-path puzzles",
	}

	root.AddCommand(newSweepCmd(log))
	root.AddCommand(newSolveCmd(log))

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
		os.Exit(exitMapFailure)
	}
}

func newSweepCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve every possible four-robot start configuration for a fixed goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(cmd.Flags())
			if err != nil {
				return err
			}

			geo, goal, err := loadGeometry(cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to load map")
				os.Exit(exitMapFailure)
			}

			log.Info().Str("map", cfg.MapPath()).Str("goal", goal.String()).Msg("starting sweep")

			start := time.Now()
			result := driver.Sweep(log, geo, goal, cfg.ProgressInterval())

			log.Info().
				Int("considered", result.BoardsConsidered).
				Int("skipped", result.BoardsSkipped).
				Int("unsolved", result.BoardsUnsolved).
				Int("longest", result.LongestMoves).
				Dur("total", time.Since(start)).
				Msg("sweep complete")
			return nil
		},
	}
	cmd.Flags().String("map", "", "path to the map file")
	cmd.Flags().String("goal", "", "goal position, X,Y")
	cmd.Flags().Int("progress-interval", config.DefaultProgressInterval, "boards between progress log lines")
	return cmd
}

func newSolveCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one explicit start configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(cmd.Flags())
			if err != nil {
				return err
			}

			geo, goal, err := loadGeometry(cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to load map")
				os.Exit(exitMapFailure)
			}

			red, errR := cfg.Position("red")
			green, errG := cfg.Position("green")
			blue, errB := cfg.Position("blue")
			yellow, errY := cfg.Position("yellow")
			if err := firstNonNil(errR, errG, errB, errY); err != nil {
				return err
			}

			target, err := driver.ParseColour(cfg.Target())
			if err != nil {
				return err
			}

			res, elapsed, err := driver.SolveOne(geo, goal, red, green, blue, yellow, target)
			if err != nil {
				if errors.Is(err, boardstate.ErrInvalidStart) {
					log.Error().Err(err).Msg("invalid start configuration")
					os.Exit(exitInvalidStart)
				}
				if errors.Is(err, solver.ErrNoSolution) {
					log.Info().Msg("no solution found")
					return nil
				}
				return err
			}

			log.Debug().
				Int("moves", len(res.Moves)).
				Int("nodes_expanded", res.NodesExpanded).
				Int("cache_hits", res.CacheHits).
				Dur("elapsed", elapsed).
				Msg("solved")
			fmt.Printf("solved in %d moves (%s)\n", len(res.Moves), elapsed)
			for i, mv := range res.Moves {
				fmt.Printf("%3d. %s %s\n", i+1, mv.Colour, mv.Direction)
			}
			return nil
		},
	}
	cmd.Flags().String("map", "", "path to the map file")
	cmd.Flags().String("goal", "", "goal position, X,Y")
	cmd.Flags().String("red", "", "red start position, X,Y")
	cmd.Flags().String("green", "", "green start position, X,Y")
	cmd.Flags().String("blue", "", "blue start position, X,Y")
	cmd.Flags().String("yellow", "", "yellow start position, X,Y")
	cmd.Flags().String("target", "red", "target robot colour")
	return cmd
}

func loadGeometry(cfg *config.Resolver) (*geometry.Board, geometry.Position, error) {
	geo, err := mapfile.Load(cfg.MapPath())
	if err != nil {
		return nil, geometry.Position{}, err
	}
	goal, err := cfg.Position("goal")
	if err != nil {
		return nil, geometry.Position{}, err
	}
	return geo, goal, nil
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
