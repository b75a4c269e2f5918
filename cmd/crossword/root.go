package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/crossword/internal/ports"
	"svw.info/crossword/internal/solver"
)

func newRootCommand() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "crossword",
		Short:         "Fill crossword grids from a word list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newSolveCommand(), newServeCommand())
	return root
}

func setupLogging(level string) {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

// newSolver picks the search engine for both the CLI and the server.
func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "iterative":
		return solver.NewIterativeSolver()
	default:
		return solver.NewRecursiveSolver()
	}
}
