package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/dictionary"
	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/hint"
	"svw.info/crossword/internal/usecase"
	"svw.info/crossword/internal/validator"
)

type solveFlags struct {
	gridPath   string
	wordsPath  string
	noReuse    bool
	unique     bool
	solverKind string
	maxNodes   int
	timeout    time.Duration
}

func newSolveCommand() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Fill a grid file from a word list file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.gridPath, "grid", "grid.txt", "grid file: # blocked, . open, one row per line")
	cmd.Flags().StringVar(&f.wordsPath, "words", "words.txt", "word list file, one word per line")
	cmd.Flags().BoolVar(&f.noReuse, "no-reuse", false, "use each word at most once")
	cmd.Flags().BoolVar(&f.unique, "unique", false, "also report whether the solution is unique")
	cmd.Flags().StringVar(&f.solverKind, "solver", "recursive", "search engine: recursive|iterative")
	cmd.Flags().IntVar(&f.maxNodes, "max-nodes", 0, "abort after this many search nodes (0 = unlimited)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort after this much time (0 = unlimited)")
	return cmd
}

func runSolve(ctx context.Context, f solveFlags) error {
	fmt.Printf("Reading grid from: %s\n", f.gridPath)
	fmt.Printf("Reading words from: %s\n", f.wordsPath)

	grid, err := board.LoadGridFile(f.gridPath)
	if err != nil {
		return err
	}
	words, err := dictionary.LoadWordsFile(f.wordsPath)
	if err != nil {
		return err
	}

	fmt.Println("\nInitial grid:")
	for _, row := range grid {
		fmt.Println(row)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	uc := usecase.NewService(newSolver(f.solverKind), validator.New(), hint.NewForced(), nil)
	opts := domain.SolveOptions{NoReuse: f.noReuse, MaxNodes: f.maxNodes}
	res, st, err := uc.Solve(ctx, grid, words, opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("search timed out after %s", f.timeout)
		}
		return err
	}

	if !res.Success {
		fmt.Println("\nNo solution. Possible reasons:")
		fmt.Println("- the word list has too few words of the needed lengths;")
		fmt.Println("- the grid shape is incompatible with the given words;")
		fmt.Println("- fixed letters in the grid conflict with every candidate.")
		os.Exit(2)
	}

	fmt.Println("\nFound a solution:")
	for _, row := range res.Grid {
		fmt.Println(row)
	}
	fmt.Println("\nSlot assignment (slot id: word):")
	for _, s := range res.Slots {
		fmt.Printf("Slot %d (%s, %d letters): %s\n", s.ID, s.Direction, s.Length(), res.Assignment[s.ID])
	}
	fmt.Printf("\n%d nodes in %s\n", st.Nodes, st.Duration.Round(time.Millisecond))

	if f.unique {
		ok, ust, err := uc.Unique(ctx, grid, words, opts)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("The solution is unique (%d nodes).\n", ust.Nodes)
		} else {
			fmt.Printf("The solution is not unique (%d nodes).\n", ust.Nodes)
		}
	}
	return nil
}
