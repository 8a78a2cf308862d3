// Command wordle-solver builds the full decision tree for a Wordle word
// list and prints the resulting guess/feedback lines, or the single line for
// a target solution.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
	"github.com/lorenzo-stoakes/wordle-solver/internal/render"
	"github.com/lorenzo-stoakes/wordle-solver/internal/search"
	"github.com/lorenzo-stoakes/wordle-solver/internal/solveconfig"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordlist"
)

var (
	flagConfig     = flag.String("config", "", "Comma-separated prune_limit=N,workers=N,max_guesses=N overrides")
	flagPruneLimit = flag.Int("prune_limit", 15, "Maximum number of candidate guesses considered at each search node")
	flagWorkers    = flag.Int("workers", 0, "Worker pool cap; 0 means 2*GOMAXPROCS")
	flagMaxGuesses = flag.Int("max_guesses", search.DefaultMaxGuesses, "Guesses a solution must be reachable within to count as solved")
	flagColor      = flag.Bool("color", false, "Force-enable colorized pattern output (auto-detected by default)")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordle-solver <valid_guesses_path> <solutions_path> [target_solution]")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		usage()
		os.Exit(1)
	}
	guessesPath, solutionsPath := args[0], args[1]
	var target string
	if len(args) == 3 {
		target = args[2]
	}

	if err := run(guessesPath, solutionsPath, target); err != nil {
		klog.Exitf("%+v", err)
	}
}

func run(guessesPath, solutionsPath, target string) error {
	cfg, err := solveconfig.Parse(*flagConfig, solveconfig.Config{
		PruneLimit: *flagPruneLimit,
		Workers:    *flagWorkers,
		MaxGuesses: *flagMaxGuesses,
	})
	if err != nil {
		return err
	}

	guesses, err := wordlist.Load(guessesPath)
	if err != nil {
		return err
	}
	solutions, err := wordlist.Load(solutionsPath)
	if err != nil {
		return err
	}
	if err := wordlist.ValidateLength(guesses, match.WordLength); err != nil {
		return err
	}
	if err := wordlist.ValidateLength(solutions, match.WordLength); err != nil {
		return err
	}
	if err := wordlist.ValidateUnique(guesses); err != nil {
		return err
	}

	m, err := match.NewMatrix(guesses, solutions)
	if err != nil {
		return err
	}

	engine := search.New(m).WithMaxGuesses(cfg.MaxGuesses).WithWorkers(cfg.Workers)
	result, err := engine.Solve(cfg.PruneLimit)
	if err != nil {
		return err
	}

	printer := render.New(os.Stdout)
	if *flagColor {
		printer.Color = true
	}

	if target != "" {
		line, err := render.LineFor(m, result, guesses, solutions, target)
		if err != nil {
			return err
		}
		printer.PrintLines([]string{line})
		return nil
	}

	lines := render.Lines(m, result, guesses, solutions)
	printer.PrintLines(lines)

	stats := render.ComputeStats(m, result, guesses, solutions)
	fmt.Fprintln(os.Stdout)
	for guesses := 1; guesses <= cfg.MaxGuesses; guesses++ {
		if n, ok := stats.CountByGuesses[guesses]; ok {
			fmt.Fprintf(os.Stdout, "solved in %d: %d\n", guesses, n)
		}
	}
	fmt.Fprintf(os.Stdout, "unsolved: %d\n", stats.Unsolved)
	fmt.Fprintf(os.Stdout, "average guesses: %.3f\n", stats.AverageGuesses)
	return nil
}
