// Package render turns a search result into the human-readable tree dump
// spec.md §6 describes, plus summary statistics, and lightly colorizes
// feedback patterns when writing to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
	"github.com/lorenzo-stoakes/wordle-solver/internal/tree"
)

// entry is one solution's fully-expanded guess/pattern path.
type entry struct {
	solution int
	guesses  int   // number of guesses played, including the final one
	key      []int // interleaved (guessIndex, pattern) used for the tie-break sort
	words    []string
}

// walk reconstructs every solution's path by re-partitioning feasible sets in
// the same ascending-pattern order the search engine used to build the tree
// (internal/search.traverseMatches), since tree.Node does not itself retain
// which pattern led to which child.
func walk(m *match.Matrix, guessWords, solutionWords []string, node *tree.Node, feasible []int) []entry {
	var out []entry
	childIdx := 0

	buckets := [match.NumPatterns][]int{}
	for _, s := range feasible {
		p := m.At(node.GuessIndex, s)
		buckets[p] = append(buckets[p], s)
	}

	for p := match.Pattern(0); int(p) < match.NumPatterns; p++ {
		bucket := buckets[p]
		switch {
		case len(bucket) == 0:
			continue
		case len(bucket) == 1:
			s := bucket[0]
			if p == match.AllGreens {
				out = append(out, entry{
					solution: s,
					guesses:  1,
					key:      []int{node.GuessIndex, int(p)},
					words:    []string{guessWords[node.GuessIndex], m.PatternString(p), solutionWords[s]},
				})
			} else {
				out = append(out, entry{
					solution: s,
					guesses:  2,
					key:      []int{node.GuessIndex, int(p), s, int(match.AllGreens)},
					words:    []string{guessWords[node.GuessIndex], m.PatternString(p), solutionWords[s]},
				})
			}
		default:
			if childIdx >= len(node.Children) {
				continue
			}
			child := node.Children[childIdx]
			childIdx++
			for _, sub := range walk(m, guessWords, solutionWords, child, bucket) {
				out = append(out, entry{
					solution: sub.solution,
					guesses:  sub.guesses + 1,
					key:      append(append([]int{node.GuessIndex, int(p)}, sub.key...)),
					words:    append([]string{guessWords[node.GuessIndex], m.PatternString(p)}, sub.words...),
				})
			}
		}
	}
	return out
}

// Lines formats one line per solution reachable within the tree, in the
// order spec.md §6 defines: stack length ascending, then lexicographic over
// the (guess_index, pattern) composite key at each level.
func Lines(m *match.Matrix, result *tree.Result, guessWords, solutionWords []string) []string {
	feasible := make([]int, result.NumSolutions)
	for i := range feasible {
		feasible[i] = i
	}
	entries := walk(m, guessWords, solutionWords, result.Root, feasible)

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.guesses != b.guesses {
			return a.guesses < b.guesses
		}
		for k := 0; k < len(a.key) && k < len(b.key); k++ {
			if a.key[k] != b.key[k] {
				return a.key[k] < b.key[k]
			}
		}
		return len(a.key) < len(b.key)
	})

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = strings.Join(e.words, " ")
	}
	return lines
}

// LineFor returns the single line for target, or match.UnknownTargetSolution
// if target isn't among solutionWords.
func LineFor(m *match.Matrix, result *tree.Result, guessWords, solutionWords []string, target string) (string, error) {
	idx := -1
	for i, w := range solutionWords {
		if w == target {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", match.NewError(match.UnknownTargetSolution, "target solution %q not in solutions list", target)
	}

	feasible := make([]int, result.NumSolutions)
	for i := range feasible {
		feasible[i] = i
	}
	for _, e := range walk(m, guessWords, solutionWords, result.Root, feasible) {
		if e.solution == idx {
			return strings.Join(e.words, " "), nil
		}
	}
	return "", match.NewError(match.UnknownTargetSolution, "solution %q not reached within the search's depth budget", target)
}

// greenStyle, yellowStyle and greyStyle mirror the teacher's own ad hoc
// background-color ANSI handling in internal/ui/cli.UI, generalized onto the
// lipgloss styles the rest of that codebase already depends on.
var (
	greenStyle  = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	yellowStyle = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	greyStyle   = lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15"))
)

// Colorize renders s using the style for verdict v.
func Colorize(v match.Verdict, s string) string {
	switch v {
	case match.VerdictGreen:
		return greenStyle.Render(s)
	case match.VerdictYellow:
		return yellowStyle.Render(s)
	default:
		return greyStyle.Render(s)
	}
}

// Printer writes tree-dump lines to an underlying writer, colorizing pattern
// characters when Color is true.
type Printer struct {
	w     io.Writer
	Color bool
}

// New builds a Printer, auto-detecting color support via golang.org/x/term
// when w is an *os.File (such as os.Stdout), the same explicit-flag-with-sane-default convention
// the teacher's cli.New(color bool, clearScreen bool) constructor uses.
func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, Color: color}
}

// PrintLines writes one line per string, colorizing the pattern-string run
// embedded in each (the runs of '.'/'y'/'G' characters) when p.Color is set.
func (p *Printer) PrintLines(lines []string) {
	for _, line := range lines {
		if !p.Color {
			fmt.Fprintln(p.w, line)
			continue
		}
		fmt.Fprintln(p.w, colorizeLine(line))
	}
}

// colorizeLine recolors any token made up solely of '.', 'y', 'G' characters
// (a rendered pattern string) in place, leaving guessed/solution words as is.
func colorizeLine(line string) string {
	tokens := strings.Split(line, " ")
	for i, tok := range tokens {
		if !isPatternToken(tok) {
			continue
		}
		var b strings.Builder
		for _, r := range tok {
			switch r {
			case 'G':
				b.WriteString(Colorize(match.VerdictGreen, "G"))
			case 'y':
				b.WriteString(Colorize(match.VerdictYellow, "y"))
			default:
				b.WriteString(Colorize(match.VerdictGrey, "."))
			}
		}
		tokens[i] = b.String()
	}
	return strings.Join(tokens, " ")
}

func isPatternToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r != '.' && r != 'y' && r != 'G' {
			return false
		}
	}
	return true
}

// Stats summarizes a search result the way the CLI's no-target mode does:
// counts of solutions solved in 1..MaxGuesses guesses, an unsolved count for
// the shortfall spec.md §7 says DepthBudgetExceeded surfaces as, and the
// average guesses among solved solutions.
type Stats struct {
	CountByGuesses map[int]int
	Unsolved       int
	AverageGuesses float64
}

// ComputeStats walks result the same way Lines does, so MaxGuesses need not
// be threaded through separately: it is simply the highest key reached.
func ComputeStats(m *match.Matrix, result *tree.Result, guessWords, solutionWords []string) Stats {
	feasible := make([]int, result.NumSolutions)
	for i := range feasible {
		feasible[i] = i
	}
	entries := walk(m, guessWords, solutionWords, result.Root, feasible)

	stats := Stats{CountByGuesses: make(map[int]int)}
	total := 0
	for _, e := range entries {
		stats.CountByGuesses[e.guesses]++
		total += e.guesses
	}
	stats.Unsolved = result.NumSolutions - len(entries)
	if len(entries) > 0 {
		stats.AverageGuesses = float64(total) / float64(len(entries))
	}
	return stats
}
