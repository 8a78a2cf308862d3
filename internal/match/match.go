// Package match computes the Wordle feedback encoding: for every (guess,
// solution) pair it derives a base-3 Pattern value and a human-readable
// rendering, and assembles the dense match matrix the rest of the engine
// consumes.
package match

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

//go:generate go tool enumer -type=Verdict -trimprefix=Verdict -values -text -json match.go

// WordLength is the build-time constant word length (W in the design notes).
// Changing it requires recomputing Pattern, which is sized for it.
const WordLength = 5

// NumPatterns is M = 3^WordLength, the number of distinct feedback patterns.
const NumPatterns = 243

// AllGreens is the pattern value M-1: every position green, i.e. solved.
const AllGreens = Pattern(NumPatterns - 1)

// Verdict is the per-position feedback: grey, yellow or green.
type Verdict uint8

const (
	VerdictGrey Verdict = iota
	VerdictYellow
	VerdictGreen
)

// Pattern is a feedback value in [0, NumPatterns), base-3 encoding of
// per-position Verdicts: position i contributes verdict_i * 3^i.
type Pattern uint8

// Matrix is the dense, immutable match[g, s] table plus the shared pattern
// string table. It is safe for concurrent reads once constructed.
type Matrix struct {
	W int
	G int
	S int

	// table is flattened row-major by guess, i.e. table[g*S+s].
	table []Pattern

	// patternStrings[p] is the WordLength-character rendering of pattern p,
	// lazily-but-once populated as a side effect of computing table.
	patternStrings []string
}

// At returns match[guess, solution].
func (m *Matrix) At(guess, solution int) Pattern {
	return m.table[guess*m.S+solution]
}

// PatternString renders pattern p over the alphabet {'.','y','G'}.
func (m *Matrix) PatternString(p Pattern) string {
	return m.patternStrings[p]
}

// NewMatrix validates guesses/solutions and computes the match matrix.
//
// Every solution must also appear in guesses; all words must have length
// WordLength; neither list may be empty.
func NewMatrix(guesses, solutions []string) (*Matrix, error) {
	if len(guesses) == 0 || len(solutions) == 0 {
		return nil, NewError(EmptyInput, "guesses and solutions lists must both be non-empty")
	}
	for _, w := range guesses {
		if len(w) != WordLength {
			return nil, NewError(InvalidWord, "word %q has length %d, want %d", w, len(w), WordLength)
		}
	}
	index := make(map[string]int, len(guesses))
	for i, w := range guesses {
		index[w] = i
	}
	for _, s := range solutions {
		if _, ok := index[s]; !ok {
			return nil, NewError(SolutionNotGuessable, "solution %q is not present among valid guesses", s)
		}
	}

	m := &Matrix{
		W:              WordLength,
		G:              len(guesses),
		S:              len(solutions),
		table:          make([]Pattern, len(guesses)*len(solutions)),
		patternStrings: make([]string, NumPatterns),
	}
	klog.V(2).Infof("match: computing %d x %d match matrix", m.G, m.S)
	for g, guess := range guesses {
		for s, solution := range solutions {
			p, str := compute(guess, solution)
			m.table[g*m.S+s] = p
			if m.patternStrings[p] == "" {
				m.patternStrings[p] = str
			}
		}
	}
	return m, nil
}

// compute derives the feedback Pattern and its string rendering for a single
// (guess, solution) pair, following the two-pass consumption rule: greens
// first, then yellows against unconsumed solution letters.
func compute(guess, solution string) (Pattern, string) {
	w := len(guess)
	verdicts := make([]Verdict, w)
	consumed := make([]bool, w)

	for i := 0; i < w; i++ {
		if guess[i] == solution[i] {
			verdicts[i] = VerdictGreen
			consumed[i] = true
		}
	}
	for i := 0; i < w; i++ {
		if verdicts[i] == VerdictGreen {
			continue
		}
		for j := 0; j < w; j++ {
			if consumed[j] || solution[j] != guess[i] {
				continue
			}
			verdicts[i] = VerdictYellow
			consumed[j] = true
			break
		}
	}

	var value Pattern
	pow := Pattern(1)
	str := make([]byte, w)
	for i := 0; i < w; i++ {
		value += Pattern(verdicts[i]) * pow
		pow *= 3
		str[i] = renderVerdict(verdicts[i])
	}
	return value, string(str)
}

func renderVerdict(v Verdict) byte {
	switch v {
	case VerdictGreen:
		return 'G'
	case VerdictYellow:
		return 'y'
	default:
		return '.'
	}
}

// ErrorKind classifies construction/rendering errors raised by this package
// and internal/wordlist.
type ErrorKind uint8

//go:generate go tool enumer -type=ErrorKind -trimprefix="" -values -text -json match.go

const (
	EmptyInput ErrorKind = iota
	InvalidWord
	SolutionNotGuessable
	UnknownTargetSolution
)

// Error is a typed construction/lookup error. Use errors.As to recover the
// Kind for programmatic handling; %v / Error() give a human message.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, &match.Error{Kind: match.InvalidWord}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// NewError builds an *Error whose message is formatted with
// github.com/pkg/errors.Errorf. Only the message is kept: the returned error
// carries no stack trace.
func NewError(kind ErrorKind, format string, args ...any) error {
	e := &Error{Kind: kind, msg: errors.Errorf(format, args...).Error()}
	return e
}
