// Package wordlist is the external collaborator spec.md §1 calls out as out
// of scope for the core: reading word lists from text files. It owns
// loading and the length and uniqueness validation (InvalidWord) before a
// word list is handed to internal/match; empty lists are not rejected here
// (internal/match.NewMatrix reports EmptyInput).
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/lorenzo-stoakes/wordle-solver/internal/generics"
	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
)

// Load reads one word per line from path, lower-casing and trimming each,
// skipping blank lines.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open word list %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			klog.Warningf("wordlist: failed to close %q: %v", path, cerr)
		}
	}()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read word list %q", path)
	}
	klog.V(1).Infof("wordlist: loaded %d words from %q", len(words), path)
	return words, nil
}

// ValidateLength returns match.InvalidWord if any word's length != w.
func ValidateLength(words []string, w int) error {
	for _, word := range words {
		if len(word) != w {
			return match.NewError(match.InvalidWord, "word %q has length %d, want %d", word, len(word), w)
		}
	}
	return nil
}

// ValidateUnique returns match.InvalidWord if words contains any word twice.
func ValidateUnique(words []string) error {
	seen := generics.MakeSet[string](len(words))
	for _, w := range words {
		if seen.Has(w) {
			return match.NewError(match.InvalidWord, "word %q appears more than once in the list", w)
		}
		seen.Insert(w)
	}
	return nil
}

// IndexOf returns the index of target within words, and false if absent.
func IndexOf(words []string, target string) (int, bool) {
	for i, w := range words {
		if w == target {
			return i, true
		}
	}
	return 0, false
}
