// Package solveconfig parses the solver's tunables (prune_limit, workers,
// max_guesses) from a single configuration string, the same comma-separated
// key=value convention the teacher's internal/parameters package uses for AI
// configuration strings like "linear,ab,max_depth=4".
package solveconfig

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params is a generic configuration map, one entry per key=value pair.
type Params map[string]string

// NewFromConfigString splits config on commas, then each part on the first
// '=': a part with no '=' is recorded with an empty value.
func NewFromConfigString(config string) Params {
	params := make(Params)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		subParts := strings.SplitN(part, "=", 2)
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// GetIntOr returns the int value of key, or defaultValue if key is absent.
func GetIntOr(params Params, key string, defaultValue int) (int, error) {
	value, exists := params[key]
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	}
	return parsed, nil
}

// Config is the solver's resolved tunables, populated by Parse on top of
// caller-supplied defaults; Parse has no defaults of its own. The CLI passes
// PruneLimit 15, Workers 0 meaning 2*GOMAXPROCS, and MaxGuesses
// search.DefaultMaxGuesses.
type Config struct {
	PruneLimit int
	Workers    int
	MaxGuesses int
}

// Parse reads overrides out of a config string such as "prune_limit=20,workers=4"
// on top of the given defaults.
func Parse(config string, defaults Config) (Config, error) {
	params := NewFromConfigString(config)
	out := defaults

	var err error
	if out.PruneLimit, err = GetIntOr(params, "prune_limit", defaults.PruneLimit); err != nil {
		return Config{}, err
	}
	if out.Workers, err = GetIntOr(params, "workers", defaults.Workers); err != nil {
		return Config{}, err
	}
	if out.MaxGuesses, err = GetIntOr(params, "max_guesses", defaults.MaxGuesses); err != nil {
		return Config{}, err
	}
	return out, nil
}
