package solveconfig_test

import (
	"testing"

	"github.com/lorenzo-stoakes/wordle-solver/internal/solveconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() solveconfig.Config {
	return solveconfig.Config{PruneLimit: 15, Workers: 0, MaxGuesses: 6}
}

func TestParseEmptyStringReturnsDefaults(t *testing.T) {
	cfg, err := solveconfig.Parse("", defaults())
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestParseOverridesIndividualFields(t *testing.T) {
	cfg, err := solveconfig.Parse("prune_limit=5,workers=2", defaults())
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PruneLimit)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 6, cfg.MaxGuesses)
}

func TestParseInvalidIntReturnsError(t *testing.T) {
	_, err := solveconfig.Parse("prune_limit=not-a-number", defaults())
	require.Error(t, err)
}

func TestNewFromConfigStringHandlesBareKeys(t *testing.T) {
	params := solveconfig.NewFromConfigString("foo,bar=1")
	assert.Equal(t, "", params["foo"])
	assert.Equal(t, "1", params["bar"])
}
