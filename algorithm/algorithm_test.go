package algorithm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
)

func TestTestMissesThenHitsCache(t *testing.T) {
	in := input.New([]int{0, 1, 2, 3})
	cfg, err := configuration.New(in, []int{1, 2})
	require.NoError(t, err)

	calls := 0
	oracle := func(c configuration.Configuration[int]) (outcome.Outcome, error) {
		calls++
		return outcome.Fail, nil
	}

	c := cache.NewHashCache[int]()
	o, err := algorithm.Test(oracle, cfg, c)
	require.NoError(t, err)
	require.Equal(t, outcome.Fail, o)
	require.Equal(t, 1, calls)

	o, err = algorithm.Test(oracle, cfg, c)
	require.NoError(t, err)
	require.Equal(t, outcome.Fail, o)
	require.Equal(t, 1, calls, "second Test must hit the cache, not re-invoke the oracle")
}

func TestTestWithoutCacheAlwaysInvokesOracle(t *testing.T) {
	in := input.New([]int{0, 1, 2})
	cfg := configuration.FromInput(in)

	calls := 0
	oracle := func(c configuration.Configuration[int]) (outcome.Outcome, error) {
		calls++
		return outcome.Pass, nil
	}

	_, err := algorithm.Test(oracle, cfg, nil)
	require.NoError(t, err)
	_, err = algorithm.Test(oracle, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "a nil cache must never suppress oracle invocation")
}

func TestTestPropagatesOracleError(t *testing.T) {
	in := input.New([]int{0, 1})
	cfg := configuration.FromInput(in)
	boom := errors.New("oracle exploded")

	oracle := func(c configuration.Configuration[int]) (outcome.Outcome, error) {
		return 0, boom
	}

	_, err := algorithm.Test(oracle, cfg, cache.NewHashCache[int]())
	require.ErrorIs(t, err, boom)
}

func TestTestStoresResultInTreeCache(t *testing.T) {
	in := input.New([]int{0, 1, 2})
	cfg, err := configuration.New(in, []int{0, 1})
	require.NoError(t, err)

	oracle := func(c configuration.Configuration[int]) (outcome.Outcome, error) {
		return outcome.Pass, nil
	}

	c := cache.NewTreeCache[int]()
	require.False(t, c.Contains(cfg))
	_, err = algorithm.Test(oracle, cfg, c)
	require.NoError(t, err)
	require.True(t, c.Contains(cfg))
}
