package probdd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
	"github.com/corvid-labs/deltadebug/probdd"
)

// oracle matches spec scenario 3: unresolved unless {3,5,7} all present,
// fail additionally requiring {13,15,17} all present.
func scenarioOracle(cfg configuration.Configuration[int]) (outcome.Outcome, error) {
	has := map[int]bool{}
	for _, v := range cfg.Data() {
		has[v] = true
	}
	if !has[3] || !has[5] || !has[7] {
		return outcome.Unresolved, nil
	}
	if has[13] && has[15] && has[17] {
		return outcome.Fail, nil
	}
	return outcome.Pass, nil
}

func TestProbDDReducesToExpectedSet(t *testing.T) {
	data := make([]int, 20)
	for i := range data {
		data[i] = i
	}
	in := input.New(data)

	p := probdd.New[int]()
	result, err := p.Run(context.Background(), in, scenarioOracle, cache.NewHashCache[int]())
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 7, 13, 15, 17}, result.Data())
}

func TestProbDDName(t *testing.T) {
	require.Equal(t, "ProbDD", probdd.New[int]().Name())
}
