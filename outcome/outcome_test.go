package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/outcome"
)

func TestString(t *testing.T) {
	require.Equal(t, "pass", outcome.Pass.String())
	require.Equal(t, "fail", outcome.Fail.String())
	require.Equal(t, "unresolved", outcome.Unresolved.String())
	require.Equal(t, "outcome(7)", outcome.Outcome(7).String())
}

func TestIsFail(t *testing.T) {
	require.True(t, outcome.Fail.IsFail())
	require.False(t, outcome.Pass.IsFail())
	require.False(t, outcome.Unresolved.IsFail())
}
