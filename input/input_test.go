package input_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/input"
)

func TestNewAndAccessors(t *testing.T) {
	in := input.New([]byte("abc"))
	require.Equal(t, 3, in.Len())
	require.Equal(t, byte('a'), in.At(0))
	require.Equal(t, byte('c'), in.At(2))
	require.Equal(t, []byte("abc"), in.Data())
}

func TestNewCopiesBackingSlice(t *testing.T) {
	data := []byte("abc")
	in := input.New(data)
	data[0] = 'z'
	require.Equal(t, byte('a'), in.At(0), "Input must not alias the caller's slice")
}

func TestDistinctIdentity(t *testing.T) {
	a := input.New([]int{1, 2, 3})
	b := input.New([]int{1, 2, 3})
	require.NotSame(t, a, b)
}

func TestNilLen(t *testing.T) {
	var in *input.Input[int]
	require.Equal(t, 0, in.Len())
}
