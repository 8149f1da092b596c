package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
)

func TestFromInputAndEmpty(t *testing.T) {
	in := input.New([]int{10, 20, 30})
	full := configuration.FromInput(in)
	require.Equal(t, 3, full.Len())
	require.Equal(t, []int{0, 1, 2}, full.Indices())
	require.Equal(t, []int{10, 20, 30}, full.Data())

	empty := configuration.Empty(in)
	require.Equal(t, 0, empty.Len())
}

func TestNewValidation(t *testing.T) {
	in := input.New([]int{1, 2, 3})

	_, err := configuration.New(in, []int{0, 2})
	require.NoError(t, err)

	_, err = configuration.New(in, []int{2, 0})
	require.ErrorIs(t, err, configuration.ErrBadIndices)

	_, err = configuration.New(in, []int{0, 0})
	require.ErrorIs(t, err, configuration.ErrBadIndices)

	_, err = configuration.New(in, []int{5})
	require.ErrorIs(t, err, configuration.ErrBadIndices)

	_, err = configuration.New(in, []int{-1})
	require.ErrorIs(t, err, configuration.ErrBadIndices)
}

func TestSliceAndValueAt(t *testing.T) {
	in := input.New([]byte("abcdef"))
	full := configuration.FromInput(in)
	sub := full.Slice(2, 5)
	require.Equal(t, []int{2, 3, 4}, sub.Indices())
	require.Equal(t, byte('c'), sub.ValueAt(0))
	require.Equal(t, []byte("cde"), sub.Data())
}

func TestUnionSubtractConcat(t *testing.T) {
	in := input.New([]int{0, 1, 2, 3, 4})
	a, _ := configuration.New(in, []int{0, 2, 4})
	b, _ := configuration.New(in, []int{1, 2, 3})

	union, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, union.Indices())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4}, diff.Indices())

	c, _ := configuration.New(in, []int{4})
	concat, err := configuration.Concat(a, b, c)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, concat.Indices())
}

func TestInputMismatch(t *testing.T) {
	in1 := input.New([]int{1, 2, 3})
	in2 := input.New([]int{1, 2, 3})
	a := configuration.FromInput(in1)
	b := configuration.FromInput(in2)

	_, err := a.Union(b)
	require.ErrorIs(t, err, configuration.ErrInputMismatch)

	_, err = a.Subtract(b)
	require.ErrorIs(t, err, configuration.ErrInputMismatch)

	_, err = configuration.Concat(a, b)
	require.ErrorIs(t, err, configuration.ErrInputMismatch)
}

// TestAlgebraLaws checks the laws spec.md requires: associativity and
// idempotence of union, A-A = empty, A+empty = A, and that union output
// stays sorted and unique.
func TestAlgebraLaws(t *testing.T) {
	in := input.New([]int{0, 1, 2, 3, 4, 5, 6})
	a, _ := configuration.New(in, []int{0, 2, 4})
	b, _ := configuration.New(in, []int{1, 2, 5})
	c, _ := configuration.New(in, []int{2, 3, 6})
	empty := configuration.Empty(in)

	ab, _ := a.Union(b)
	abThenC, _ := ab.Union(c)
	bc, _ := b.Union(c)
	aThenBC, _ := a.Union(bc)
	require.True(t, abThenC.Equal(aThenBC), "union must be associative")

	aa, _ := a.Union(a)
	require.True(t, aa.Equal(a), "union must be idempotent")

	aMinusA, _ := a.Subtract(a)
	require.Equal(t, 0, aMinusA.Len())

	aPlusEmpty, _ := a.Union(empty)
	require.True(t, aPlusEmpty.Equal(a))

	require.True(t, sortedUnique(ab.Indices()))
}

func TestContains(t *testing.T) {
	in := input.New([]int{0, 1, 2, 3, 4})
	c, _ := configuration.New(in, []int{1, 3})
	require.True(t, c.Contains(1))
	require.True(t, c.Contains(3))
	require.False(t, c.Contains(0))
	require.False(t, c.Contains(4))
}

func sortedUnique(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		if idx[i-1] >= idx[i] {
			return false
		}
	}
	return true
}
