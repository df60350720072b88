package dynarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAbsent(t *testing.T) {
	var p *int
	var ch chan int
	var m map[string]int
	x := 1

	require.True(t, isAbsent[*int](p))
	require.True(t, isAbsent[chan int](ch))
	require.True(t, isAbsent[any](nil))
	require.True(t, isAbsent[any](m))
	require.True(t, isAbsent[error](nil))

	require.False(t, isAbsent(&x))
	require.False(t, isAbsent(0))
	require.False(t, isAbsent(""))
	require.False(t, isAbsent[any](x))
	require.False(t, isAbsent[error](errors.New("x")))
}

func TestErrorMessages(t *testing.T) {
	arr := newArray(t, 1, 2, 3)

	_, err := arr.Get(3)
	require.EqualError(t, err, "Get: index 3 not in [0, 3): index out of range")

	_, err = arr.TakeN(-2)
	require.EqualError(t, err, "TakeN: n -2 is negative: invalid argument")

	err = New[*int]().AddAll(nil, nil)
	require.EqualError(t, err, "AddAll: element 0: Push: value is nil: invalid argument")

	err = New[any]().Push([]int{1})
	require.EqualError(t, err, "Push: value of type []int is not comparable: invalid argument")
}
