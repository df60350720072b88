package dynarray

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// View is an immutable snapshot produced by Array.Copy. It has no methods
// that change it, and Slice hands out copies.
type View[T comparable] struct {
	items []T
}

func (v View[T]) Len() int {
	return len(v.items)
}

func (v View[T]) At(index int) (T, error) {
	if index < 0 || index >= len(v.items) {
		var zero T
		return zero, indexOutOfRange("View.At", index, len(v.items))
	}
	return v.items[index], nil
}

func (v View[T]) Contains(e T) bool {
	return slices.Contains(v.items, e)
}

// Slice returns a copy of the snapshot.
func (v View[T]) Slice() []T {
	return slices.Clone(v.items)
}

func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.items {
			if !yield(e) {
				return
			}
		}
	}
}

func (v View[T]) String() string {
	return fmt.Sprint(v.items)
}
