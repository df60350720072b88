package dynarray

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// Contains reports whether v is among the elements.
func (a *Array[T]) Contains(v T) bool {
	return slices.Contains(a.container[:a.size], v)
}

// ContainsAll reports whether every value in vs is among the elements.
// Duplicates in vs need only one match.
func (a *Array[T]) ContainsAll(vs []T) bool {
	for _, v := range vs {
		if !a.Contains(v) {
			return false
		}
	}
	return true
}

// TakeN returns a new slice holding the first min(n, Size) elements.
// On an empty array the whole backing store is copied instead, so the result
// has Capacity zero-valued entries.
func (a *Array[T]) TakeN(n int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("TakeN", "n %d is negative", n)
	}
	if a.size == 0 {
		return slices.Clone(a.container), nil
	}
	n = min(n, a.size)
	out := make([]T, n)
	copy(out, a.container[:n])
	return out, nil
}

// DropN returns a new slice without the last n elements, that is elements
// [0, Size-n). If n exceeds Size the result is empty.
func (a *Array[T]) DropN(n int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("DropN", "n %d is negative", n)
	}
	if n > a.size {
		return []T{}, nil
	}
	out := make([]T, a.size-n)
	copy(out, a.container[:a.size-n])
	return out, nil
}

// AddAll pushes each value in order. A nil vs is rejected. The first failing
// push stops the call; values before it remain added.
func (a *Array[T]) AddAll(vs ...T) error {
	if vs == nil {
		return invalidArgument("AddAll", "elements are nil")
	}
	for i, v := range vs {
		if err := a.Push(v); err != nil {
			return fmt.Errorf("AddAll: element %d: %w", i, err)
		}
	}
	return nil
}

// Copy returns a read-only snapshot of the elements.
func (a *Array[T]) Copy() View[T] {
	return View[T]{items: a.snapshot()}
}

// Values returns a sequence over a snapshot of the elements taken now. Later
// changes to the array are not seen.
func (a *Array[T]) Values() iter.Seq[T] {
	items := a.snapshot()
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// All is like Values but also yields indexes.
func (a *Array[T]) All() iter.Seq2[int, T] {
	items := a.snapshot()
	return func(yield func(int, T) bool) {
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether both arrays have the same capacity and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == other {
		return true
	}
	if other == nil {
		return false
	}
	return len(a.container) == len(other.container) &&
		slices.Equal(a.container[:a.size], other.container[:other.size])
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.container[:a.size])
}

func (a *Array[T]) snapshot() []T {
	return slices.Clone(a.container[:a.size])
}
