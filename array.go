// Package dynarray provides a generic growable array with explicit capacity
// management.
package dynarray

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Array is a resizable array of comparable values. The backing store holds
// Capacity slots of which the first Size are in use.
//
// Array is not safe for concurrent use.
type Array[T comparable] struct {
	container []T
	size      int

	policy  GrowthPolicy
	logger  log.Logger
	metrics *Metrics
}

// New returns an empty array with capacity 1.
func New[T comparable](opts ...Option) *Array[T] {
	a, _ := NewWithCapacity[T](1, opts...)
	return a
}

// NewWithCapacity returns an empty array with the given capacity, which may
// be zero.
func NewWithCapacity[T comparable](capacity int, opts ...Option) (*Array[T], error) {
	if capacity < 0 {
		return nil, invalidArgument("NewWithCapacity", "capacity %d is negative", capacity)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Array[T]{
		container: make([]T, capacity),
		policy:    cfg.policy,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}, nil
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return a.size
}

func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return len(a.container)
}

// Push appends v, growing the backing store when it is full.
func (a *Array[T]) Push(v T) error {
	if err := checkValue("Push", v); err != nil {
		return err
	}
	if a.size == len(a.container) {
		a.grow()
	}
	a.container[a.size] = v
	a.size++
	return nil
}

// Pop removes and returns the last element. It reports false on an empty
// array.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.size == 0 {
		return zero, false
	}
	a.size--
	v := a.container[a.size]
	a.container[a.size] = zero
	return v, true
}

func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, indexOutOfRange("Get", index, a.size)
	}
	return a.container[index], nil
}

// Set replaces the element at index and returns the previous one.
func (a *Array[T]) Set(index int, v T) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, indexOutOfRange("Set", index, a.size)
	}
	if err := checkValue("Set", v); err != nil {
		return zero, err
	}
	old := a.container[index]
	a.container[index] = v
	return old, nil
}

// Delete removes the element at index, shifting later elements left, and
// returns it.
func (a *Array[T]) Delete(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, indexOutOfRange("Delete", index, a.size)
	}
	v := a.container[index]
	copy(a.container[index:a.size-1], a.container[index+1:a.size])
	a.size--
	a.container[a.size] = zero
	return v, nil
}

// Remove deletes the last element. Unlike Pop it fails on an empty array.
func (a *Array[T]) Remove() error {
	_, err := a.Delete(a.size - 1)
	return err
}

// RemoveAt deletes the element at index.
func (a *Array[T]) RemoveAt(index int) error {
	_, err := a.Delete(index)
	return err
}

// Clear drops all elements. Capacity is unchanged.
func (a *Array[T]) Clear() {
	clear(a.container[:a.size])
	a.size = 0
}

// EnsureCapacity reallocates the backing store to exactly capacity slots.
// Shrinking below the current capacity is rejected.
func (a *Array[T]) EnsureCapacity(capacity int) error {
	if capacity < len(a.container) {
		return invalidArgument("EnsureCapacity", "capacity %d below current %d", capacity, len(a.container))
	}
	a.realloc(opEnsure, capacity)
	return nil
}

// TrimToSize shrinks the backing store to exactly Size slots.
func (a *Array[T]) TrimToSize() {
	a.realloc(opTrim, a.size)
}

func (a *Array[T]) grow() {
	a.realloc(opGrow, a.policy.Next(len(a.container), a.size))
}

// realloc swaps in a new backing store of the given capacity holding the
// current elements. capacity must be at least a.size.
func (a *Array[T]) realloc(op string, capacity int) {
	newContainer := make([]T, capacity)
	copy(newContainer, a.container[:a.size])

	level.Debug(a.logger).Log("msg", "reallocated", "op", op, "from", len(a.container), "to", capacity, "size", a.size)
	a.metrics.observe(op, a.size)

	a.container = newContainer
}
