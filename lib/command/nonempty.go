// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package command

import "fmt"

// NonEmpty is a sequence with at least one element. Construction is
// the only way to obtain one, so emptiness is unrepresentable in a
// command variant that carries it. Element order is the order given
// at construction (for flags, command-line order).
type NonEmpty[T any] struct {
	items []T
}

// NewNonEmpty validates that items has at least one element. what
// names the source of the requirement for the error message (e.g.
// "--txin").
func NewNonEmpty[T any](what string, items []T) (NonEmpty[T], error) {
	if len(items) == 0 {
		return NonEmpty[T]{}, fmt.Errorf("at least one %s occurrence is required", what)
	}
	copied := make([]T, len(items))
	copy(copied, items)
	return NonEmpty[T]{items: copied}, nil
}

// Items returns the elements in order. The returned slice is a copy;
// mutating it does not affect the NonEmpty.
func (n NonEmpty[T]) Items() []T {
	copied := make([]T, len(n.items))
	copy(copied, n.items)
	return copied
}

// Head returns the first element.
func (n NonEmpty[T]) Head() T {
	return n.items[0]
}

// Len returns the element count (always at least 1 for a constructed
// value).
func (n NonEmpty[T]) Len() int {
	return len(n.items)
}

// MarshalYAML renders the sequence as a plain YAML list.
func (n NonEmpty[T]) MarshalYAML() (any, error) {
	return n.items, nil
}
