// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "gopkg.in/yaml.v3"

// Override is an optional configuration value with last-write-wins
// layering: a slot is either absent (no override supplied) or carries
// one value. Merging two slots keeps the rightmost present value;
// absent merged with absent stays absent. Merge is associative, so
// any number of layers can be folded in order.
type Override[T any] struct {
	value T
	set   bool
}

// SetTo returns a slot carrying value.
func SetTo[T any](value T) Override[T] {
	return Override[T]{value: value, set: true}
}

// Unset returns the absent slot. Identical to the zero value; the
// constructor exists for call sites that spell out both cases.
func Unset[T any]() Override[T] {
	return Override[T]{}
}

// IsSet reports whether the slot carries a value.
func (o Override[T]) IsSet() bool {
	return o.set
}

// Value returns the carried value and whether one is present.
func (o Override[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the carried value, or fallback when the slot is absent.
func (o Override[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Merge layers later over o: the later slot wins when present,
// otherwise o is kept.
func (o Override[T]) Merge(later Override[T]) Override[T] {
	if later.set {
		return later
	}
	return o
}

// MarshalYAML renders an absent slot as null and a present slot as
// its value.
func (o Override[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML fills the slot from a present document node. Keys
// absent from the document never reach this method, so they leave the
// slot unset.
func (o *Override[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = Override[T]{}
		return nil
	}
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	*o = SetTo(value)
	return nil
}
