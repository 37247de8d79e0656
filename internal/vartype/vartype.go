// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides a value wrapper that knows whether it was ever set. The forecast
// table uses it as the absent marker for parameters missing from a time step.
package vartype

import (
	"fmt"
)

// Absent is the string representation of a Variable that holds no value.
const Absent = "n/a"

// VarFloat64 is a Variable holding a float64 forecast value.
type VarFloat64 = Variable[float64]

// Variable holds a value and tracks whether it has been set.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable returns a Variable that is set to value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Value returns the stored value, or the zero value of T if absent.
func (v Variable[T]) Value() T {
	return v.value
}

// Set stores val and marks the Variable as set.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet reports whether the Variable holds a value.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

func (v Variable[T]) String() string {
	if !v.isset {
		return Absent
	}
	return fmt.Sprint(v.value)
}
