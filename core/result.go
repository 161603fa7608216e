/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
)

// ErrInvalidState is returned when a value is requested from a Result that holds an error.
var ErrInvalidState = errors.New("invalid state")

// Result holds either a successfully parsed value or the error that prevented it, never both.
// The zero value is not valid; create one through Ok or Err.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err returns a failed Result holding the given error.
// A nil error is a programming error and yields a Result holding ErrInvalidState.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = WrapError(ErrInvalidState, errors.New("error result created without an error"))
	}
	return Result[T]{err: err}
}

// IsOk returns true if the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsError returns true if the Result holds an error.
func (r Result[T]) IsError() bool {
	return !r.ok
}

// Value returns the held value. When the Result holds an error, the zero value is returned together
// with an error that matches ErrInvalidState and wraps the held error.
func (r Result[T]) Value() (T, error) {
	if !r.ok {
		var empty T
		return empty, WrapError(ErrInvalidState, r.Error())
	}
	return r.value, nil
}

// ValueOr returns the held value, or fallback if the Result holds an error.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Error returns the held error, or nil if the Result holds a value.
func (r Result[T]) Error() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrInvalidState
	}
	return r.err
}

// Unwrap returns the held value and error as a regular Go pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Error()
}
