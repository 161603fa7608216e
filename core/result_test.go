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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	failure := errors.New("failure")

	t.Run("ok", func(t *testing.T) {
		result := Ok("value")

		assert.True(t, result.IsOk())
		assert.False(t, result.IsError())
		assert.NoError(t, result.Error())
		value, err := result.Value()
		require.NoError(t, err)
		assert.Equal(t, "value", value)
		assert.Equal(t, "value", result.ValueOr("fallback"))
	})
	t.Run("ok with nil value", func(t *testing.T) {
		result := Ok[*string](nil)

		assert.True(t, result.IsOk())
		value, err := result.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	})
	t.Run("error", func(t *testing.T) {
		result := Err[string](failure)

		assert.False(t, result.IsOk())
		assert.True(t, result.IsError())
		assert.Same(t, failure, result.Error())
		assert.Equal(t, "fallback", result.ValueOr("fallback"))
	})
	t.Run("value on error is invalid state", func(t *testing.T) {
		result := Err[int](failure)

		value, err := result.Value()

		assert.ErrorIs(t, err, ErrInvalidState)
		assert.ErrorIs(t, err, failure)
		assert.Zero(t, value)
	})
	t.Run("error without error", func(t *testing.T) {
		result := Err[int](nil)

		assert.True(t, result.IsError())
		assert.ErrorIs(t, result.Error(), ErrInvalidState)
	})
	t.Run("zero value is an error", func(t *testing.T) {
		var result Result[int]

		assert.True(t, result.IsError())
		assert.ErrorIs(t, result.Error(), ErrInvalidState)
	})
	t.Run("unwrap", func(t *testing.T) {
		value, err := Ok(42).Unwrap()
		require.NoError(t, err)
		assert.Equal(t, 42, value)

		_, err = Err[int](failure).Unwrap()
		assert.Same(t, failure, err)
	})
}
