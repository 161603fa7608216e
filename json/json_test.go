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

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithNumbers(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var actual map[string]interface{}

		err := UnmarshalWithNumbers([]byte(`{"int": 1234, "fraction": 12.5, "text": "1234"}`), &actual)

		require.NoError(t, err)
		assert.Equal(t, Number("1234"), actual["int"])
		assert.Equal(t, Number("12.5"), actual["fraction"])
		assert.Equal(t, "1234", actual["text"])
	})
	t.Run("trailing whitespace", func(t *testing.T) {
		var actual map[string]interface{}

		err := UnmarshalWithNumbers([]byte("{}\n\t "), &actual)

		assert.NoError(t, err)
	})
	t.Run("trailing data", func(t *testing.T) {
		var actual map[string]interface{}

		err := UnmarshalWithNumbers([]byte(`{} {}`), &actual)

		assert.EqualError(t, err, "unexpected data after top-level value")
	})
	t.Run("invalid JSON", func(t *testing.T) {
		var actual map[string]interface{}

		err := UnmarshalWithNumbers([]byte(`{`), &actual)

		assert.Error(t, err)
	})
}
