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

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampler_Sample(t *testing.T) {
	sampler := NewSampler(1)

	t.Run("generates all fields of the record type", func(t *testing.T) {
		for recordType, fields := range SampleSchema {
			sample := sampler.Sample(recordType)

			assert.Len(t, sample, len(fields), recordType)
			for _, field := range fields {
				assert.Contains(t, sample, field.Key)
			}
		}
	})
	t.Run("nests referenced records", func(t *testing.T) {
		sample := sampler.Sample("auth")

		assert.IsType(t, map[string]interface{}{}, sample["owner"])
		assert.IsType(t, map[string]interface{}{}, sample["token"])
	})
	t.Run("expires is an integer", func(t *testing.T) {
		assert.IsType(t, int64(0), sampler.Sample("token")["expires"])
	})
	t.Run("unknown record type", func(t *testing.T) {
		assert.Panics(t, func() {
			sampler.Sample("unknown")
		})
	})
}
