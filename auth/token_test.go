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

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pbs-auth/pbsauth/json"
	"github.com/pbs-auth/pbsauth/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRecord() map[string]interface{} {
	return map[string]interface{}{
		"token_type":    "Bearer",
		"scope":         "account vppa",
		"access_token":  "access-token",
		"refresh_token": "refresh-token",
		"expires":       int64(1700000000),
	}
}

const tokenRecordText = `{"token_type": "Bearer", "scope": "account vppa", "access_token": "access-token", "refresh_token": "refresh-token", "expires": 1700000000}`

func TestParseToken(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		token, err := ParseToken(tokenRecord()).Value()

		require.NoError(t, err)
		assert.Equal(t, "Bearer", token.TokenType())
		assert.Equal(t, []string{"account", "vppa"}, token.Scope())
		assert.Equal(t, "access-token", token.AccessToken())
		assert.Equal(t, "refresh-token", token.RefreshToken())
		assert.Equal(t, int64(1700000000), token.Expires())
		assert.True(t, token.ExpiresAt().Equal(time.Unix(1700000000, 0)))
		assert.True(t, token.HasScope("vppa"))
		assert.False(t, token.HasScope("admin"))
	})
	t.Run("scope tolerates extra spaces", func(t *testing.T) {
		record := tokenRecord()
		record["scope"] = " read  write "

		token, err := ParseToken(record).Value()

		require.NoError(t, err)
		assert.Equal(t, []string{"read", "write"}, token.Scope())
	})
	t.Run("empty scope", func(t *testing.T) {
		record := tokenRecord()
		record["scope"] = ""

		token, err := ParseToken(record).Value()

		require.NoError(t, err)
		assert.Empty(t, token.Scope())
		assert.NotNil(t, token.Scope())
	})
	t.Run("expires accepts integer types", func(t *testing.T) {
		for _, value := range []interface{}{1700000000, int32(1700000000), uint32(1700000000), json.Number("1700000000")} {
			record := tokenRecord()
			record["expires"] = value

			token, err := ParseToken(record).Value()

			require.NoError(t, err, "value: %#v", value)
			assert.Equal(t, int64(1700000000), token.Expires())
		}
	})
	t.Run("expires accepts whole floats from decoded JSON", func(t *testing.T) {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(tokenRecordText), &record))
		require.IsType(t, float64(0), record["expires"])

		token, err := ParseToken(record).Value()

		require.NoError(t, err)
		assert.Equal(t, int64(1700000000), token.Expires())
	})
	t.Run("error - expires is a fraction in text", func(t *testing.T) {
		text := strings.Replace(tokenRecordText, "1700000000", "1700000000.0", 1)

		err := ParseTokenFromText(text).Error()

		test.AssertFieldError(t, err, ErrTypeMismatch, "expires")
	})
	t.Run("error - missing field", func(t *testing.T) {
		for _, field := range tokenSchema.required {
			record := tokenRecord()
			delete(record, field)

			err := ParseToken(record).Error()

			test.AssertFieldError(t, err, ErrMissingField, field)
		}
	})
	t.Run("error - expires is not an integer", func(t *testing.T) {
		for _, value := range []interface{}{"1700000000", 1700000000.5, float32(0.5), 1e19, json.Number("1700000000.0"), json.Number("1.7e9"), nil, true, uint64(1 << 63)} {
			record := tokenRecord()
			record["expires"] = value

			err := ParseToken(record).Error()

			test.AssertFieldError(t, err, ErrTypeMismatch, "expires")
		}
	})
	t.Run("error - expires is a numeric string", func(t *testing.T) {
		record := tokenRecord()
		record["expires"] = "1700000000"

		err := ParseToken(record).Error()

		assert.EqualError(t, err, "malformed token: expires field must be of type integer, got string")
	})
	t.Run("error - scope is not a string", func(t *testing.T) {
		record := tokenRecord()
		record["scope"] = []interface{}{"read", "write"}

		err := ParseToken(record).Error()

		test.AssertFieldError(t, err, ErrTypeMismatch, "scope")
	})
}

func TestToken_ToMapping(t *testing.T) {
	t.Run("reproduces all fields", func(t *testing.T) {
		token := ParseToken(tokenRecord()).ValueOr(Token{})

		assert.Equal(t, tokenRecord(), token.ToMapping())
	})
	t.Run("scope is joined with single spaces", func(t *testing.T) {
		record := tokenRecord()
		record["scope"] = "  read write  "
		token := ParseToken(record).ValueOr(Token{})

		assert.Equal(t, "read write", token.ToMapping()["scope"])
	})
	t.Run("text", func(t *testing.T) {
		token := ParseToken(tokenRecord()).ValueOr(Token{})

		assert.JSONEq(t, `{"token_type": "Bearer", "scope": "account vppa", "access_token": "access-token", "refresh_token": "refresh-token", "expires": 1700000000}`, token.ToText())
	})
	t.Run("scope accessor returns a copy", func(t *testing.T) {
		token := ParseToken(tokenRecord()).ValueOr(Token{})

		token.Scope()[0] = "admin"

		assert.Equal(t, []string{"account", "vppa"}, token.Scope())
	})
}

func TestToken_RoundTrip(t *testing.T) {
	sampler := test.NewSampler(3)
	for i := 0; i < sampleCount; i++ {
		sample := sampler.Sample("token")

		first, err := ParseToken(sample).Value()
		require.NoError(t, err, "sample: %v", sample)
		second, err := ParseToken(first.ToMapping()).Value()
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, sample["expires"], first.ToMapping()["expires"])
	}
}
