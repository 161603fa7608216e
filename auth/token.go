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
	"slices"
	"strings"
	"time"

	"github.com/pbs-auth/pbsauth/core"
	"github.com/pbs-auth/pbsauth/json"
)

const (
	tokenTypeField    = "token_type"
	scopeField        = "scope"
	accessTokenField  = "access_token"
	refreshTokenField = "refresh_token"
	expiresField      = "expires"
)

// scopeSeparator separates the scopes in the scope field.
const scopeSeparator = " "

var tokenSchema = recordSchema{
	name:     "token",
	required: []string{tokenTypeField, scopeField, accessTokenField, refreshTokenField, expiresField},
}

// Token is the OAuth token issued to the authenticated user.
type Token struct {
	tokenType    string
	scope        []string
	accessToken  string
	refreshToken string
	expires      int64
}

// ParseToken validates the given record and maps it onto a Token.
// The expires field must be an integer, the scope field is a space-delimited list of scopes.
func ParseToken(record map[string]interface{}) core.Result[Token] {
	f, err := tokenSchema.read(record)
	if err != nil {
		return core.Err[Token](err)
	}

	token := Token{
		tokenType:    f.string(tokenTypeField),
		scope:        splitScope(f.string(scopeField)),
		accessToken:  f.string(accessTokenField),
		refreshToken: f.string(refreshTokenField),
		expires:      f.integer(expiresField),
	}
	if f.err != nil {
		return core.Err[Token](f.err)
	}
	return core.Ok(token)
}

// ParseTokenFromText parses a JSON document into a Token.
func ParseTokenFromText(text string) core.Result[Token] {
	return parseText(text, ParseToken)
}

// ParseTokenFromMapping converts a keyed collection (e.g. a map or tagged struct) into a Token.
func ParseTokenFromMapping(mapping interface{}) core.Result[Token] {
	return parseMapping(mapping, ParseToken)
}

// splitScope splits a space-delimited scope string, dropping empty entries caused by leading, trailing or repeated spaces.
func splitScope(scope string) []string {
	result := []string{}
	for _, entry := range strings.Split(scope, scopeSeparator) {
		if entry != "" {
			result = append(result, entry)
		}
	}
	return result
}

// TokenType returns the type of the token, e.g. "Bearer".
func (t Token) TokenType() string {
	return t.tokenType
}

// Scope returns the scopes the token was issued for, in the order they were listed.
func (t Token) Scope() []string {
	return slices.Clone(t.scope)
}

// HasScope returns whether the token was issued for the given scope.
func (t Token) HasScope(scope string) bool {
	return slices.Contains(t.scope, scope)
}

// AccessToken returns the access token.
func (t Token) AccessToken() string {
	return t.accessToken
}

// RefreshToken returns the refresh token.
func (t Token) RefreshToken() string {
	return t.refreshToken
}

// Expires returns the expiry of the token as provided by the identity provider.
func (t Token) Expires() int64 {
	return t.expires
}

// ExpiresAt interprets Expires as Unix time in seconds.
func (t Token) ExpiresAt() time.Time {
	return time.Unix(t.expires, 0)
}

// ToMapping returns the Token in its serialized form.
func (t Token) ToMapping() map[string]interface{} {
	return map[string]interface{}{
		tokenTypeField:    t.tokenType,
		scopeField:        strings.Join(t.scope, scopeSeparator),
		accessTokenField:  t.accessToken,
		refreshTokenField: t.refreshToken,
		expiresField:      t.expires,
	}
}

// ToText returns the Token as JSON document.
func (t Token) ToText() string {
	return toText(t.ToMapping())
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToMapping())
}
