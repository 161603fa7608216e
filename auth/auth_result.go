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
	"github.com/pbs-auth/pbsauth/core"
	"github.com/pbs-auth/pbsauth/json"
)

const (
	ownerField = "owner"
	tokenField = "token"
)

var authResultSchema = recordSchema{
	name:     "auth result",
	required: []string{ownerField, tokenField},
}

// AuthResult is a successfully validated authentication response: the authenticated user and the token issued to them.
type AuthResult struct {
	owner Owner
	token Token
}

// ParseAuthResult validates the given authentication response and maps it onto an AuthResult.
// The owner is validated before the token, so when both are invalid the owner's error is returned.
// Errors of the nested records are returned as-is.
func ParseAuthResult(record map[string]interface{}) core.Result[AuthResult] {
	f, err := authResultSchema.read(record)
	if err != nil {
		return core.Err[AuthResult](err)
	}
	f.present(ownerField)
	f.present(tokenField)
	ownerRecord := f.object(ownerField)
	if f.err != nil {
		return core.Err[AuthResult](f.err)
	}
	owner, err := ParseOwner(ownerRecord).Unwrap()
	if err != nil {
		return core.Err[AuthResult](err)
	}

	tokenRecord := f.object(tokenField)
	if f.err != nil {
		return core.Err[AuthResult](f.err)
	}
	token, err := ParseToken(tokenRecord).Unwrap()
	if err != nil {
		return core.Err[AuthResult](err)
	}
	return core.Ok(AuthResult{owner: owner, token: token})
}

// ParseAuthResultFromText parses the JSON authentication response returned by the identity provider.
func ParseAuthResultFromText(text string) core.Result[AuthResult] {
	return parseText(text, ParseAuthResult)
}

// ParseAuthResultFromMapping converts a keyed collection (e.g. a map or tagged struct) into an AuthResult.
func ParseAuthResultFromMapping(mapping interface{}) core.Result[AuthResult] {
	return parseMapping(mapping, ParseAuthResult)
}

// Owner returns the authenticated user.
func (a AuthResult) Owner() Owner {
	return a.owner
}

// Token returns the token issued to the authenticated user.
func (a AuthResult) Token() Token {
	return a.token
}

// ToMapping returns the AuthResult in its serialized form.
func (a AuthResult) ToMapping() map[string]interface{} {
	return map[string]interface{}{
		ownerField: a.owner.ToMapping(),
		tokenField: a.token.ToMapping(),
	}
}

// ToText returns the AuthResult as JSON document.
func (a AuthResult) ToText() string {
	return toText(a.ToMapping())
}

func (a AuthResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToMapping())
}
