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

// Package schema contains the JSON schema of the authentication response, used for strict validation.
package schema

import (
	"bytes"
	_ "embed"
	"errors"

	"github.com/pbs-auth/pbsauth/core"
	"github.com/santhosh-tekuri/jsonschema"
)

// URL is the identifier of the authentication response schema.
const URL = "https://pbs-auth.github.io/schemas/auth-result.json"

// ErrSchemaViolation is returned when a document doesn't conform to the authentication response schema.
var ErrSchemaViolation = errors.New("document does not conform to the authentication response schema")

//go:embed auth-result-schema.json
var authResultSchemaData []byte

var authResultSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(URL, bytes.NewReader(authResultSchemaData)); err != nil {
		panic(err)
	}
	authResultSchema = compiler.MustCompile(URL)
}

// Document returns the raw JSON schema.
func Document() []byte {
	return bytes.Clone(authResultSchemaData)
}

// Validate checks the given JSON document against the authentication response schema.
// It is stricter than parsing: e.g. a vppa field holding false is rejected by the schema.
func Validate(document []byte) error {
	if err := authResultSchema.Validate(bytes.NewReader(document)); err != nil {
		return core.WrapError(ErrSchemaViolation, err)
	}
	return nil
}
