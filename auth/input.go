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
	"fmt"

	"github.com/pbs-auth/pbsauth/core"
	"github.com/pbs-auth/pbsauth/json"
)

type parseFunc[T any] func(record map[string]interface{}) core.Result[T]

// parseText decodes a JSON document and hands the resulting object to parse.
// Numbers are kept as json.Number so integer fields can be told apart from fractions.
func parseText[T any](text string, parse parseFunc[T]) core.Result[T] {
	var document interface{}
	if err := json.UnmarshalWithNumbers([]byte(text), &document); err != nil {
		return core.Err[T](core.WrapError(ErrMalformedInput, err))
	}
	record, ok := document.(map[string]interface{})
	if !ok {
		return core.Err[T](core.WrapError(ErrMalformedInput, fmt.Errorf("expected a JSON object, got %s", describe(document))))
	}
	return parse(record)
}

// parseMapping converts any keyed collection to a JSON document first, so it's subject to exactly the same validation
// as text input.
func parseMapping[T any](mapping interface{}, parse parseFunc[T]) core.Result[T] {
	data, err := json.Marshal(mapping)
	if err != nil {
		return core.Err[T](core.WrapError(ErrMalformedInput, err))
	}
	return parseText(string(data), parse)
}

func toText(mapping map[string]interface{}) string {
	// can't fail, mappings only contain strings, numbers, booleans, nulls and nested mappings
	data, _ := json.Marshal(mapping)
	return string(data)
}
