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

// Package json wraps the JSON implementation used throughout this module, so it can be replaced in a single place.
package json

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"
)

// Number is a JSON number literal, as produced by UnmarshalWithNumbers.
type Number = gojson.Number

var MarshalIndent = gojson.MarshalIndent

func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// UnmarshalWithNumbers unmarshals data like Unmarshal, but decodes numbers into Number instead of float64,
// so integers and fractions can be told apart. Data following the first JSON value is an error.
func UnmarshalWithNumbers(data []byte, v interface{}) error {
	decoder := gojson.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	var trailing interface{}
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
