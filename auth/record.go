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
	"math"
	"reflect"
	"strconv"

	"github.com/pbs-auth/pbsauth/json"
)

// recordSchema declares the name of a record type and the keys that must be present in its input.
type recordSchema struct {
	name     string
	required []string
}

// read checks that all required keys are present (values may be null), in declared order.
// The first absent key is reported as ErrMissingField.
func (s recordSchema) read(input map[string]interface{}) (*fields, error) {
	for _, key := range s.required {
		if _, ok := input[key]; !ok {
			return nil, s.missing(key)
		}
	}
	return &fields{schema: s, values: input}, nil
}

func (s recordSchema) missing(key string) error {
	return &FieldError{Kind: ErrMissingField, Record: s.name, Field: key}
}

func (s recordSchema) mismatch(key string, expected string, actual interface{}) error {
	return &FieldError{Kind: ErrTypeMismatch, Record: s.name, Field: key, Expected: expected, Actual: describe(actual)}
}

// fields maps the values of a validated record onto typed values.
// The first conversion that fails is kept in err; subsequent conversions return zero values.
type fields struct {
	schema recordSchema
	values map[string]interface{}
	err    error
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// string returns the value as string. Numbers are rendered in decimal notation, anything else is a type mismatch.
func (f *fields) string(key string) string {
	if f.err != nil {
		return ""
	}
	value, ok := asString(f.values[key])
	if !ok {
		f.fail(f.schema.mismatch(key, "string", f.values[key]))
	}
	return value
}

// nullableString is like string, but returns nil for null values.
func (f *fields) nullableString(key string) *string {
	if f.err != nil || f.values[key] == nil {
		return nil
	}
	value := f.string(key)
	if f.err != nil {
		return nil
	}
	return &value
}

// integer returns the value as int64. Fractions, exponents and numeric strings are a type mismatch.
func (f *fields) integer(key string) int64 {
	if f.err != nil {
		return 0
	}
	value, ok := asInteger(f.values[key])
	if !ok {
		f.fail(f.schema.mismatch(key, "integer", f.values[key]))
	}
	return value
}

// present reports a null value as missing.
func (f *fields) present(key string) {
	if f.err == nil && f.values[key] == nil {
		f.fail(f.schema.missing(key))
	}
}

// object returns the value as nested record, see asObject. A null value is reported as missing.
func (f *fields) object(key string) map[string]interface{} {
	if f.err != nil {
		return nil
	}
	raw := f.values[key]
	if raw == nil {
		f.fail(f.schema.missing(key))
		return nil
	}
	value, ok := asObject(raw)
	if !ok {
		f.fail(f.schema.mismatch(key, "object", raw))
	}
	return value
}

// truthy returns whether the value is considered true, see isTruthy.
func (f *fields) truthy(key string) bool {
	return isTruthy(f.values[key])
}

// isTruthy mirrors the loose boolean interpretation of the identity provider's records:
// null, false, zero, the empty string, "0" and empty lists are false; everything else (including objects) is true.
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case int32:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	default:
		return "", false
	}
}

// asObject returns the value as record. Keyed collections other than decoded JSON objects (e.g. map[string]string
// or tagged structs) are converted through their JSON form, like the mapping entry points do.
func asObject(value interface{}) (map[string]interface{}, bool) {
	if record, ok := value.(map[string]interface{}); ok {
		return record, true
	}
	kind := reflect.Indirect(reflect.ValueOf(value)).Kind()
	if kind != reflect.Map && kind != reflect.Struct {
		return nil, false
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var record map[string]interface{}
	if err := json.UnmarshalWithNumbers(data, &record); err != nil || record == nil {
		return nil, false
	}
	return record, true
}

// asInteger returns the value as int64. Floats are accepted when they hold a whole number in range,
// since maps decoded without number preservation hold all numbers as float64.
func asInteger(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return wholeNumber(v)
	case float32:
		return wholeNumber(float64(v))
	case json.Number:
		i, err := strconv.ParseInt(v.String(), 10, 64)
		return i, err == nil
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint64:
		return int64(v), v <= math.MaxInt64
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	default:
		return 0, false
	}
}

func wholeNumber(value float64) (int64, bool) {
	if value != math.Trunc(value) || value < math.MinInt64 || value >= -math.MinInt64 {
		return 0, false
	}
	return int64(value), true
}

// describe returns the JSON type name of a decoded value, for use in error messages.
func describe(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
