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
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when text input isn't a well-formed JSON object.
var ErrMalformedInput = errors.New("malformed input")

// ErrMissingField is returned when a required field is absent.
var ErrMissingField = errors.New("missing field")

// ErrTypeMismatch is returned when a field holds a value of the wrong type.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrMalformedDate is returned when a date-time field can't be parsed.
var ErrMalformedDate = errors.New("malformed date")

// FieldError describes why a field of a record failed validation.
// Use errors.Is with one of the Err* kinds to test what went wrong.
type FieldError struct {
	// Kind is ErrMissingField, ErrTypeMismatch or ErrMalformedDate.
	Kind error
	// Record is the name of the record that was being parsed, e.g. "owner".
	Record string
	// Field is the key of the offending field.
	Field string
	// Expected is the expected type, set for ErrTypeMismatch.
	Expected string
	// Actual describes the type that was found, set for ErrTypeMismatch.
	Actual string
	Cause  error
}

func (e *FieldError) Error() string {
	var msg string
	switch {
	case errors.Is(e.Kind, ErrMissingField):
		msg = fmt.Sprintf("malformed %s: %s field is missing", e.Record, e.Field)
	case errors.Is(e.Kind, ErrTypeMismatch):
		msg = fmt.Sprintf("malformed %s: %s field must be of type %s, got %s", e.Record, e.Field, e.Expected, e.Actual)
	case errors.Is(e.Kind, ErrMalformedDate):
		msg = fmt.Sprintf("malformed %s: %s field is not a valid date-time", e.Record, e.Field)
	default:
		msg = fmt.Sprintf("malformed %s: %s field: %s", e.Record, e.Field, e.Kind)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FieldError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// FieldName returns the key of the offending field.
func (e *FieldError) FieldName() string {
	return e.Field
}
