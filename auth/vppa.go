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
	"time"

	"github.com/pbs-auth/pbsauth/core"
	"github.com/pbs-auth/pbsauth/json"
)

const (
	vppaAcceptedField    = "vppa_accepted"
	vppaLastUpdatedField = "vppa_last_updated"
)

var vppaSchema = recordSchema{
	name:     "VPPA",
	required: []string{vppaAcceptedField, vppaLastUpdatedField},
}

// VPPA describes the Video Privacy Protection Act agreement of the authenticated user.
// Both the vppa_accepted and vppa_last_updated fields must be present, but may be null.
type VPPA struct {
	accepted    bool
	lastUpdated *time.Time
}

// ParseVPPA validates the given record and maps it onto a VPPA.
// A truthy vppa_last_updated must be a parseable date-time.
func ParseVPPA(record map[string]interface{}) core.Result[VPPA] {
	f, err := vppaSchema.read(record)
	if err != nil {
		return core.Err[VPPA](err)
	}

	result := VPPA{accepted: f.truthy(vppaAcceptedField)}
	if f.truthy(vppaLastUpdatedField) {
		lastUpdated, err := parseLastUpdated(record[vppaLastUpdatedField])
		if err != nil {
			return core.Err[VPPA](&FieldError{Kind: ErrMalformedDate, Record: vppaSchema.name, Field: vppaLastUpdatedField, Cause: err})
		}
		result.lastUpdated = &lastUpdated
	}
	return core.Ok(result)
}

func parseLastUpdated(raw interface{}) (time.Time, error) {
	value, ok := raw.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("expected a date-time string, got %s", describe(raw))
	}
	return core.ParseTimestamp(value)
}

// ParseVPPAFromText parses a JSON document into a VPPA.
func ParseVPPAFromText(text string) core.Result[VPPA] {
	return parseText(text, ParseVPPA)
}

// ParseVPPAFromMapping converts a keyed collection (e.g. a map or tagged struct) into a VPPA.
func ParseVPPAFromMapping(mapping interface{}) core.Result[VPPA] {
	return parseMapping(mapping, ParseVPPA)
}

// Accepted returns whether the user accepted the VPPA agreement. This does not tell whether the acceptance is still valid;
// use it in conjunction with LastUpdated.
func (v VPPA) Accepted() bool {
	return v.accepted
}

// LastUpdated returns when the agreement was last updated, if known.
func (v VPPA) LastUpdated() (time.Time, bool) {
	if v.lastUpdated == nil {
		return time.Time{}, false
	}
	return *v.lastUpdated, true
}

// ToMapping returns the VPPA in its serialized form.
func (v VPPA) ToMapping() map[string]interface{} {
	var lastUpdated interface{}
	if v.lastUpdated != nil {
		lastUpdated = core.FormatTimestamp(*v.lastUpdated)
	}
	return map[string]interface{}{
		vppaAcceptedField:    v.accepted,
		vppaLastUpdatedField: lastUpdated,
	}
}

// ToText returns the VPPA as JSON document.
func (v VPPA) ToText() string {
	return toText(v.ToMapping())
}

func (v VPPA) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToMapping())
}
