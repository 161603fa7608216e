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
	"github.com/pbs-auth/pbsauth/core/to"
	"github.com/pbs-auth/pbsauth/json"
)

const (
	pidField          = "pid"
	firstNameField    = "first_name"
	lastNameField     = "last_name"
	emailField        = "email"
	zipCodeField      = "zip_code"
	analyticsIDField  = "analytics_id"
	thumbnailURLField = "thumbnail_url"
	vppaField         = "vppa"
)

var ownerSchema = recordSchema{
	name: "owner",
	required: []string{
		pidField, firstNameField, lastNameField, emailField, zipCodeField, analyticsIDField, thumbnailURLField,
	},
}

// Owner represents the user associated with an authentication response.
// All of pid, first_name, last_name, email, zip_code, analytics_id and thumbnail_url must be present;
// only analytics_id and thumbnail_url may be null.
//
// The vppa field is optional and may be null. When it holds a truthy value, it must parse into a VPPA.
type Owner struct {
	pid          string
	firstName    string
	lastName     string
	email        string
	zipCode      string
	analyticsID  *string
	thumbnailURL *string
	vppa         *VPPA
}

// ParseOwner validates the given record and maps it onto an Owner.
// An invalid nested VPPA record fails the owner with the VPPA's error.
func ParseOwner(record map[string]interface{}) core.Result[Owner] {
	f, err := ownerSchema.read(record)
	if err != nil {
		return core.Err[Owner](err)
	}

	owner := Owner{
		pid:          f.string(pidField),
		firstName:    f.string(firstNameField),
		lastName:     f.string(lastNameField),
		email:        f.string(emailField),
		zipCode:      f.string(zipCodeField),
		analyticsID:  f.nullableString(analyticsIDField),
		thumbnailURL: f.nullableString(thumbnailURLField),
	}
	if f.err != nil {
		return core.Err[Owner](f.err)
	}

	if raw := record[vppaField]; isTruthy(raw) {
		vppaRecord, ok := asObject(raw)
		if !ok {
			return core.Err[Owner](ownerSchema.mismatch(vppaField, "object", raw))
		}
		vppa, err := ParseVPPA(vppaRecord).Unwrap()
		if err != nil {
			return core.Err[Owner](err)
		}
		owner.vppa = &vppa
	}
	return core.Ok(owner)
}

// ParseOwnerFromText parses a JSON document into an Owner.
func ParseOwnerFromText(text string) core.Result[Owner] {
	return parseText(text, ParseOwner)
}

// ParseOwnerFromMapping converts a keyed collection (e.g. a map or tagged struct) into an Owner.
func ParseOwnerFromMapping(mapping interface{}) core.Result[Owner] {
	return parseMapping(mapping, ParseOwner)
}

// PID returns the unique identifier of the authenticated user.
func (o Owner) PID() string {
	return o.pid
}

// FirstName returns the first name of the authenticated user.
func (o Owner) FirstName() string {
	return o.firstName
}

// LastName returns the last name of the authenticated user.
func (o Owner) LastName() string {
	return o.lastName
}

// Email returns the email address of the authenticated user.
func (o Owner) Email() string {
	return o.email
}

// ZipCode returns the zip code of the authenticated user. It may be empty.
func (o Owner) ZipCode() string {
	return o.zipCode
}

// AnalyticsID returns the analytics identifier of the authenticated user, or nil if there is none.
func (o Owner) AnalyticsID() *string {
	return copyString(o.analyticsID)
}

// ThumbnailURL returns the URL of the user's thumbnail, or nil if there is none.
func (o Owner) ThumbnailURL() *string {
	return copyString(o.thumbnailURL)
}

// VPPA returns the user's VPPA agreement. It is nil when the response didn't contain VPPA information,
// e.g. because the VPPA scope wasn't requested during authentication.
func (o Owner) VPPA() *VPPA {
	if o.vppa == nil {
		return nil
	}
	return to.Ptr(*o.vppa)
}

// ToMapping returns the Owner in its serialized form.
func (o Owner) ToMapping() map[string]interface{} {
	var vppa interface{}
	if o.vppa != nil {
		vppa = o.vppa.ToMapping()
	}
	return map[string]interface{}{
		pidField:          o.pid,
		firstNameField:    o.firstName,
		lastNameField:     o.lastName,
		emailField:        o.email,
		zipCodeField:      o.zipCode,
		analyticsIDField:  nullable(o.analyticsID),
		thumbnailURLField: nullable(o.thumbnailURL),
		vppaField:         vppa,
	}
}

// ToText returns the Owner as JSON document.
func (o Owner) ToText() string {
	return toText(o.ToMapping())
}

func (o Owner) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.ToMapping())
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	return to.Ptr(*value)
}

func nullable(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
