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

package core

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout of timestamps with microsecond precision and an explicit UTC offset,
// e.g. 2023-01-01 13:37:00.000000+02:00.
const TimestampLayout = "2006-01-02 15:04:05.000000-07:00"

// timestampInputLayouts are tried in order when parsing. Fractional seconds are accepted after the seconds
// field even though the layouts don't specify them.
var timestampInputLayouts = []string{
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339,
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses a date-time in any of the supported layouts. Values without an offset are interpreted as UTC.
// The result is truncated to microsecond precision and carries the offset of the input as a fixed zone,
// so that formatting it with TimestampLayout and parsing it again yields an identical time.Time.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampInputLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return normalizeTimestamp(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date-time format: '%s'", value)
}

// FormatTimestamp formats the given time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func normalizeTimestamp(t time.Time) time.Time {
	_, offset := t.Zone()
	return t.In(time.FixedZone("", offset)).Truncate(time.Microsecond)
}
