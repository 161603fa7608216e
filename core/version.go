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
	"runtime"
)

// GitCommit holds the git commit hash of this build, set through -ldflags.
var GitCommit string

// GitVersion holds the tagged version of this build, set through -ldflags.
var GitVersion string

// Version returns the tagged version, or "development" for untagged builds.
func Version() string {
	if GitVersion == "" || GitVersion == "undefined" {
		return "development"
	}
	return GitVersion
}

// BuildInfo describes the version, commit and platform of this build.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nOS/Arch: %s/%s\n", Version(), GitCommit, runtime.GOOS, runtime.GOARCH)
}
