// This file is part of ApbSim.
//
// ApbSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ApbSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ApbSim.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name and release number of the application.
package version

import (
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "ApbSim"

// number is empty unless it was supplied at build time with the linker.
var number string

// Version returns the version string for the build. If no version number was
// supplied at build time the vcs revision is used; failing that, the string
// "unreleased" is returned.
func Version() string {
	if number != "" {
		return number
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = strings.ToLower(s.Value) == "true"
			}
		}
		if revision != "" {
			if modified {
				return revision + "+dirty"
			}
			return revision
		}
	}

	return "unreleased"
}
