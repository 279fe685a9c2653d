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

//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address of the statsview HTTP server. Meaningless in a build without the
// statsview build constraint.
const Address = ""

// Launch does nothing in a build without the statsview build constraint.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "statsview not available in this build")
}

// Available always returns false in a build without the statsview build
// constraint.
func Available() bool {
	return false
}
