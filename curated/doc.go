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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	idx := 16
//	e := curated.Errorf("store: index out of range [%d]", idx)
//
//	if curated.Is(e, "store: index out of range [%d]") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than just at the head of the chain.
//
// Note that the simulated hardware itself never returns curated errors for
// bus activity. An out-of-range bus address is signalled with PSLVERR, as it
// would be in silicon. Curated errors are for the software that surrounds the
// simulation: construction, validation, the debugger and the script runner.
package curated
