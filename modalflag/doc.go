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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides the idea of program "modes" in addition to flags. A
// program mode is specified as the first argument after any flags for the
// current mode. For example:
//
//	apbsim run -scenario fastbus
//	apbsim script testbench.lua
//
// The Modes type is initialised with NewArgs(). Each program layer then
// declares its sub-modes and flags and calls Parse(). The result of Parse()
// indicates whether the program should continue, whether help was printed, or
// whether an error occurred.
package modalflag
