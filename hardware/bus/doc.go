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

// Package bus defines the signal-level contract of the APB slave port. The
// requester owns the Input half of the signal bundle and the slave owns the
// Output half. The slave samples the input lines on every rising edge of the
// bus clock and the requester should treat the output lines as valid from one
// edge to the next.
//
// The Def type gathers the instantiation parameters of the register block.
// These correspond to the verilog parameters of a hardware implementation and
// are fixed for the lifetime of the simulated device.
package bus
