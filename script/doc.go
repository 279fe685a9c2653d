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

// Package script runs Lua testbenches against the simulated register block.
// The hardware this simulation is modelled on was verified by driving the
// design from small python coroutines; a Lua script fills the same role
// here. For example:
//
//	err = write(regaddr(0), 0xaabbccdd)
//	check(not err, "unexpected bus error")
//
//	data, err = read(regaddr(0))
//	check(data == 0xaabbccdd, "read mismatch")
//
//	settle()
//	check(rdready() == 0x1, "ready flag never crossed")
//
// The functions registered with the Lua state are listed in the commentary
// for the NewRunner() function.
//
// Values larger than 32 bits lose precision as Lua numbers; scripts driving
// a 64 bit register block should pass and compare values as hex strings,
// which every register function accepts.
package script
