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

// Package debugger is the interactive front-end to the simulation. It drives
// a hardware.Configurator one clock edge or one transaction at a time and
// lets the user inspect both clock domains between steps.
//
// Input is read from a posix terminal in cbreak mode. When the input is not
// a terminal (a pipe or a redirected file) the debugger degrades to plain
// line-based input, which is useful for scripted smoke tests.
//
// The command language is small and is described by the HELP command. The
// most useful commands during a session:
//
//	STEP [BUS|READOUT] [n]   advance the simulation by clock edges
//	WRITE addr value         run a complete write transaction
//	READ addr                run a complete read transaction
//	REGS                     show the bus-domain register file
//	CROSSING                 show the read-out domain view of every register
//	DUMP file                write a graphviz picture of the simulation state
package debugger
