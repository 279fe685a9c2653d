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

// Package hardware assembles the simulated register block: the APB protocol
// FSM, the register store, the CDC synchronizer and the per-domain reset
// trees, all driven from a dual-clock scheduler.
//
// The Configurator type is the device. A bus requester drives the input lines
// with Drive() and advances simulated time with the Step functions, or uses
// the transaction-level Write() and Read() helpers which walk a full two-phase
// handshake edge by edge. The read-out domain is observed through RdData()
// and RdReady().
//
// The two clock domains never share state except through the synchronizer's
// resolved handshake signals. Each domain is a single-threaded tick loop; a
// Configurator is not safe for concurrent use by multiple goroutines.
package hardware
