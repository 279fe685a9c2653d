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

package bus

// Input is the requester-driven half of the APB signal bundle. The requester
// holds these lines at whatever level it wants between clock edges; the slave
// samples them on every rising edge of pclk.
type Input struct {
	PSel    bool
	PEnable bool
	PWrite  bool
	PAddr   uint32
	PWData  uint64
}

// Output is the slave-driven half of the APB signal bundle. Values are
// registered: they are the result of the most recent rising edge of pclk and
// hold until the next edge.
//
// PReady is a one-cycle pulse marking transaction completion. PRData is only
// meaningful on a completion edge of a read transaction; it is forced to zero
// for writes and for reads of an out-of-range address. PSlvErr is asserted
// together with PReady iff the transaction addressed something outside the
// configured register range.
type Output struct {
	PReady  bool
	PRData  uint64
	PSlvErr bool
}

// Slave is implemented by anything on the responding end of the bus. Step()
// is a single rising edge of the bus clock.
type Slave interface {
	Step(Input) Output
}

// DebuggerBus defines the meta-operations for the register block. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the simulated machine. Peek and Poke work on register
// indices, not bus addresses, and bypass the protocol FSM entirely.
type DebuggerBus interface {
	Peek(idx int) (uint64, error)
	Poke(idx int, value uint64) error
}
