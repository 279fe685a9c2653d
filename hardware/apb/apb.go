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

// Package apb implements the bus-slave protocol state machine of the register
// block. The FSM follows the two-phase APB handshake:
//
//   - the requester asserts PSEL with PENABLE low and holds the address,
//     direction and (for writes) data. the FSM latches the command and moves
//     to the setup state
//   - the requester asserts PENABLE. the FSM moves to the access state and,
//     after the configured number of wait states, completes the transaction
//     with a one-cycle PREADY pulse
//
// Completion either commits a write to the register store or captures the
// read data, and carries PSLVERR when the latched address decodes to nothing.
// An erroring transaction leaves the store untouched and forces read data to
// zero.
//
// The FSM services exactly one transaction at a time. Re-selecting before the
// previous transaction completes is a requester contract violation and the
// behaviour is undefined, as it is in the hardware. A requester that asserts
// PSEL but never PENABLE stalls the FSM in the setup state indefinitely; that
// too is the requester's problem, not an error the FSM reports.
package apb

import (
	"fmt"

	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/registers"
)

type state int

const (
	idle state = iota
	setup
	access
)

func (s state) String() string {
	switch s {
	case idle:
		return "IDLE"
	case setup:
		return "SETUP"
	case access:
		return "ACCESS"
	}
	panic("unknown FSM state")
}

// FSM is the bus-slave protocol state machine.
type FSM struct {
	def   bus.Def
	store *registers.Store

	state state

	// the command latched on entry to the setup state
	addr  uint32
	write bool
	wdata uint64

	// wait states remaining before the access phase completes
	wait int
}

// NewFSM is the preferred method of initialisation of the FSM type.
func NewFSM(def bus.Def, store *registers.Store) *FSM {
	return &FSM{
		def:   def,
		store: store,
	}
}

func (f *FSM) String() string {
	switch f.state {
	case idle:
		return "IDLE"
	case setup, access:
		dir := "read"
		if f.write {
			dir = "write"
		}
		return fmt.Sprintf("%s %s addr=%#04x", f.state, dir, f.addr)
	}
	panic("unknown FSM state")
}

// Step is a single rising edge of the bus clock. The input lines are sampled
// and the output lines are driven for the next cycle.
//
// Implements the bus.Slave interface.
func (f *FSM) Step(in bus.Input) bus.Output {
	var out bus.Output

	switch f.state {
	case idle:
		if in.PSel && !in.PEnable {
			f.addr = in.PAddr & f.def.AddrMask()
			f.write = in.PWrite
			f.wdata = in.PWData & f.def.DataMask()
			f.state = setup
		}

	case setup:
		// the requester may hold PENABLE low for any number of cycles. the
		// caller contract says it eventually asserts it
		if in.PEnable {
			f.state = access
			f.wait = f.def.WaitStates
			if f.wait == 0 {
				out = f.complete()
			}
		}

	case access:
		if f.wait > 0 {
			f.wait--
		}
		if f.wait == 0 {
			out = f.complete()
		}
	}

	return out
}

// complete the latched transaction: commit the write or capture the read
// data, and return to the idle state. PREADY pulses for this one cycle only.
func (f *FSM) complete() bus.Output {
	out := bus.Output{PReady: true}
	f.state = idle

	idx, ok := f.def.Decode(f.addr)
	if !ok {
		// out-of-range access: error, zero read data, no store mutation
		out.PSlvErr = true
		return out
	}

	if f.write {
		f.store.Write(idx, f.wdata)
	} else {
		out.PRData = f.store.Read(idx)
	}

	return out
}

// Reset returns the FSM to the idle state, dropping any latched command.
func (f *FSM) Reset() {
	f.state = idle
	f.addr = 0
	f.write = false
	f.wdata = 0
	f.wait = 0
}
