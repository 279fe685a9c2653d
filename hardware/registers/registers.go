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

// Package registers implements the storage array of the register block: one
// fixed-width value and one ready flag per register. The ready flag records
// that the register has been written at least once since the last reset.
//
// The store lives entirely in the bus clock domain. It is mutated only by the
// protocol FSM and sampled, without mutation, by the bus-domain side of the
// CDC synchronizer. The Committed() function is how the synchronizer learns
// of new writes: the store accumulates a bitmask of committed registers and
// the notification is consumed by the next caller.
package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/hardware/bus"
)

// Store is the indexed array of registers and their ready flags.
type Store struct {
	def bus.Def

	values []uint64
	ready  []bool

	// bitmask of registers written since the last call to Committed()
	committed uint64
}

// NewStore is the preferred method of initialisation of the Store type. The
// Def is assumed to have been validated.
func NewStore(def bus.Def) *Store {
	return &Store{
		def:    def,
		values: make([]uint64, def.NumRegs),
		ready:  make([]bool, def.NumRegs),
	}
}

func (st *Store) String() string {
	s := strings.Builder{}
	for i := range st.values {
		r := "-"
		if st.ready[i] {
			r = "r"
		}
		s.WriteString(fmt.Sprintf("%02d: %0*x %s\n", i, st.def.WidthBytes()*2, st.values[i], r))
	}
	return s.String()
}

// Write value to the register at idx and set the ready flag. The value is
// masked to the configured data width. No other register is affected.
//
// An out-of-range idx is silently ignored. The protocol FSM decodes the bus
// address before committing a write so an invalid index never reaches the
// store in normal operation.
func (st *Store) Write(idx int, value uint64) {
	if idx < 0 || idx >= st.def.NumRegs {
		return
	}

	st.values[idx] = value & st.def.DataMask()
	st.ready[idx] = true

	st.committed |= uint64(1) << idx
}

// Read the value of the register at idx. An out-of-range idx reads as zero.
func (st *Store) Read(idx int) uint64 {
	if idx < 0 || idx >= st.def.NumRegs {
		return 0
	}
	return st.values[idx]
}

// Ready returns the ready flag of the register at idx.
func (st *Store) Ready(idx int) bool {
	if idx < 0 || idx >= st.def.NumRegs {
		return false
	}
	return st.ready[idx]
}

// ReadyMask returns the packed ready bitmask. Bit i is the ready flag of
// register i.
func (st *Store) ReadyMask() uint64 {
	var mask uint64
	for i := range st.ready {
		if st.ready[i] {
			mask |= uint64(1) << i
		}
	}
	return mask
}

// Committed returns the bitmask of registers written since the last call,
// once. A second call (without an intervening write) returns zero, in the
// same way that a bus write signal is consumed by the logic that services it.
// A bitmask rather than a single index: bus transactions are separated by
// edges but the debugger Poke path can commit several registers between two
// calls and none of those writes may be lost.
func (st *Store) Committed() uint64 {
	mask := st.committed
	st.committed = 0
	return mask
}

// Reset the store: all values to zero, all ready flags cleared and any
// unconsumed commit notification dropped.
func (st *Store) Reset() {
	for i := range st.values {
		st.values[i] = 0
		st.ready[i] = false
	}
	st.committed = 0
}

// Peek is the implementation of bus.DebuggerBus. Unlike Read() an
// out-of-range idx is an error: the debugger wants to know about its
// mistakes.
func (st *Store) Peek(idx int) (uint64, error) {
	if idx < 0 || idx >= st.def.NumRegs {
		return 0, curated.Errorf("store: peek: index out of range [%d]", idx)
	}
	return st.values[idx], nil
}

// Poke is the implementation of bus.DebuggerBus. Poked values behave exactly
// like bus writes: the ready flag is set and the value crosses to the
// read-out domain.
func (st *Store) Poke(idx int, value uint64) error {
	if idx < 0 || idx >= st.def.NumRegs {
		return curated.Errorf("store: poke: index out of range [%d]", idx)
	}
	st.Write(idx, value)
	return nil
}
