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

// Package cdc implements the clock domain crossing layer of the register
// block. For every register the synchronizer transports the stored value and
// its ready flag from the bus clock domain into the read-out clock domain,
// for any relative clock speed and phase relationship between the two.
//
// Each register owns an independent crossing built on a toggle handshake:
//
//   - when the store commits a write, the bus-domain side samples the value
//     into a holding register and flips a single-bit request toggle
//   - the toggle crosses into the read-out domain through a BitSync chain.
//     when the resolved level differs from the acknowledge toggle, the
//     read-out domain copies the holding register into its snapshot, sets its
//     ready flag and flips the acknowledge
//   - the acknowledge crosses back into the bus domain through a second
//     BitSync chain. only when the two toggles agree again may the holding
//     register be re-sampled and a new crossing launched
//
// The holding register changes only while the crossing is quiet on the
// read-out side, so the snapshot always receives a complete, fully-committed
// value: never a mixture of bits from two different writes. Writes that
// arrive faster than a crossing can complete mark the crossing dirty and the
// latest store value is launched as soon as the acknowledge returns: dropped
// intermediate values, last-writer-wins, never a torn word.
package cdc

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/registers"
)

// crossing is the per-register state of the synchronizer, split between the
// two domains. the comments on each field name the domain that owns it.
type crossing struct {
	// request toggle. flipped by the bus domain to launch a crossing
	req bool

	// holding register for the value bus. bus domain writes, read-out domain
	// samples. stable while the crossing is in flight
	hold uint64

	// a write committed while a crossing was in flight. bus domain
	dirty bool

	// acknowledge toggle resolved into the bus domain
	ackSync *BitSync

	// request toggle resolved into the read-out domain
	reqSync *BitSync

	// acknowledge toggle. flipped by the read-out domain on capture
	ack bool

	// the read-out domain snapshot
	value uint64
	ready bool
}

// Synchronizer replicates the register store and its ready flags into the
// read-out clock domain.
type Synchronizer struct {
	def   bus.Def
	store *registers.Store
	regs  []crossing
}

// NewSynchronizer is the preferred method of initialisation of the
// Synchronizer type. The synchronizer samples the supplied store on every bus
// domain tick.
func NewSynchronizer(def bus.Def, store *registers.Store) *Synchronizer {
	sync := &Synchronizer{
		def:   def,
		store: store,
		regs:  make([]crossing, def.NumRegs),
	}
	for i := range sync.regs {
		sync.regs[i].ackSync = NewBitSync(def.SyncStages)
		sync.regs[i].reqSync = NewBitSync(def.SyncStages)
	}
	return sync
}

func (sync *Synchronizer) String() string {
	s := strings.Builder{}
	for i := range sync.regs {
		c := &sync.regs[i]
		flight := " "
		if c.req != c.ack {
			flight = "*"
		}
		r := "-"
		if c.ready {
			r = "r"
		}
		s.WriteString(fmt.Sprintf("%02d: %0*x %s%s\n", i, sync.def.WidthBytes()*2, c.value, r, flight))
	}
	return s.String()
}

// StepBus is a single rising edge of the bus clock: commit notifications from
// the store are consumed and pending crossings are launched for any register
// whose previous crossing has fully drained.
func (sync *Synchronizer) StepBus() {
	committed := sync.store.Committed()

	for i := range sync.regs {
		c := &sync.regs[i]

		if committed&(uint64(1)<<i) != 0 {
			c.dirty = true
		}

		// resolve the acknowledge toggle into this domain
		ack := c.ackSync.Tick(c.ack)

		// launch a new crossing only when the previous one has been
		// acknowledged. the holding register must not change while the
		// read-out domain might still sample it
		if c.dirty && c.req == ack {
			c.hold = sync.store.Read(i)
			c.req = !c.req
			c.dirty = false
		}
	}
}

// StepReadout is a single rising edge of the read-out clock: request toggles
// are resolved through the synchronizing chains and any newly arrived
// crossing is captured into the snapshot.
func (sync *Synchronizer) StepReadout() {
	for i := range sync.regs {
		c := &sync.regs[i]

		req := c.reqSync.Tick(c.req)
		if req != c.ack {
			c.value = c.hold
			c.ready = true
			c.ack = req
		}
	}
}

// Value returns the read-out domain snapshot of the register at idx. An
// out-of-range idx reads as zero.
func (sync *Synchronizer) Value(idx int) uint64 {
	if idx < 0 || idx >= sync.def.NumRegs {
		return 0
	}
	return sync.regs[idx].value
}

// Ready returns the read-out domain ready flag of the register at idx.
func (sync *Synchronizer) Ready(idx int) bool {
	if idx < 0 || idx >= sync.def.NumRegs {
		return false
	}
	return sync.regs[idx].ready
}

// ReadyMask returns the packed read-out domain ready bitmask. Bit i is the
// ready flag of register i.
func (sync *Synchronizer) ReadyMask() uint64 {
	var mask uint64
	for i := range sync.regs {
		if sync.regs[i].ready {
			mask |= uint64(1) << i
		}
	}
	return mask
}

// ResetBus clears the bus domain half of every crossing.
func (sync *Synchronizer) ResetBus() {
	for i := range sync.regs {
		c := &sync.regs[i]
		c.req = false
		c.hold = 0
		c.dirty = false
		c.ackSync.Reset()
	}
}

// ResetReadout clears the read-out domain half of every crossing: the
// snapshot values and ready flags among them.
func (sync *Synchronizer) ResetReadout() {
	for i := range sync.regs {
		c := &sync.regs[i]
		c.ack = false
		c.value = 0
		c.ready = false
		c.reqSync.Reset()
	}
}
