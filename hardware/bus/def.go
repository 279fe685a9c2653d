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

import (
	"fmt"

	"github.com/jetsetilly/apbsim/curated"
)

// Def gathers the instantiation parameters of the register block. In a
// hardware implementation these would be elaboration-time parameters; here
// they are fixed at construction.
type Def struct {
	// width of a register in bits. must be 32 or 64
	DataWidth int

	// number of registers. the packed ready bitmask is a uint64 so NumRegs
	// must not exceed 64
	NumRegs int

	// width of the address bus in bits. addresses presented on PADDR are
	// masked to this width before decoding
	AddrWidth int

	// byte address of register 0
	BaseAddr uint32

	// number of wait states injected into the access phase. zero means the
	// transaction completes on the first access cycle
	WaitStates int

	// depth of the flip-flop chains used to resolve signals crossing between
	// the clock domains. must be at least 2
	SyncStages int
}

// NewDef returns a Def with the default parameters of the register block: 16
// registers of 32 bits at base address zero, no wait states and a two-stage
// synchronizer.
func NewDef() Def {
	return Def{
		DataWidth:  32,
		NumRegs:    16,
		AddrWidth:  32,
		BaseAddr:   0x0000,
		WaitStates: 0,
		SyncStages: 2,
	}
}

func (def Def) String() string {
	return fmt.Sprintf("%d x %dbit @ %#04x (wait=%d stages=%d)",
		def.NumRegs, def.DataWidth, def.BaseAddr, def.WaitStates, def.SyncStages,
	)
}

// Validate checks the Def values for consistency. The other Def functions
// assume a validated Def.
func (def Def) Validate() error {
	if def.DataWidth != 32 && def.DataWidth != 64 {
		return curated.Errorf("def: unsupported data width (%d)", def.DataWidth)
	}
	if def.NumRegs < 1 || def.NumRegs > 64 {
		return curated.Errorf("def: number of registers out of range (%d)", def.NumRegs)
	}
	if def.AddrWidth < 1 || def.AddrWidth > 32 {
		return curated.Errorf("def: unsupported address width (%d)", def.AddrWidth)
	}
	if def.WaitStates < 0 {
		return curated.Errorf("def: negative wait states (%d)", def.WaitStates)
	}
	if def.SyncStages < 2 {
		return curated.Errorf("def: synchronizer too shallow (%d stages)", def.SyncStages)
	}

	// the register window must fit inside the address space
	top := uint64(def.BaseAddr) + uint64(def.NumRegs*def.WidthBytes())
	if top > uint64(1)<<def.AddrWidth {
		return curated.Errorf("def: register window does not fit in %d address bits", def.AddrWidth)
	}

	return nil
}

// WidthBytes returns the width of a register in bytes.
func (def Def) WidthBytes() int {
	return def.DataWidth / 8
}

// DataMask returns the mask that limits a value to DataWidth bits.
func (def Def) DataMask() uint64 {
	if def.DataWidth == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << def.DataWidth) - 1
}

// AddrMask returns the mask that limits an address to AddrWidth bits.
func (def Def) AddrMask() uint32 {
	if def.AddrWidth == 32 {
		return ^uint32(0)
	}
	return (uint32(1) << def.AddrWidth) - 1
}

// Decode maps a byte address to a register index. The boolean return value is
// false if the address is out of range: below the base address, not aligned
// to the register width, or indexing beyond the last register.
func (def Def) Decode(addr uint32) (int, bool) {
	addr &= def.AddrMask()

	if addr < def.BaseAddr {
		return 0, false
	}

	offset := int(addr - def.BaseAddr)
	if offset%def.WidthBytes() != 0 {
		return 0, false
	}

	idx := offset / def.WidthBytes()
	if idx >= def.NumRegs {
		return 0, false
	}

	return idx, true
}

// AddrOf is the reverse of Decode, mapping a register index to the byte
// address the bus decodes to that index. Useful for testbenches and the
// debugger; the hardware itself only ever decodes in the other direction.
func (def Def) AddrOf(idx int) uint32 {
	return def.BaseAddr + uint32(idx*def.WidthBytes())
}
