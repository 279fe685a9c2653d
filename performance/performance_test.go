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

package performance

import (
	"io"
	"testing"

	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
	"github.com/jetsetilly/apbsim/test"
)

func TestNextAddr(t *testing.T) {
	def := bus.NewDef()
	def.BaseAddr = 0x1000

	// rolling from the base of the window, every address but the final
	// overshoot must decode to a register
	addr := def.BaseAddr
	for i := 0; i < def.NumRegs; i++ {
		idx, ok := def.Decode(addr)
		test.ExpectedSuccess(t, ok)
		test.Equate(t, idx, i)
		addr = nextAddr(def, addr)
	}

	// the overshoot address is the error path
	_, ok := def.Decode(addr)
	test.ExpectedFailure(t, ok)

	// and the roll wraps back to the base of the window
	addr = nextAddr(def, addr)
	test.Equate(t, addr, def.BaseAddr)
}

func TestCheckWithBaseAddr(t *testing.T) {
	def := bus.NewDef()
	def.BaseAddr = 0x1000

	err := Check(io.Discard, def, clocks.FastBus, "1ms", false)
	test.ExpectedSuccess(t, err)
}
