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

package hardware_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
	"github.com/jetsetilly/apbsim/test"
)

func newConfigurator(t *testing.T, scenario clocks.Scenario) *hardware.Configurator {
	t.Helper()
	cfg, err := hardware.NewConfigurator(bus.NewDef(), scenario)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	return cfg
}

func write(t *testing.T, cfg *hardware.Configurator, addr uint32, data uint64) bool {
	t.Helper()
	slverr, err := cfg.Write(addr, data)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	return slverr
}

func read(t *testing.T, cfg *hardware.Configurator, addr uint32) (uint64, bool) {
	t.Helper()
	data, slverr, err := cfg.Read(addr)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	return data, slverr
}

func TestSimpleAccess(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	slverr := write(t, cfg, 0x00, 0xaabbccdd)
	test.ExpectedFailure(t, slverr)

	data, slverr := read(t, cfg, 0x00)
	test.ExpectedFailure(t, slverr)
	test.Equate(t, data, 0xaabbccdd)

	// the ready flag for register 0 is visible in the bus domain
	test.Equate(t, cfg.Regs.ReadyMask()&0x1, 0x1)
}

func TestErrorAccess(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	// address 0x100 is out of bounds for the default 16 register block (the
	// last valid offset is 0x3c)
	slverr := write(t, cfg, 0x100, 0x12345678)
	test.ExpectedSuccess(t, slverr)

	data, slverr := read(t, cfg, 0x100)
	test.ExpectedSuccess(t, slverr)
	test.Equate(t, data, 0)
}

func TestFullRangeAccess(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	for i := 0; i < cfg.Def.NumRegs; i++ {
		slverr := write(t, cfg, cfg.Def.AddrOf(i), uint64(0x1000+i))
		test.ExpectedFailure(t, slverr)
	}

	for i := 0; i < cfg.Def.NumRegs; i++ {
		data, slverr := read(t, cfg, cfg.Def.AddrOf(i))
		test.ExpectedFailure(t, slverr)
		test.Equate(t, data, 0x1000+i)
	}

	test.Equate(t, cfg.Regs.ReadyMask(), 0xffff)
}

func TestResetBehaviour(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	write(t, cfg, 0x00, 0xdeadbeef)
	write(t, cfg, 0x04, 0xcafebabe)
	cfg.Settle()
	test.Equate(t, cfg.RdReady(), 0x0003)

	cfg.Reset()

	// registers clear in the bus domain
	data, slverr := read(t, cfg, 0x00)
	test.ExpectedFailure(t, slverr)
	test.Equate(t, data, 0)
	data, _ = read(t, cfg, 0x04)
	test.Equate(t, data, 0)
	test.Equate(t, cfg.Regs.ReadyMask(), 0)

	// and in the read-out domain
	test.Equate(t, cfg.RdReady(), 0)
	test.Equate(t, cfg.RdData(0), 0)
	test.Equate(t, cfg.RdData(1), 0)
}

func TestReadoutCrossing(t *testing.T) {
	for _, scenario := range []clocks.Scenario{clocks.FastBus, clocks.SlowBus, clocks.Equal} {
		t.Run(scenario.String(), func(t *testing.T) {
			cfg := newConfigurator(t, scenario)
			rnd := rand.New(rand.NewSource(7))

			for i := 0; i < 5; i++ {
				idx := rnd.Intn(cfg.Def.NumRegs)
				val := uint64(rnd.Uint32())

				slverr := write(t, cfg, cfg.Def.AddrOf(idx), val)
				test.ExpectedFailure(t, slverr)

				cfg.Settle()

				if !cfg.CDC.Ready(idx) {
					t.Fatalf("ready flag never crossed for register %d", idx)
				}
				if cfg.RdData(idx) != val {
					t.Fatalf("crossing mismatch on register %d: expected %#x, got %#x",
						idx, val, cfg.RdData(idx))
				}
			}
		})
	}
}

func TestStressAccess(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)
	rnd := rand.New(rand.NewSource(42))

	// shadow model of the register file
	shadow := make(map[int]uint64)

	for i := 0; i < 100; i++ {
		// indices beyond NumRegs-1 exercise the out-of-range path
		idx := rnd.Intn(cfg.Def.NumRegs + 3)
		addr := cfg.Def.AddrOf(idx)

		if rnd.Intn(2) == 0 {
			data := uint64(rnd.Uint32())
			slverr := write(t, cfg, addr, data)

			if idx < cfg.Def.NumRegs {
				test.ExpectedFailure(t, slverr)
				shadow[idx] = data
			} else {
				test.ExpectedSuccess(t, slverr)
			}
		} else {
			data, slverr := read(t, cfg, addr)

			if idx < cfg.Def.NumRegs {
				test.ExpectedFailure(t, slverr)
				test.Equate(t, data, shadow[idx])
			} else {
				test.ExpectedSuccess(t, slverr)
				test.Equate(t, data, 0)
			}
		}
	}

	// quiescence: once the bus goes quiet the read-out domain converges on
	// the final value of every register that was written
	cfg.Settle()
	cfg.Settle()
	for idx, expected := range shadow {
		test.Equate(t, cfg.RdData(idx), expected)
		test.ExpectedSuccess(t, cfg.CDC.Ready(idx))
	}
}

func TestPeekPoke(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	// Poke bypasses the protocol FSM but behaves like a bus write in every
	// other way
	test.ExpectedSuccess(t, cfg.Poke(3, 0x77))

	v, err := cfg.Peek(3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x77)

	data, slverr := read(t, cfg, cfg.Def.AddrOf(3))
	test.ExpectedFailure(t, slverr)
	test.Equate(t, data, 0x77)

	// poked values cross to the read-out domain like any other write
	cfg.Settle()
	test.Equate(t, cfg.RdData(3), 0x77)

	_, err = cfg.Peek(100)
	test.ExpectedFailure(t, err)
	test.ExpectedFailure(t, cfg.Poke(100, 0))
}

func TestPokeBackToBack(t *testing.T) {
	cfg := newConfigurator(t, clocks.FastBus)

	// two pokes with no bus edge between them. both registers must still
	// cross to the read-out domain
	test.ExpectedSuccess(t, cfg.Poke(1, 0x1111))
	test.ExpectedSuccess(t, cfg.Poke(2, 0x2222))

	cfg.Settle()
	test.Equate(t, cfg.RdData(1), 0x1111)
	test.Equate(t, cfg.RdData(2), 0x2222)
	test.Equate(t, cfg.RdReady(), 1<<1|1<<2)
}

func TestWaitStateConfiguration(t *testing.T) {
	def := bus.NewDef()
	def.WaitStates = 2

	cfg, err := hardware.NewConfigurator(def, clocks.FastBus)
	test.ExpectedSuccess(t, err)

	slverr := write(t, cfg, 0x00, 0x11)
	test.ExpectedFailure(t, slverr)

	data, slverr := read(t, cfg, 0x00)
	test.ExpectedFailure(t, slverr)
	test.Equate(t, data, 0x11)
}

func TestInvalidDef(t *testing.T) {
	def := bus.NewDef()
	def.NumRegs = 100

	_, err := hardware.NewConfigurator(def, clocks.FastBus)
	test.ExpectedFailure(t, err)
}
