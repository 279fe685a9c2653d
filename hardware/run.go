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

package hardware

import (
	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/hardware/bus"
)

// number of bus edges a transaction helper waits for PREADY before deciding
// the FSM has wedged. generous enough for any plausible wait-state
// configuration.
const transactionTimeout = 1000

// Reset emulates a pulse on the external active-low reset line. The input
// lines are returned to idle, both domains clear immediately, and the
// function runs simulated time forward until both domains have released
// their reset trees, each synchronous to its own clock.
func (cfg *Configurator) Reset() {
	cfg.Drive(bus.Input{})

	cfg.SetResetLine(true)
	cfg.runEdges(2, 2)

	cfg.SetResetLine(false)
	cfg.runEdges(cfg.Def.SyncStages, cfg.Def.SyncStages)
}

// advance simulated time until at least the given number of edges have been
// delivered in each domain.
func (cfg *Configurator) runEdges(busEdges int, readoutEdges int) {
	for busEdges > 0 || readoutEdges > 0 {
		b, r := cfg.Step()
		if b && busEdges > 0 {
			busEdges--
		}
		if r && readoutEdges > 0 {
			readoutEdges--
		}
	}
}

// Write performs a complete write transaction: setup phase, access phase,
// and the return to idle. The returned boolean is the PSLVERR of the
// completion cycle.
//
// An error return means the transaction never completed, which cannot happen
// unless the simulation is misconfigured or reset is asserted while the
// transaction is in flight.
func (cfg *Configurator) Write(addr uint32, data uint64) (bool, error) {
	in := bus.Input{PSel: true, PWrite: true, PAddr: addr, PWData: data}
	cfg.Drive(in)
	cfg.StepBus()

	in.PEnable = true
	cfg.Drive(in)

	defer cfg.Drive(bus.Input{})

	for i := 0; i < transactionTimeout; i++ {
		cfg.StepBus()
		if out := cfg.Output(); out.PReady {
			return out.PSlvErr, nil
		}
	}

	return false, curated.Errorf("configurator: write to %#04x never completed", addr)
}

// Read performs a complete read transaction. Returns the read data and the
// PSLVERR of the completion cycle; the data is zero whenever the error is
// asserted.
//
// An error return means the transaction never completed. See the commentary
// for the Write() function.
func (cfg *Configurator) Read(addr uint32) (uint64, bool, error) {
	in := bus.Input{PSel: true, PAddr: addr}
	cfg.Drive(in)
	cfg.StepBus()

	in.PEnable = true
	cfg.Drive(in)

	defer cfg.Drive(bus.Input{})

	for i := 0; i < transactionTimeout; i++ {
		cfg.StepBus()
		if out := cfg.Output(); out.PReady {
			return out.PRData, out.PSlvErr, nil
		}
	}

	return 0, false, curated.Errorf("configurator: read of %#04x never completed", addr)
}

// Settle runs simulated time forward far enough for any in-flight crossing
// to drain into the read-out domain: the synchronizer depth plus slack for
// the handshake launch, counted in the edges of both domains.
func (cfg *Configurator) Settle() {
	// twice the synchronizer depth covers the request crossing and, when a
	// previous crossing is still acknowledging, the drain of the return leg
	n := 2*cfg.Def.SyncStages + 4
	cfg.runEdges(n, n)
}

// Run the simulation as quickly as possible, until the continueCheck
// function returns false or an error. A nil continueCheck means run forever.
func (cfg *Configurator) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		cfg.Step()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
