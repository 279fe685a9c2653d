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
	"fmt"

	"github.com/jetsetilly/apbsim/hardware/apb"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/cdc"
	"github.com/jetsetilly/apbsim/hardware/clocks"
	"github.com/jetsetilly/apbsim/hardware/registers"
)

// Configurator is the register block and everything associated with it.
type Configurator struct {
	Def bus.Def

	Regs *registers.Store
	APB  *apb.FSM
	CDC  *cdc.Synchronizer

	Sched *clocks.Scheduler

	// one reset tree per clock domain, both driven from the same external
	// line
	busReset     *cdc.ResetSync
	readoutReset *cdc.ResetSync

	// level of the external active-low reset line. true means the line is
	// low and reset is asserted
	resetAsserted bool

	// the requester-driven input lines and the most recent bus-domain
	// outputs
	in  bus.Input
	out bus.Output
}

// NewConfigurator creates a register block and everything associated with the
// hardware. It is used for all aspects of the simulation: testbenches,
// debugging sessions and performance runs.
//
// The power-on reset is delivered before the function returns: both domains
// clear and then leave reset independently, each synchronous to its own
// clock. The returned device is ready for its first transaction.
func NewConfigurator(def bus.Def, scenario clocks.Scenario) (*Configurator, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	busClock, readoutClock := scenario.Clocks()

	cfg := &Configurator{Def: def}
	cfg.Regs = registers.NewStore(def)
	cfg.APB = apb.NewFSM(def, cfg.Regs)
	cfg.CDC = cdc.NewSynchronizer(def, cfg.Regs)
	cfg.Sched = clocks.NewScheduler(busClock, readoutClock)
	cfg.busReset = cdc.NewResetSync(def.SyncStages)
	cfg.readoutReset = cdc.NewResetSync(def.SyncStages)

	// deliver the power-on reset so the device is ready for its first
	// transaction as soon as it is returned
	cfg.Reset()

	return cfg, nil
}

func (cfg *Configurator) String() string {
	return fmt.Sprintf("%s %s [%s]", cfg.Def, cfg.Sched, cfg.APB)
}

// Drive sets the requester-driven input lines. The lines hold their level
// until the next call.
func (cfg *Configurator) Drive(in bus.Input) {
	cfg.in = in
}

// Output returns the slave-driven output lines as of the most recent bus
// clock edge.
func (cfg *Configurator) Output() bus.Output {
	return cfg.out
}

// SetResetLine drives the external active-low reset line. A true value means
// the line is held low and reset is asserted. Both domains observe the
// assertion immediately; release is observed by each domain at its own pace.
func (cfg *Configurator) SetResetLine(asserted bool) {
	cfg.resetAsserted = asserted
	if asserted {
		// asynchronous assertion: the clearing happens without waiting for a
		// clock edge in either domain
		cfg.busReset.Assert()
		cfg.readoutReset.Assert()
		cfg.clearBusDomain()
		cfg.clearReadoutDomain()
	}
}

// Step advances simulated time to the next rising edge of either clock and
// ticks the domain (or domains) that own it. The bus domain always ticks
// first on a coincident edge.
func (cfg *Configurator) Step() (busEdge bool, readoutEdge bool) {
	busEdge, readoutEdge = cfg.Sched.Next()
	if busEdge {
		cfg.stepBusDomain()
	}
	if readoutEdge {
		cfg.stepReadoutDomain()
	}
	return busEdge, readoutEdge
}

// StepBus advances simulated time until a bus-domain rising edge has been
// delivered. Read-out-domain edges encountered along the way tick as normal.
func (cfg *Configurator) StepBus() {
	for {
		if busEdge, _ := cfg.Step(); busEdge {
			return
		}
	}
}

// StepReadout advances simulated time until a read-out-domain rising edge
// has been delivered. Bus-domain edges encountered along the way tick as
// normal.
func (cfg *Configurator) StepReadout() {
	for {
		if _, readoutEdge := cfg.Step(); readoutEdge {
			return
		}
	}
}

// a single rising edge of the bus clock.
func (cfg *Configurator) stepBusDomain() {
	if cfg.busReset.Tick(cfg.resetAsserted) {
		cfg.clearBusDomain()
		return
	}

	cfg.out = cfg.APB.Step(cfg.in)
	cfg.CDC.StepBus()
}

// a single rising edge of the read-out clock.
func (cfg *Configurator) stepReadoutDomain() {
	if cfg.readoutReset.Tick(cfg.resetAsserted) {
		cfg.clearReadoutDomain()
		return
	}

	cfg.CDC.StepReadout()
}

func (cfg *Configurator) clearBusDomain() {
	cfg.Regs.Reset()
	cfg.APB.Reset()
	cfg.CDC.ResetBus()
	cfg.out = bus.Output{}
}

func (cfg *Configurator) clearReadoutDomain() {
	cfg.CDC.ResetReadout()
}

// RdData returns the read-out domain value of the register at idx.
func (cfg *Configurator) RdData(idx int) uint64 {
	return cfg.CDC.Value(idx)
}

// RdReady returns the packed read-out domain ready bitmask. Bit i is the
// ready flag of register i.
func (cfg *Configurator) RdReady() uint64 {
	return cfg.CDC.ReadyMask()
}

// Peek is the implementation of bus.DebuggerBus.
func (cfg *Configurator) Peek(idx int) (uint64, error) {
	return cfg.Regs.Peek(idx)
}

// Poke is the implementation of bus.DebuggerBus.
func (cfg *Configurator) Poke(idx int, value uint64) error {
	return cfg.Regs.Poke(idx, value)
}
