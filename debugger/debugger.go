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

package debugger

import (
	"os"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
)

// Debugger is the interactive front-end to a hardware.Configurator.
type Debugger struct {
	cfg *hardware.Configurator
	trm terminal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The simulation is reset and ready for its first transaction when the
// function returns.
func NewDebugger(def bus.Def, scenario clocks.Scenario) (*Debugger, error) {
	cfg, err := hardware.NewConfigurator(def, scenario)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{cfg: cfg}
	dbg.trm.initialise(os.Stdin, os.Stdout)

	return dbg, nil
}

// Start the input loop. Returns when the user quits or when input is
// exhausted.
func (dbg *Debugger) Start() error {
	defer dbg.trm.cleanUp()

	dbg.trm.print("%s\n", dbg.cfg)
	dbg.trm.print("type HELP for the command list\n")

	for {
		input, err := dbg.trm.readLine(dbg.prompt())
		if err != nil {
			if curated.Has(err, UserInterrupt) {
				continue
			}
			if curated.Has(err, UserQuit) {
				return nil
			}
			return err
		}
		if input == "" {
			continue
		}

		cmd, err := parseCommand(input)
		if err != nil {
			dbg.trm.print("%s%v%s\n", penRed, err, penOff)
			continue
		}

		quit, err := dbg.perform(cmd)
		if err != nil {
			dbg.trm.print("%s%v%s\n", penRed, err, penOff)
			continue
		}
		if quit {
			return nil
		}
	}
}

// prompt shows the simulation time and the per-domain edge counts.
func (dbg *Debugger) prompt() string {
	return penCyan + "[" + dbg.cfg.Sched.String() + "]" + penOff + penBold + " >> " + penOff
}

func (dbg *Debugger) perform(cmd command) (bool, error) {
	switch cmd.op {
	case cmdStep:
		dbg.step(cmd)

	case cmdWrite:
		slverr, err := dbg.cfg.Write(cmd.addr, cmd.value)
		if err != nil {
			return false, err
		}
		if slverr {
			dbg.trm.print("%sPSLVERR%s asserted for write to %#08x\n", penYellow, penOff, cmd.addr)
		} else {
			dbg.trm.print("wrote %#016x to %#08x\n", cmd.value, cmd.addr)
		}

	case cmdRead:
		data, slverr, err := dbg.cfg.Read(cmd.addr)
		if err != nil {
			return false, err
		}
		if slverr {
			dbg.trm.print("%sPSLVERR%s asserted for read of %#08x\n", penYellow, penOff, cmd.addr)
		} else {
			dbg.trm.print("%#08x = %#016x\n", cmd.addr, data)
		}

	case cmdPeek:
		v, err := dbg.cfg.Peek(cmd.idx)
		if err != nil {
			return false, err
		}
		dbg.trm.print("reg %02d = %#016x\n", cmd.idx, v)

	case cmdPoke:
		if err := dbg.cfg.Poke(cmd.idx, cmd.value); err != nil {
			return false, err
		}
		dbg.trm.print("reg %02d = %#016x\n", cmd.idx, cmd.value)

	case cmdRegs:
		dbg.printRegs()

	case cmdCrossing:
		dbg.printCrossing()

	case cmdReset:
		dbg.cfg.Reset()
		dbg.trm.print("reset asserted and released\n")

	case cmdSettle:
		dbg.cfg.Settle()
		dbg.trm.print("crossings settled [%s]\n", dbg.cfg.Sched)

	case cmdDump:
		if err := dbg.dump(cmd.file); err != nil {
			return false, err
		}
		dbg.trm.print("written %s\n", cmd.file)

	case cmdHelp:
		dbg.trm.print("%s\n", helpText)

	case cmdQuit:
		return true, nil
	}

	return false, nil
}

func (dbg *Debugger) step(cmd command) {
	for i := 0; i < cmd.count; i++ {
		switch cmd.domain {
		case stepBus:
			dbg.cfg.StepBus()
		case stepReadout:
			dbg.cfg.StepReadout()
		default:
			busEdge, readoutEdge := dbg.cfg.Step()
			if i == cmd.count-1 {
				edges := ""
				if busEdge {
					edges += " bus"
				}
				if readoutEdge {
					edges += " readout"
				}
				dbg.trm.print("edge:%s\n", edges)
			}
		}
	}
	out := dbg.cfg.Output()
	dbg.trm.print("[%s] PREADY=%v PSLVERR=%v PRDATA=%#016x\n",
		dbg.cfg.Sched, out.PReady, out.PSlvErr, out.PRData)
}

func (dbg *Debugger) printRegs() {
	for i := 0; i < dbg.cfg.Def.NumRegs; i++ {
		v, _ := dbg.cfg.Peek(i)
		ready := " "
		if dbg.cfg.Regs.Ready(i) {
			ready = "*"
		}
		dbg.trm.print("reg %02d @ %#08x %s %#016x\n", i, dbg.cfg.Def.AddrOf(i), ready, v)
	}
	dbg.trm.print("ready mask %#016x (* = written since reset)\n", dbg.cfg.Regs.ReadyMask())
}

func (dbg *Debugger) printCrossing() {
	for i := 0; i < dbg.cfg.Def.NumRegs; i++ {
		ready := " "
		if dbg.cfg.CDC.Ready(i) {
			ready = "*"
		}
		dbg.trm.print("rd_data %02d %s %#016x\n", i, ready, dbg.cfg.RdData(i))
	}
	dbg.trm.print("rd_ready %#016x (* = landed in read-out domain)\n", dbg.cfg.RdReady())
}
