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
	"strconv"
	"strings"

	"github.com/jetsetilly/apbsim/curated"
)

// CommandError is the error pattern for anything wrong with user input
const CommandError = "debugger: %v"

// the operations a parsed command can resolve to
type commandOp int

const (
	cmdStep commandOp = iota
	cmdWrite
	cmdRead
	cmdPeek
	cmdPoke
	cmdRegs
	cmdCrossing
	cmdReset
	cmdSettle
	cmdDump
	cmdHelp
	cmdQuit
)

// the clock domain a STEP command applies to
type stepDomain int

const (
	stepBoth stepDomain = iota
	stepBus
	stepReadout
)

// command is the parsed form of a line of user input
type command struct {
	op commandOp

	// STEP
	domain stepDomain
	count  int

	// WRITE / READ
	addr uint32

	// WRITE / POKE
	value uint64

	// PEEK / POKE
	idx int

	// DUMP
	file string
}

const helpText = `commands (case insensitive):
  STEP [BUS|READOUT] [n]   advance n clock edges in the named domain
                           (both domains, in simulation time order, if
                           no domain is given. n defaults to 1)
  WRITE addr value         run a complete write transaction
  READ addr                run a complete read transaction
  PEEK idx                 inspect a register by index (no bus activity)
  POKE idx value           set a register by index (no bus activity)
  REGS                     show the bus-domain register file
  CROSSING                 show the read-out domain view of every register
  RESET                    assert and release the external reset line
  SETTLE                   run until all pending crossings have landed
  DUMP file                write a graphviz picture of the simulation state
  HELP                     this text
  QUIT                     leave the debugger`

// parseCommand turns a line of user input into a command. numbers are parsed
// with strconv base 0, so 0x prefixed hexadecimal works as expected.
func parseCommand(input string) (command, error) {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return command{}, curated.Errorf(CommandError, "no command")
	}

	cmd := command{count: 1}

	arity := func(n int) error {
		if len(toks)-1 != n {
			return curated.Errorf(CommandError,
				strings.ToUpper(toks[0])+" expects "+strconv.Itoa(n)+" argument(s)")
		}
		return nil
	}

	switch strings.ToUpper(toks[0]) {
	case "STEP", "S":
		cmd.op = cmdStep
		args := toks[1:]
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "BUS":
				cmd.domain = stepBus
				args = args[1:]
			case "READOUT":
				cmd.domain = stepReadout
				args = args[1:]
			}
		}
		if len(args) > 1 {
			return command{}, curated.Errorf(CommandError, "too many arguments to STEP")
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return command{}, curated.Errorf(CommandError, "STEP count must be a positive number")
			}
			cmd.count = n
		}

	case "WRITE", "W":
		cmd.op = cmdWrite
		if err := arity(2); err != nil {
			return command{}, err
		}
		addr, err := parseAddr(toks[1])
		if err != nil {
			return command{}, err
		}
		value, err := parseValue(toks[2])
		if err != nil {
			return command{}, err
		}
		cmd.addr = addr
		cmd.value = value

	case "READ", "R":
		cmd.op = cmdRead
		if err := arity(1); err != nil {
			return command{}, err
		}
		addr, err := parseAddr(toks[1])
		if err != nil {
			return command{}, err
		}
		cmd.addr = addr

	case "PEEK":
		cmd.op = cmdPeek
		if err := arity(1); err != nil {
			return command{}, err
		}
		idx, err := parseIndex(toks[1])
		if err != nil {
			return command{}, err
		}
		cmd.idx = idx

	case "POKE":
		cmd.op = cmdPoke
		if err := arity(2); err != nil {
			return command{}, err
		}
		idx, err := parseIndex(toks[1])
		if err != nil {
			return command{}, err
		}
		value, err := parseValue(toks[2])
		if err != nil {
			return command{}, err
		}
		cmd.idx = idx
		cmd.value = value

	case "REGS":
		cmd.op = cmdRegs
		if err := arity(0); err != nil {
			return command{}, err
		}

	case "CROSSING", "SNAPSHOT":
		cmd.op = cmdCrossing
		if err := arity(0); err != nil {
			return command{}, err
		}

	case "RESET":
		cmd.op = cmdReset
		if err := arity(0); err != nil {
			return command{}, err
		}

	case "SETTLE":
		cmd.op = cmdSettle
		if err := arity(0); err != nil {
			return command{}, err
		}

	case "DUMP":
		cmd.op = cmdDump
		if err := arity(1); err != nil {
			return command{}, err
		}
		cmd.file = toks[1]

	case "HELP", "H", "?":
		cmd.op = cmdHelp

	case "QUIT", "Q", "EXIT":
		cmd.op = cmdQuit

	default:
		return command{}, curated.Errorf(CommandError, "unrecognised command: "+toks[0])
	}

	return cmd, nil
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf(CommandError, "bad address: "+s)
	}
	return uint32(v), nil
}

func parseValue(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf(CommandError, "bad value: "+s)
	}
	return v, nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil || v < 0 {
		return 0, curated.Errorf(CommandError, "bad register index: "+s)
	}
	return int(v), nil
}
