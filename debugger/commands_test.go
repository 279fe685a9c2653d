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
	"testing"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/test"
)

func TestParseStep(t *testing.T) {
	cmd, err := parseCommand("step")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdStep, true)
	test.Equate(t, cmd.domain == stepBoth, true)
	test.Equate(t, cmd.count, 1)

	cmd, err = parseCommand("STEP BUS 5")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.domain == stepBus, true)
	test.Equate(t, cmd.count, 5)

	cmd, err = parseCommand("step readout")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.domain == stepReadout, true)
	test.Equate(t, cmd.count, 1)

	cmd, err = parseCommand("s 10")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.domain == stepBoth, true)
	test.Equate(t, cmd.count, 10)

	_, err = parseCommand("step bus 0")
	test.ExpectedFailure(t, err)

	_, err = parseCommand("step bus 1 2")
	test.ExpectedFailure(t, err)
}

func TestParseTransactions(t *testing.T) {
	cmd, err := parseCommand("write 0x0c 0xdeadbeef")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdWrite, true)
	test.Equate(t, cmd.addr, 0x0c)
	test.Equate(t, cmd.value, 0xdeadbeef)

	cmd, err = parseCommand("READ 16")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdRead, true)
	test.Equate(t, cmd.addr, 16)

	// missing and malformed arguments
	_, err = parseCommand("write 0x0c")
	test.ExpectedFailure(t, err)
	_, err = parseCommand("read")
	test.ExpectedFailure(t, err)
	_, err = parseCommand("write banana 0x01")
	test.ExpectedFailure(t, err)
}

func TestParsePeekPoke(t *testing.T) {
	cmd, err := parseCommand("peek 3")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdPeek, true)
	test.Equate(t, cmd.idx, 3)

	cmd, err = parseCommand("poke 3 0x1234")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdPoke, true)
	test.Equate(t, cmd.value, 0x1234)

	_, err = parseCommand("peek -1")
	test.ExpectedFailure(t, err)
}

func TestParseBareCommands(t *testing.T) {
	for _, s := range []string{"regs", "crossing", "snapshot", "reset", "settle", "help", "quit", "q"} {
		_, err := parseCommand(s)
		test.ExpectedSuccess(t, err)
	}

	cmd, err := parseCommand("dump state.dot")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cmd.op == cmdDump, true)
	test.Equate(t, cmd.file, "state.dot")

	_, err = parseCommand("regs now")
	test.ExpectedFailure(t, err)
}

func TestParseUnrecognised(t *testing.T) {
	_, err := parseCommand("wobble")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, CommandError), true)

	_, err = parseCommand("")
	test.ExpectedFailure(t, err)
}
