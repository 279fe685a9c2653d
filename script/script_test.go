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

package script_test

import (
	"testing"

	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
	"github.com/jetsetilly/apbsim/script"
	"github.com/jetsetilly/apbsim/test"
)

func newRunner(t *testing.T) *script.Runner {
	t.Helper()
	cfg, err := hardware.NewConfigurator(bus.NewDef(), clocks.FastBus)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	return script.NewRunner(cfg, &test.CompareWriter{})
}

func TestRoundTrip(t *testing.T) {
	run := newRunner(t)

	err := run.RunString(`
		err = write(regaddr(0), 0xaabbccdd)
		check(not err, "unexpected bus error on write")

		data, err = read(regaddr(0))
		check(not err, "unexpected bus error on read")
		check(data == 0xaabbccdd, "read mismatch")
	`)
	test.ExpectedSuccess(t, err)
	test.Equate(t, run.Failures(), 0)
}

func TestOutOfRange(t *testing.T) {
	run := newRunner(t)

	err := run.RunString(`
		err = write(0x100, 0x12345678)
		check(err, "expected bus error on out of range write")

		data, err = read(0x100)
		check(err, "expected bus error on out of range read")
		check(data == 0, "out of range read should return zero")
	`)
	test.ExpectedSuccess(t, err)
}

func TestCrossing(t *testing.T) {
	run := newRunner(t)

	err := run.RunString(`
		write(regaddr(3), 0x55)
		settle()
		check(rddata(3) == 0x55, "value never crossed")
		check(rdready() == 0x8, "ready bitmask wrong")
		check(readymask() == 0x8, "bus domain ready bitmask wrong")
	`)
	test.ExpectedSuccess(t, err)
}

func TestReset(t *testing.T) {
	run := newRunner(t)

	err := run.RunString(`
		write(regaddr(0), 0xdeadbeef)
		settle()
		reset()
		data = read(regaddr(0))
		check(data == 0, "register not cleared by reset")
		check(rdready() == 0, "ready flags not cleared by reset")
	`)
	test.ExpectedSuccess(t, err)
}

func TestFailingCheck(t *testing.T) {
	run := newRunner(t)

	err := run.RunString(`check(1 == 2, "numbers are broken")`)
	test.ExpectedFailure(t, err)
	test.Equate(t, run.Failures(), 1)
}

func TestLuaError(t *testing.T) {
	run := newRunner(t)

	// a script error (as opposed to a failing check) is reported as an error
	err := run.RunString(`this is not lua`)
	test.ExpectedFailure(t, err)
}
