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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/test"
)

// scripted input through a regular file, the way a piped session arrives.
// Tcgetattr fails on a non-terminal so this also covers the fallback switch.
func TestTerminalNonInteractive(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "input")
	err := os.WriteFile(in, []byte("regs\n  step bus 2  \n"), 0o600)
	test.ExpectedSuccess(t, err)

	inf, err := os.Open(in)
	test.ExpectedSuccess(t, err)
	defer inf.Close()

	outf, err := os.Create(filepath.Join(dir, "output"))
	test.ExpectedSuccess(t, err)
	defer outf.Close()

	trm := &terminal{}
	trm.initialise(inf, outf)
	test.ExpectedFailure(t, trm.interactive)

	s, err := trm.readLine("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "regs")

	// surrounding space is trimmed
	s, err = trm.readLine("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "step bus 2")

	// exhausted input reads as a quit
	_, err = trm.readLine("")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, UserQuit), true)

	trm.cleanUp()
}
