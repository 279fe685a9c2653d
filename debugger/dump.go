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

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/apbsim/curated"
)

// dump writes a graphviz (dot) description of the entire simulation state to
// the named file. render with, for example:
//
//	dot -Tsvg -o state.svg state.dot
func (dbg *Debugger) dump(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: dump: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.cfg)

	return nil
}
