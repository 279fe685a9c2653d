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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/apbsim/test"
)

func TestCentral(t *testing.T) {
	Clear()

	Log("test", "this is a test")
	s := &strings.Builder{}
	Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	Logf("test", "this is a test (%d)", 10)
	s.Reset()
	Write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is a test (10)\n")

	Clear()
	s.Reset()
	Write(s)
	test.Equate(t, s.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	Clear()

	// the same entry three times over should fold into one line
	Log("apb", "transaction complete")
	Log("apb", "transaction complete")
	Log("apb", "transaction complete")

	s := &strings.Builder{}
	Write(s)
	test.Equate(t, s.String(), "apb: transaction complete (repeat x3)\n")
}

func TestTail(t *testing.T) {
	Clear()

	Log("test", "one")
	Log("test", "two")
	Log("test", "three")

	s := &strings.Builder{}
	Tail(s, 2)
	test.Equate(t, s.String(), "test: two\ntest: three\n")

	// a tail longer than the log is capped
	s.Reset()
	Tail(s, 100)
	test.Equate(t, s.String(), "test: one\ntest: two\ntest: three\n")
}
