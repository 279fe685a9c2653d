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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// sentinel errors for the input loop
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// ansi pens used by the prompt and by command output
const (
	penOff    = "\033[0m"
	penBold   = "\033[1m"
	penCyan   = "\033[36;1m"
	penYellow = "\033[33;1m"
	penRed    = "\033[31;1m"
)

// terminal is a wrapper for "github.com/pkg/term/termios". input is read one
// key at a time in cbreak mode, with the terminal returned to canonical mode
// whenever control is handed back to the caller.
//
// if the input file is not a terminal (detected by the failure of
// Tcgetattr) the wrapper silently falls back to buffered line input.
type terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// interactive is false when input is a pipe or a redirected file
	interactive bool

	// buffered reader for the non-interactive fallback
	buffered *bufio.Reader
}

func (trm *terminal) initialise(input, output *os.File) {
	trm.input = input
	trm.output = output

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		trm.interactive = false
		trm.buffered = bufio.NewReader(trm.input)
		return
	}
	trm.interactive = true

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)
}

func (trm *terminal) cleanUp() {
	if trm.interactive {
		trm.canonicalMode()
	}
}

func (trm *terminal) canonicalMode() {
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}

func (trm *terminal) cbreakMode() {
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
}

func (trm *terminal) print(s string, a ...interface{}) {
	trm.output.WriteString(fmt.Sprintf(s, a...))
}

// readLine collects a single line of input, echoing as it goes. the returned
// string has no trailing newline and no leading/trailing space.
func (trm *terminal) readLine(prompt string) (string, error) {
	if !trm.interactive {
		s, err := trm.buffered.ReadString('\n')
		if err != nil {
			if err == io.EOF && len(s) > 0 {
				return strings.TrimSpace(s), nil
			}
			return "", curated.Errorf(UserQuit)
		}
		return strings.TrimSpace(s), nil
	}

	trm.cbreakMode()
	defer trm.canonicalMode()

	trm.print("%s", prompt)

	line := make([]byte, 0, 64)
	buf := make([]byte, 1)

	for {
		n, err := trm.input.Read(buf)
		if err != nil {
			return "", curated.Errorf(UserQuit)
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case 3: // ctrl-c
			trm.print("\n")
			return "", curated.Errorf(UserInterrupt)

		case 4: // ctrl-d
			trm.print("\n")
			return "", curated.Errorf(UserQuit)

		case 8, 127: // backspace / delete
			if len(line) > 0 {
				line = line[:len(line)-1]
				trm.print("\b \b")
			}

		case 10, 13: // newline / carriage return
			trm.print("\n")
			return strings.TrimSpace(string(line)), nil

		case 27: // swallow escape sequences (cursor keys etc.)
			trm.drainEscape()

		default:
			if buf[0] >= 32 && buf[0] < 127 {
				line = append(line, buf[0])
				trm.print("%c", buf[0])
			}
		}
	}
}

// drainEscape consumes the remainder of an ANSI escape sequence. sequences we
// care about are short so a bounded read is good enough.
func (trm *terminal) drainEscape() {
	buf := make([]byte, 1)
	for i := 0; i < 8; i++ {
		n, err := trm.input.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if (buf[0] >= 'a' && buf[0] <= 'z') || (buf[0] >= 'A' && buf[0] <= 'Z') || buf[0] == '~' {
			return
		}
	}
}
