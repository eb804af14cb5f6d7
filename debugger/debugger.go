// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger implements a terminal debugger for the emulated console.
// Commands are read from a Terminal implementation, the emulation is stepped
// instruction by instruction and the machine state can be inspected and
// altered between steps.
package debugger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/disassembly"
	"github.com/krbrs/gopher2a03/hardware"
)

// the maximum length of a command line
const maxInputLength = 255

// Debugger is the controlling type for the debugging session.
type Debugger struct {
	nes  *hardware.NES
	dsm  *disassembly.Disassembly
	term terminal.Terminal

	// the debugger session continues while this is true
	running bool
}

// NewDebugger creates a debugging session for the supplied program ROM
// image. Interaction is through the supplied terminal.
func NewDebugger(term terminal.Terminal, prg []uint8) (*Debugger, error) {
	dbg := &Debugger{term: term}

	dbg.nes = hardware.NewNES()
	err := dbg.nes.AttachPRG(prg)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg.dsm, err = disassembly.FromMemory(prg)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	return dbg, nil
}

// Start the debugging session. Returns when the user has quit the session or
// when the terminal has been closed.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true
	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, maxInputLength)

	for dbg.running {
		n, err := dbg.term.TermRead(buffer, dbg.buildPrompt())
		if err != nil {
			if errors.Is(err, terminal.ErrInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to end the debugging session")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if n == 0 {
			continue
		}

		err = dbg.parseInput(strings.TrimSpace(string(buffer[:n])))
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// the prompt shows the instruction the next step will execute.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	s := strings.Builder{}
	s.WriteString("[ ")

	e := dbg.dsm.GetEntryByAddress(dbg.nes.CPU.PC.Address())
	if e != nil {
		s.WriteString(e.String())
	} else {
		s.WriteString(fmt.Sprintf("$%04x", dbg.nes.CPU.PC.Address()))
	}

	s.WriteString(" ] >> ")

	return terminal.Prompt{Content: s.String(), Style: terminal.StylePrompt}
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}
