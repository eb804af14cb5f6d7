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

// Package plainterm implements the Terminal interface of the debugger. It
// is the default, most basic terminal interface. It is makes no assumptions
// about the host terminal and so works everywhere, including when input and
// output has been redirected.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/krbrs/gopher2a03/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleHelp:
		s = fmt.Sprintf("  %s", s)
	}

	_, _ = pt.output.Write([]byte(s))

	if !style.IsPrompt() {
		_, _ = pt.output.Write([]byte("\n"))
	}
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if pt.silenced {
		return 0, io.EOF
	}

	pt.TermPrintLine(prompt.Style, prompt.Content)

	n, err := pt.input.Read(buffer)
	if err != nil {
		return n, err
	}
	return n, nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return true
}
