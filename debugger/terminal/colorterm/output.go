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

package colorterm

import (
	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// echoed input is printed inline as part of the prompt redraw
	if style != terminal.StyleEcho {
		ct.EasyTerm.TermPrint("\r")
	}

	switch style {
	case terminal.StylePrompt:
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleMachineInfo:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleCPUStep:
		ct.EasyTerm.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(ansi.DimPens["cyan"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	// add a newline if print style is anything other than prompt or echoed
	// input
	if !style.IsPrompt() && style != terminal.StyleEcho {
		ct.EasyTerm.TermPrint("\n")
	}
}
