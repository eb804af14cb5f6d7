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
	"unicode"
	"unicode/utf8"

	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/debugger/terminal/colorterm/easyterm"
	"github.com/krbrs/gopher2a03/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	buffInput := make([]byte, cap(buffer))
	buffN := 0

	// the method for cursor placement is as follows:
	//	for each iteration in the loop
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.Content)))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style, ansi.ClearLine+prompt.Content)
		ct.TermPrintLine(terminal.StyleEcho, string(buffer[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return n + 1, terminal.ErrInterrupt

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if buffer[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then
			// append a new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, buffer[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			switch r {
			case easyterm.EscCursor:
				r, _, err := ct.reader.ReadRune()
				if err != nil {
					return n, err
				}

				switch r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, buffer[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(buffer, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(buffer, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(buffer, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}
				case easyterm.EscDelete:
					if cursor < n {
						copy(buffer[cursor:], buffer[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(buffer[cursor-1:], buffer[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				copy(buffer[cursor+m:], buffer[cursor:])
				copy(buffer[cursor:], er[:m])
				ct.EasyTerm.TermPrint(ansi.CursorMove(1))
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
