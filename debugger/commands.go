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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/disassembly"
	"github.com/krbrs/gopher2a03/logger"
)

// list of valid commands.
const (
	cmdCycles    = "CYCLES"
	cmdDisasm    = "DISASM"
	cmdHelp      = "HELP"
	cmdIRQ       = "IRQ"
	cmdList      = "LIST"
	cmdLog       = "LOG"
	cmdNMI       = "NMI"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdQuit      = "QUIT"
	cmdRegisters = "REGISTERS"
	cmdReset     = "RESET"
	cmdRun       = "RUN"
	cmdStep      = "STEP"
	cmdViz       = "VIZ"
)

var commandHelp = map[string]string{
	cmdCycles:    "Display the number of cycles ticked since the last reset",
	cmdDisasm:    "Write the disassembly of the entire program",
	cmdHelp:      "Display a list of commands",
	cmdIRQ:       "Set the level of the IRQ line (IRQ ON|OFF)",
	cmdList:      "List the disassembly from the specified address (default PC)",
	cmdLog:       "Display the contents of the central log (LOG [LAST [N]])",
	cmdNMI:       "Signal an edge on the NMI line",
	cmdPeek:      "Display the value of the specified addresses (PEEK ADDRESS [COUNT])",
	cmdPoke:      "Write a value to the specified address (POKE ADDRESS VALUE)",
	cmdQuit:      "End the debugging session",
	cmdRegisters: "Display the CPU registers",
	cmdReset:     "Reset the emulated console",
	cmdRun:       "Run the emulation (RUN [INSTRUCTIONS], stops on a KIL opcode)",
	cmdStep:      "Step the emulation forward (STEP [INSTRUCTIONS])",
	cmdViz:       "Write a graphviz visualisation of the hardware to a file",
}

// number of disassembly entries printed by the LIST command.
const listLength = 10

// default file written by the VIZ command.
const vizFile = "memviz.dot"

func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdHelp:
		dbg.help(args)

	case cmdQuit, "EXIT":
		dbg.running = false

	case cmdReset:
		err := dbg.nes.Reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		return dbg.step(n)

	case cmdRun:
		n := -1
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		return dbg.run(n)

	case cmdRegisters:
		dbg.printLine(terminal.StyleMachineInfo, dbg.nes.CPU.String())

	case cmdPeek:
		return dbg.peek(args)

	case cmdPoke:
		return dbg.poke(args)

	case cmdList:
		return dbg.list(args)

	case cmdDisasm:
		w := &termWriter{dbg: dbg, style: terminal.StyleMachineInfo}
		return dbg.dsm.Write(w, disassembly.WriteAttr{})

	case cmdNMI:
		dbg.nes.RaiseNMI()
		dbg.printLine(terminal.StyleFeedback, "NMI edge signalled")

	case cmdIRQ:
		if len(args) != 1 {
			return fmt.Errorf("IRQ requires ON or OFF")
		}
		switch strings.ToUpper(args[0]) {
		case "ON":
			dbg.nes.SetIRQLine(true)
			dbg.printLine(terminal.StyleFeedback, "IRQ line held")
		case "OFF":
			dbg.nes.SetIRQLine(false)
			dbg.printLine(terminal.StyleFeedback, "IRQ line released")
		default:
			return fmt.Errorf("IRQ requires ON or OFF")
		}

	case cmdCycles:
		dbg.printLine(terminal.StyleMachineInfo, fmt.Sprintf("%d cycles", dbg.nes.TotalCycles()))

	case cmdLog:
		w := &termWriter{dbg: dbg, style: terminal.StyleLog}
		if len(args) > 0 && strings.ToUpper(args[0]) == "LAST" {
			n := listLength
			if len(args) > 1 {
				var err error
				n, err = parseNumber(args[1])
				if err != nil {
					return err
				}
			}
			logger.Tail(w, n)
			w.flush()
			return nil
		}
		if !logger.Write(w) {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		}
		w.flush()

	case cmdViz:
		fn := vizFile
		if len(args) > 0 {
			fn = args[0]
		}
		return dbg.viz(fn)

	default:
		return fmt.Errorf("unknown command (%s)", command)
	}

	return nil
}

func (dbg *Debugger) help(args []string) {
	if len(args) > 0 {
		command := strings.ToUpper(args[0])
		if h, ok := commandHelp[command]; ok {
			dbg.printLine(terminal.StyleHelp, h)
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for %s", command)
		}
		return
	}

	commands := make([]string, 0, len(commandHelp))
	for c := range commandHelp {
		commands = append(commands, c)
	}
	sort.Strings(commands)
	dbg.printLine(terminal.StyleHelp, strings.Join(commands, " "))
}

// step the emulation n instructions, printing the result of each.
func (dbg *Debugger) step(n int) error {
	for i := 0; i < n; i++ {
		_, err := dbg.nes.Step(nil)
		if err != nil {
			return err
		}
		dbg.printInstruction()

		if dbg.nes.CPU.Killed {
			dbg.printLine(terminal.StyleFeedback, "CPU killed, use RESET to continue")
			return nil
		}
	}
	return nil
}

// run the emulation for n instructions or, if n is negative, until the CPU
// is killed.
func (dbg *Debugger) run(n int) error {
	count := 0
	err := dbg.nes.Run(func() (bool, error) {
		count++
		if dbg.nes.CPU.Killed {
			return false, nil
		}
		return n < 0 || count < n, nil
	})
	if err != nil {
		return err
	}

	dbg.printInstruction()
	if dbg.nes.CPU.Killed {
		dbg.printLine(terminal.StyleFeedback, "CPU killed, use RESET to continue")
	}
	return nil
}

// print the result of the most recent instruction or interrupt.
func (dbg *Debugger) printInstruction() {
	res := dbg.nes.CPU.LastResult

	if res.Interrupt != "" {
		dbg.printLine(terminal.StyleCPUStep, "%s interrupt serviced (%d cycles)", res.Interrupt, res.Cycles)
		return
	}

	e := disassembly.FormatResult(res)
	s := strings.Builder{}
	s.WriteString(e.String())
	s.WriteString(fmt.Sprintf(" (%d cycles)", res.Cycles))
	if res.PageFault {
		s.WriteString(" page-fault")
	}
	if res.CPUBug != "" {
		s.WriteString(fmt.Sprintf(" * %s", res.CPUBug))
	}
	dbg.printLine(terminal.StyleCPUStep, s.String())
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("PEEK requires an address")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	num := 1
	if len(args) > 1 {
		num, err = parseNumber(args[1])
		if err != nil {
			return err
		}
	}

	for i := 0; i < num; i++ {
		a := address + uint16(i)
		v, err := dbg.nes.Mem.Peek(a)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMachineInfo, "$%04x = $%02x", a, v)
	}

	return nil
}

func (dbg *Debugger) poke(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("POKE requires an address and a value")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	value, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	if value < 0 || value > 255 {
		return fmt.Errorf("poke value must fit in one byte (%d)", value)
	}

	err = dbg.nes.Mem.Poke(address, uint8(value))
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleMachineInfo, "$%04x = $%02x", address, uint8(value))
	return nil
}

func (dbg *Debugger) list(args []string) error {
	address := dbg.nes.CPU.PC.Address()
	if len(args) > 0 {
		var err error
		address, err = parseAddress(args[0])
		if err != nil {
			return err
		}
	}

	listed := 0
	for listed < listLength {
		e := dbg.dsm.GetEntryByAddress(address)
		if e == nil {
			break
		}

		dbg.printLine(terminal.StyleMachineInfo, e.String())
		listed++

		next := address + uint16(e.Result.ByteCount)
		if next < address {
			break
		}
		address = next
	}

	if listed == 0 {
		dbg.printLine(terminal.StyleFeedback, "nothing to list at $%04x", address)
	}

	return nil
}

// parseAddress converts a string to a 16 bit address. hexadecimal numbers
// can be prefixed with $ or 0x.
func parseAddress(s string) (uint16, error) {
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xffff {
		return 0, fmt.Errorf("address out of range (%s)", s)
	}
	return uint16(n), nil
}

func parseNumber(s string) (int, error) {
	base := 10
	if strings.HasPrefix(s, "$") {
		s = s[1:]
		base = 16
	} else if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}

	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("not a valid number (%s)", s)
	}
	return int(n), nil
}

// termWriter makes an io.Writer from terminal output, buffering partial
// lines.
type termWriter struct {
	dbg    *Debugger
	style  terminal.Style
	buffer strings.Builder
}

func (w *termWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			w.dbg.printLine(w.style, w.buffer.String())
			w.buffer.Reset()
			continue
		}
		w.buffer.WriteByte(b)
	}
	return len(p), nil
}

func (w *termWriter) flush() {
	if w.buffer.Len() > 0 {
		w.dbg.printLine(w.style, w.buffer.String())
		w.buffer.Reset()
	}
}
