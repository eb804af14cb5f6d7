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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/krbrs/gopher2a03/debugger"
	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/logger"
	"github.com/krbrs/gopher2a03/test"
)

// mockTerm is a scripted terminal. it feeds the debugger a list of commands
// and records everything that is printed.
type mockTerm struct {
	commands []string
	idx      int
	output   []string
	errors   []string
}

func (m *mockTerm) Initialise() error { return nil }
func (m *mockTerm) CleanUp()          {}
func (m *mockTerm) Silence(bool)      {}
func (m *mockTerm) IsInteractive() bool {
	return false
}

func (m *mockTerm) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if m.idx >= len(m.commands) {
		return 0, io.EOF
	}
	c := m.commands[m.idx]
	m.idx++
	copy(buffer, c)
	return len(c), nil
}

func (m *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		m.errors = append(m.errors, s)
		return
	}
	m.output = append(m.output, s)
}

// returns true if any recorded output line contains the substring.
func (m *mockTerm) outputContains(sub string) bool {
	for _, s := range m.output {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func testPRG(program []uint8) []uint8 {
	prg := make([]uint8, memory.PRGSizeSmall)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	return prg
}

func startDebugger(t *testing.T, trm *mockTerm, program []uint8) {
	t.Helper()

	dbg, err := debugger.NewDebugger(trm, testPRG(program))
	test.ExpectedSuccess(t, err)

	err = dbg.Start()
	test.ExpectedSuccess(t, err)
}

func TestStepAndRegisters(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"STEP",
		"REGISTERS",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{
		0xa9, 0xff, // LDA #$ff
		0x02, // KIL
	})

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("$8000 LDA #$ff (2 cycles)") {
		t.Errorf("expected instruction result in output: %v", trm.output)
	}
	if !trm.outputContains("PC=0x8002 A=0xff") {
		t.Errorf("expected register output: %v", trm.output)
	}
}

func TestPeekPoke(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"POKE $0200 $ab",
		"PEEK $0200",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{0x02})

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("$0200 = $ab") {
		t.Errorf("expected peek output: %v", trm.output)
	}
}

func TestRunUntilKill(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"RUN",
		"CYCLES",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{
		0xa2, 0x05, // LDX #$05 (2 cycles)
		0xca,       // DEX (2 cycles)
		0xd0, 0xfd, // BNE $8002 (3/2 cycles)
		0x02, // KIL (2 cycles)
	})

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("CPU killed") {
		t.Errorf("expected kill notice in output: %v", trm.output)
	}

	// reset sequence (7) + LDX (2) + 5 * DEX (2) + 4 taken branches (3)
	// + 1 untaken branch (2) + KIL (2)
	if !trm.outputContains("35 cycles") {
		t.Errorf("expected cycle count in output: %v", trm.output)
	}
}

func TestInterruptCommands(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"NMI",
		"STEP",
		"QUIT",
	}}

	// NMI vector points at the KIL instruction
	prg := testPRG([]uint8{
		0xea, // NOP
		0x02, // KIL
	})
	prg[0x3ffa] = 0x01
	prg[0x3ffb] = 0x80

	dbg, err := debugger.NewDebugger(trm, prg)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, dbg.Start())

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("NMI interrupt serviced (7 cycles)") {
		t.Errorf("expected interrupt service in output: %v", trm.output)
	}
}

func TestList(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"LIST $8000",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{
		0xa9, 0x10, // LDA #$10
		0x8d, 0x00, 0x02, // STA $0200
		0x02, // KIL
	})

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("$8002 STA $0200") {
		t.Errorf("expected listing in output: %v", trm.output)
	}
}

func TestLogTail(t *testing.T) {
	logger.Clear()

	trm := &mockTerm{commands: []string{
		"RUN",
		"LOG LAST 5",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{0x02})

	test.Equate(t, len(trm.errors), 0)
	if !trm.outputContains("KIL instruction") {
		t.Errorf("expected kill entry in log output: %v", trm.output)
	}
}

func TestUnknownCommand(t *testing.T) {
	trm := &mockTerm{commands: []string{
		"NOSUCHTHING",
		"QUIT",
	}}

	startDebugger(t, trm, []uint8{0x02})

	test.Equate(t, len(trm.errors), 1)
	if !strings.Contains(trm.errors[0], "unknown command") {
		t.Errorf("expected unknown command error: %v", trm.errors)
	}
}
