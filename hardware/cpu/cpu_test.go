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

package cpu_test

import (
	"testing"

	"github.com/krbrs/gopher2a03/hardware/cpu"
	"github.com/krbrs/gopher2a03/hardware/memory/cpubus"
	"github.com/krbrs/gopher2a03/test"
)

// mockMem is a fully decoded 64KB memory with no mirroring. It keeps the
// tests independent of the console memory map.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

func (mem *mockMem) Poke(address uint16, data uint8) error {
	return mem.Write(address, data)
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func TestPowerUpState(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	test.Equate(t, mc.A.Value(), 0)
	test.Equate(t, mc.X.Value(), 0)
	test.Equate(t, mc.Y.Value(), 0)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
	test.Equate(t, mc.HasReset(), true)
}

func TestResetClearsZeroFlag(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$00 sets the Zero flag. a subsequent reset must clear it
	// rather than rederive it from the accumulator
	mem.putInstructions(0x0000, 0xa9, 0x00)
	mc.Reset()
	step(t, mc) // LDA #0
	test.Equate(t, mc.Status.Zero, true)

	mc.Reset()
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, false)
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
}

func TestResetVector(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(cpubus.Reset, 0x00, 0x80)
	mc.Reset()
	if err := mc.LoadPCIndirect(cpubus.Reset); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, mc.PC.Address(), 0x8000)
	test.Equate(t, mc.Status.InterruptDisable, true)
}

func TestStatusFlagInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0x0000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.Equate(t, mc.Status.String(), "sv-bdIzC")
	step(t, mc) // CLC
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLI
	test.Equate(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.Equate(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLV
	test.Equate(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.Equate(t, mc.SP.Value(), 0xfc)

	// the pushed status byte has the unused bit and the break bit set, the
	// latter marking the push as coming from an instruction
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register before restoring it from the stack
	mc.Status.Sign = true
	mc.Status.Overflow = true

	step(t, mc) // PLP
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.Sign, false)
	test.Equate(t, mc.Status.Overflow, false)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA immediate; ADC immediate
	origin := mem.putInstructions(0x0000, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	test.Equate(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // ADC #10
	test.Equate(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.Equate(t, mc.A.Value(), 3)
	test.Equate(t, mc.Status.Carry, true)

	// signed overflow: 0x7f + 1 = 0x80
	mem.putInstructions(origin, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$7F
	step(t, mc) // ADC #1
	test.Equate(t, mc.A.Value(), 0x80)
	test.Equate(t, mc.Status.String(), "SV-bdIzc")
}

// subtraction on the 6502 is addition of the one's complement. SBC with the
// carry set must produce the same accumulator and flags as ADC of the
// inverted operand with the carry set, for every operand pair.
func TestSubtractionIsInvertedAddition(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			mem.putInstructions(0x0000, 0xe9, uint8(b))
			if err := mc.LoadPC(0x0000); err != nil {
				t.Fatal(err)
			}
			mc.A.Load(uint8(a))
			mc.Status.Carry = true
			step(t, mc) // SBC #b
			sbcAcc := mc.A.Value()
			sbcStatus := mc.Status.String()

			mem.putInstructions(0x0000, 0x69, ^uint8(b))
			if err := mc.LoadPC(0x0000); err != nil {
				t.Fatal(err)
			}
			mc.A.Load(uint8(a))
			mc.Status.Carry = true
			step(t, mc) // ADC #^b

			if mc.A.Value() != sbcAcc || mc.Status.String() != sbcStatus {
				t.Fatalf("SBC and inverted ADC disagree for %#02x,%#02x (%#02x %s instead of %#02x %s)",
					a, b, mc.A.Value(), mc.Status.String(), sbcAcc, sbcStatus)
			}
		}
	}
}

func TestDecimalFlagIsInert(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// SED; SEC; LDA #$09; ADC #$01
	//
	// a 6502 with a connected decimal unit would produce 0x11. the 2A03
	// always produces the binary result
	mem.putInstructions(0x0000, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // CLC
	step(t, mc) // LDA #$09
	step(t, mc) // ADC #1
	test.Equate(t, mc.A.Value(), 0x0a)
	test.Equate(t, mc.Status.Decimal, true)
}

func TestShifts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$81; ASL A
	origin := mem.putInstructions(0x0000, 0xa9, 0x81, 0x0a)
	step(t, mc) // LDA #$81
	step(t, mc) // ASL A
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// ASL on memory is a read-modify-write and writes through the address
	mem.Poke(0x0080, 0x40)
	mem.putInstructions(origin, 0x06, 0x80)
	step(t, mc) // ASL $80
	mem.assert(t, 0x0080, 0x80)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.Status.Sign, true)

	// ROL pulls the carry into bit zero
	mc.Status.Carry = true
	mem.putInstructions(origin+2, 0x26, 0x80)
	step(t, mc) // ROL $80
	mem.assert(t, 0x0080, 0x01)
	test.Equate(t, mc.Status.Carry, true)
}

func TestAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// zero page
	mem.Poke(0x0042, 0x99)
	origin := mem.putInstructions(0x0000, 0xa5, 0x42)
	step(t, mc) // LDA $42
	test.Equate(t, mc.A.Value(), 0x99)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// zero page indexed, with wraparound
	mem.Poke(0x0001, 0x77)
	origin = mem.putInstructions(origin, 0xa2, 0x02, 0xb5, 0xff)
	step(t, mc) // LDX #2
	step(t, mc) // LDA $FF,X
	test.Equate(t, mc.A.Value(), 0x77)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.CPUBug, "zero page wraparound")

	// absolute
	mem.Poke(0x1234, 0x55)
	origin = mem.putInstructions(origin, 0xad, 0x34, 0x12)
	step(t, mc) // LDA $1234
	test.Equate(t, mc.A.Value(), 0x55)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// absolute indexed without page crossing
	mem.Poke(0x1236, 0x56)
	origin = mem.putInstructions(origin, 0xbd, 0x34, 0x12)
	step(t, mc) // LDA $1234,X
	test.Equate(t, mc.A.Value(), 0x56)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, false)

	// absolute indexed with page crossing costs a cycle
	mem.Poke(0x1301, 0x57)
	origin = mem.putInstructions(origin, 0xbd, 0xff, 0x12)
	step(t, mc) // LDA $12FF,X
	test.Equate(t, mc.A.Value(), 0x57)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, true)

	// pre-indexed indirect, with zero page wraparound of the pointer
	mem.Poke(0x0000, 0x00)
	mem.Poke(0x0001, 0x00)
	origin = mem.putInstructions(origin, 0xa1, 0xfe)
	step(t, mc) // LDA ($FE,X)  with X=2: pointer wraps to $00
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.LastResult.CPUBug, "zero page wraparound")

	// post-indexed indirect
	mem.Poke(0x0080, 0x00)
	mem.Poke(0x0081, 0x20)
	mem.Poke(0x2003, 0x58)
	origin = mem.putInstructions(origin, 0xa0, 0x03, 0xb1, 0x80)
	step(t, mc) // LDY #3
	step(t, mc) // LDA ($80),Y
	test.Equate(t, mc.A.Value(), 0x58)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// post-indexed indirect with page crossing costs a cycle
	mem.Poke(0x0082, 0xff)
	mem.Poke(0x0083, 0x20)
	mem.Poke(0x2102, 0x59)
	mem.putInstructions(origin, 0xb1, 0x82)
	step(t, mc) // LDA ($82),Y
	test.Equate(t, mc.A.Value(), 0x59)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.LastResult.PageFault, true)
}

func TestStoreCycles(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// stores pay for the page crossing whether it happens or not

	// LDX #1; STA $1234,X
	origin := mem.putInstructions(0x0000, 0xa2, 0x01, 0x9d, 0x34, 0x12)
	step(t, mc) // LDX #1
	step(t, mc) // STA $1234,X
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, false)

	// STA ($80),Y is always six cycles
	mem.Poke(0x0080, 0x00)
	mem.Poke(0x0081, 0x20)
	origin = mem.putInstructions(origin, 0x91, 0x80)
	step(t, mc) // STA ($80),Y
	test.Equate(t, mc.LastResult.Cycles, 6)

	// read-modify-write on an indexed absolute address is seven cycles
	mem.putInstructions(origin, 0xfe, 0x34, 0x12)
	step(t, mc) // INC $1234,X
	test.Equate(t, mc.LastResult.Cycles, 7)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// branch not taken is two cycles
	mem.putInstructions(0x0000, 0xd0, 0x10) // BNE +16 with Z set
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.PC.Address(), 0x0002)

	// branch taken within the page is three cycles
	mem.putInstructions(0x0002, 0xf0, 0x10) // BEQ +16
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.PC.Address(), 0x0014)

	// a backwards branch across a page boundary is four cycles
	mem.putInstructions(0x0014, 0xf0, 0xe0) // BEQ -32
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.PC.Address(), 0xfff6)
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JMP absolute
	mem.putInstructions(0x0000, 0x4c, 0x00, 0x02)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0200)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// JMP indirect
	mem.Poke(0x0250, 0x00)
	mem.Poke(0x0251, 0x03)
	mem.putInstructions(0x0200, 0x6c, 0x50, 0x02)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0300)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// JMP indirect with the pointer on the last byte of a page: the high
	// byte of the target comes from the first byte of the *same* page
	mem.Poke(0x03ff, 0x34)
	mem.Poke(0x0400, 0x99) // would be used without the bug
	mem.Poke(0x0300, 0x12) // used because of the bug
	mem.putInstructions(0x0300, 0x6c, 0xff, 0x03)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x1234)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.CPUBug, "indirect addressing bug (JMP bug)")
}

func TestSubroutines(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JSR at 0x0600. the pushed return address is the address of the last
	// byte of the JSR instruction, not the byte after it
	mem.putInstructions(0x0600, 0x20, 0x00, 0x07)
	mc.LoadPC(0x0600)
	step(t, mc) // JSR $0700
	test.Equate(t, mc.PC.Address(), 0x0700)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Value(), 0xfb)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)

	// RTS pulls the address and adds one
	mem.putInstructions(0x0700, 0x60)
	predicted, ok := mc.PredictRTS()
	test.Equate(t, ok, true)
	test.Equate(t, predicted, 0x0603)
	step(t, mc) // RTS
	test.Equate(t, mc.PC.Address(), 0x0603)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// BRK handler at 0x4000
	mem.putInstructions(cpubus.IRQ, 0x00, 0x40)
	mem.putInstructions(0x0600, 0x00, 0xff) // BRK plus padding byte
	mc.LoadPC(0x0600)
	mc.Status.InterruptDisable = false

	step(t, mc) // BRK
	test.Equate(t, mc.PC.Address(), 0x4000)
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// the pushed program counter skips the padding byte
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)

	// the pushed status byte has the break bit set
	pushed, _ := mem.Read(0x01fb)
	test.Equate(t, pushed&0x10, 0x10)

	// RTI restores the status register and returns
	mem.putInstructions(0x4000, 0x40)
	step(t, mc) // RTI
	test.Equate(t, mc.PC.Address(), 0x0602)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.Status.InterruptDisable, false)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// NMI handler at 0x5000
	mem.putInstructions(cpubus.NMI, 0x00, 0x50)
	mem.putInstructions(0x0600, 0xea) // NOP
	mc.LoadPC(0x0600)

	// NMI is serviced even with the interrupt disable flag set
	test.Equate(t, mc.Status.InterruptDisable, true)

	mc.RaiseNMI()
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "NMI")
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.PC.Address(), 0x5000)
	test.Equate(t, mc.SP.Value(), 0xfa)

	// the pushed status byte has the break bit clear, marking the push as
	// coming from an interrupt line
	pushed, _ := mem.Read(0x01fb)
	test.Equate(t, pushed&0x10, 0x00)

	// pushed return address is the interrupted instruction
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x00)

	// the edge has been consumed. the next step runs the interrupted
	// instruction stream normally
	mem.putInstructions(0x5000, 0xea)
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "")
	test.Equate(t, mc.PC.Address(), 0x5001)
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// IRQ handler at 0x6000: just RTI
	mem.putInstructions(cpubus.IRQ, 0x00, 0x60)
	mem.putInstructions(0x6000, 0x40)
	mem.putInstructions(0x0600, 0xea, 0xea, 0xea)
	mc.LoadPC(0x0600)

	// IRQ is masked while the interrupt disable flag is set
	mc.SetIRQLine(true)
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "")
	test.Equate(t, mc.PC.Address(), 0x0601)

	// clearing the flag unmasks the held line
	mc.Status.InterruptDisable = false
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "IRQ")
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.PC.Address(), 0x6000)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// the line is level triggered: RTI restores the pushed status, and the
	// still-held line fires again at the next boundary
	step(t, mc) // RTI
	test.Equate(t, mc.Status.InterruptDisable, false)
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "IRQ")

	// releasing the line inside the handler stops the cycle
	step(t, mc) // RTI
	mc.SetIRQLine(false)
	step(t, mc)
	test.Equate(t, mc.LastResult.Interrupt, "")
}

func TestStackPageWraparound(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDX #0; TXS; PHA
	mem.putInstructions(0x0000, 0xa2, 0x00, 0x9a, 0xa9, 0xde, 0x48)
	step(t, mc) // LDX #0
	step(t, mc) // TXS
	test.Equate(t, mc.SP.Value(), 0x00)
	step(t, mc) // LDA #$DE
	step(t, mc) // PHA

	// the push went to the bottom of the stack page and the pointer wrapped
	// to the top. it never leaves page one
	mem.assert(t, 0x0100, 0xde)
	test.Equate(t, mc.SP.Value(), 0xff)
	test.Equate(t, mc.SP.Address(), 0x01ff)
}

func TestKIL(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0x02, 0xea)
	step(t, mc) // KIL
	test.Equate(t, mc.Killed, true)

	// the processor is jammed. further calls do nothing
	pc := mc.PC.Address()
	if err := mc.ExecuteInstruction(cpu.NilCycleCallback); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.PC.Address(), pc)

	// a reset recovers the processor
	mc.Reset()
	test.Equate(t, mc.Killed, false)
}

func TestUndocumentedInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LAX loads A and X together
	mem.Poke(0x0042, 0xc3)
	origin := mem.putInstructions(0x0000, 0xa7, 0x42)
	step(t, mc) // LAX $42
	test.Equate(t, mc.A.Value(), 0xc3)
	test.Equate(t, mc.X.Value(), 0xc3)
	test.Equate(t, mc.Status.Sign, true)

	// SAX stores A AND X
	origin = mem.putInstructions(origin, 0xa9, 0x0f, 0xa2, 0x33, 0x87, 0x43)
	step(t, mc) // LDA #$0F
	step(t, mc) // LDX #$33
	step(t, mc) // SAX $43
	mem.assert(t, 0x0043, 0x03)

	// DCP decrements memory and compares with A
	mem.Poke(0x0044, 0x10)
	origin = mem.putInstructions(origin, 0xa9, 0x0f, 0xc7, 0x44)
	step(t, mc) // LDA #$0F
	step(t, mc) // DCP $44
	mem.assert(t, 0x0044, 0x0f)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)

	// SLO shifts memory left and ORs the result into A
	mem.Poke(0x0045, 0x41)
	origin = mem.putInstructions(origin, 0xa9, 0x01, 0x07, 0x45)
	step(t, mc) // LDA #1
	step(t, mc) // SLO $45
	mem.assert(t, 0x0045, 0x82)
	test.Equate(t, mc.A.Value(), 0x83)

	// ISC increments memory and subtracts it from A
	mem.Poke(0x0046, 0x01)
	mem.putInstructions(origin, 0x38, 0xa9, 0x0a, 0xe7, 0x46)
	step(t, mc) // SEC
	step(t, mc) // LDA #$0A
	step(t, mc) // ISC $46
	mem.assert(t, 0x0046, 0x02)
	test.Equate(t, mc.A.Value(), 0x08)
}

func TestCycleCallback(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// the callback runs once per cycle and the count agrees with the result
	mem.putInstructions(0x0000, 0xad, 0x34, 0x12) // LDA $1234
	cycles := 0
	err := mc.ExecuteInstruction(func() error {
		cycles++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 4)
	test.Equate(t, mc.LastResult.Cycles, 4)
}

func TestSnapshotAndPlumb(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0xa9, 0x42, 0xa9, 0x43)
	step(t, mc) // LDA #$42

	snap := mc.Snapshot()
	step(t, mc) // LDA #$43
	test.Equate(t, mc.A.Value(), 0x43)

	// the snapshot preserved the earlier state
	test.Equate(t, snap.A.Value(), 0x42)
	test.Equate(t, snap.PC.Address(), 0x0002)

	// plumb a fresh memory into the snapshot and resume from it
	mem2 := newMockMem()
	mem2.putInstructions(0x0002, 0xa9, 0x44)
	snap.Plumb(mem2)
	step(t, snap)
	test.Equate(t, snap.A.Value(), 0x44)
}
