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

// Package instructions defines the instruction set of the 2A03. The
// GetDefinitions() function returns the table of definitions, one for every
// possible opcode byte value. The cpu package uses the table to decode
// opcodes and the disassembly package uses it to decode memory statically.
package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (mode AddressingMode) String() string {
	switch mode {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction with this addressing mode
// occupies in memory, including the opcode itself.
func (mode AddressingMode) Bytes() int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, Relative, ZeroPage, IndexedIndirect, IndirectIndexed,
		ZeroPageIndexedX, ZeroPageIndexedY:
		return 2
	}
	return 3
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following categories have a variable effect on the program
	// counter, depending on the instruction's precise operand.
	Flow
	Subroutine
	Interrupt
)

// Operator describes the operation performed by an instruction, independent
// of the addressing mode it is coupled with.
type Operator int

// List of operators. The documented instruction set first, followed by the
// undocumented operators that NES software is known to rely on.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators
	AHX
	ANC
	ARR
	ASR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	NOP
	RLA
	RRA
	SAX
	SBC
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA
)

func (operator Operator) String() string {
	switch operator {
	case Adc:
		return "ADC"
	case And:
		return "AND"
	case Asl:
		return "ASL"
	case Bcc:
		return "BCC"
	case Bcs:
		return "BCS"
	case Beq:
		return "BEQ"
	case Bit:
		return "BIT"
	case Bmi:
		return "BMI"
	case Bne:
		return "BNE"
	case Bpl:
		return "BPL"
	case Brk:
		return "BRK"
	case Bvc:
		return "BVC"
	case Bvs:
		return "BVS"
	case Clc:
		return "CLC"
	case Cld:
		return "CLD"
	case Cli:
		return "CLI"
	case Clv:
		return "CLV"
	case Cmp:
		return "CMP"
	case Cpx:
		return "CPX"
	case Cpy:
		return "CPY"
	case Dec:
		return "DEC"
	case Dex:
		return "DEX"
	case Dey:
		return "DEY"
	case Eor:
		return "EOR"
	case Inc:
		return "INC"
	case Inx:
		return "INX"
	case Iny:
		return "INY"
	case Jmp:
		return "JMP"
	case Jsr:
		return "JSR"
	case Lda:
		return "LDA"
	case Ldx:
		return "LDX"
	case Ldy:
		return "LDY"
	case Lsr:
		return "LSR"
	case Nop:
		return "NOP"
	case Ora:
		return "ORA"
	case Pha:
		return "PHA"
	case Php:
		return "PHP"
	case Pla:
		return "PLA"
	case Plp:
		return "PLP"
	case Rol:
		return "ROL"
	case Ror:
		return "ROR"
	case Rti:
		return "RTI"
	case Rts:
		return "RTS"
	case Sbc:
		return "SBC"
	case Sec:
		return "SEC"
	case Sed:
		return "SED"
	case Sei:
		return "SEI"
	case Sta:
		return "STA"
	case Stx:
		return "STX"
	case Sty:
		return "STY"
	case Tax:
		return "TAX"
	case Tay:
		return "TAY"
	case Tsx:
		return "TSX"
	case Txa:
		return "TXA"
	case Txs:
		return "TXS"
	case Tya:
		return "TYA"
	case AHX:
		return "ahx"
	case ANC:
		return "anc"
	case ARR:
		return "arr"
	case ASR:
		return "asr"
	case AXS:
		return "axs"
	case DCP:
		return "dcp"
	case ISC:
		return "isc"
	case KIL:
		return "kil"
	case LAS:
		return "las"
	case LAX:
		return "lax"
	case NOP:
		return "nop"
	case RLA:
		return "rla"
	case RRA:
		return "rra"
	case SAX:
		return "sax"
	case SBC:
		return "sbc"
	case SHX:
		return "shx"
	case SHY:
		return "shy"
	case SLO:
		return "slo"
	case SRE:
		return "sre"
	case TAS:
		return "tas"
	case XAA:
		return "xaa"
	}
	return "unknown operator"
}

// IsUndocumented returns true if the operator is not part of the documented
// instruction set. By convention the undocumented operators String() in
// lower case, which is also how the disassembly renders them.
func (operator Operator) IsUndocumented() bool {
	return operator >= AHX
}

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%d]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
