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

package instructions

// The table below defines every opcode value of the 2A03, including the
// undocumented ones. Cycle counts are the base counts; page sensitive
// instructions consume an additional cycle when indexing crosses a page
// boundary and branches are costed by the cpu package as they execute.
//
// Values are cross-checked by the test in table_test.go and, dynamically,
// by the execution package's Result.IsValid() function.

var table = []Definition{
	{OpCode: 0x00, Operator: Brk, AddressingMode: Implied, Cycles: 7, Effect: Interrupt},
	{OpCode: 0x01, Operator: Ora, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x02, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x03, Operator: SLO, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0x04, Operator: NOP, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x07, Operator: SLO, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Cycles: 3, Effect: Read},
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x0b, Operator: ANC, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x0c, Operator: NOP, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x0f, Operator: SLO, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0x11, Operator: Ora, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0x12, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x13, Operator: SLO, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0x14, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x17, Operator: SLO, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x1a, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x1b, Operator: SLO, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0x1c, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0x1f, Operator: SLO, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x21, Operator: And, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x22, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x23, Operator: RLA, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x27, Operator: RLA, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Cycles: 4, Effect: Read},
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x2b, Operator: ANC, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x2f, Operator: RLA, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0x31, Operator: And, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0x32, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x33, Operator: RLA, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0x34, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x37, Operator: RLA, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x3a, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x3b, Operator: RLA, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0x3c, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0x3f, Operator: RLA, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	{OpCode: 0x40, Operator: Rti, AddressingMode: Implied, Cycles: 6, Effect: Interrupt},
	{OpCode: 0x41, Operator: Eor, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x42, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x43, Operator: SRE, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0x44, Operator: NOP, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x46, Operator: Lsr, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x47, Operator: SRE, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Cycles: 3, Effect: Read},
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x4b, Operator: ASR, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Cycles: 3, Effect: Flow},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x4f, Operator: SRE, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0x51, Operator: Eor, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0x52, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x53, Operator: SRE, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0x54, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x56, Operator: Lsr, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x57, Operator: SRE, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x5a, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x5b, Operator: SRE, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0x5c, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0x5f, Operator: SRE, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x61, Operator: Adc, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x62, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x63, Operator: RRA, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0x64, Operator: NOP, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x66, Operator: Ror, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x67, Operator: RRA, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Cycles: 4, Effect: Read},
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x6a, Operator: Ror, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x6b, Operator: ARR, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect, Cycles: 5, Effect: Flow},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x6f, Operator: RRA, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0x71, Operator: Adc, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0x72, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x73, Operator: RRA, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0x74, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x76, Operator: Ror, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x77, Operator: RRA, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x7a, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x7b, Operator: RRA, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0x7c, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0x7f, Operator: RRA, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	{OpCode: 0x80, Operator: NOP, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x81, Operator: Sta, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Write},
	{OpCode: 0x82, Operator: NOP, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x83, Operator: SAX, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Write},
	{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x87, Operator: SAX, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x89, Operator: NOP, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x8b, Operator: XAA, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	{OpCode: 0x8f, Operator: SAX, AddressingMode: Absolute, Cycles: 4, Effect: Write},

	{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0x91, Operator: Sta, AddressingMode: IndirectIndexed, Cycles: 6, Effect: Write},
	{OpCode: 0x92, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x93, Operator: AHX, AddressingMode: IndirectIndexed, Cycles: 6, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Write},
	{OpCode: 0x97, Operator: SAX, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Write},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x9b, Operator: TAS, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},
	{OpCode: 0x9c, Operator: SHY, AddressingMode: AbsoluteIndexedX, Cycles: 5, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteIndexedX, Cycles: 5, Effect: Write},
	{OpCode: 0x9e, Operator: SHX, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},
	{OpCode: 0x9f, Operator: AHX, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},

	{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xa3, Operator: LAX, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xa7, Operator: LAX, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xab, Operator: LAX, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xaf, Operator: LAX, AddressingMode: Absolute, Cycles: 4, Effect: Read},

	{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0xb1, Operator: Lda, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0xb2, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xb3, Operator: LAX, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Read},
	{OpCode: 0xb7, Operator: LAX, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xbb, Operator: LAS, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xbf, Operator: LAX, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},

	{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xc2, Operator: NOP, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xc3, Operator: DCP, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xc7, Operator: DCP, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xcb, Operator: AXS, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0xcf, Operator: DCP, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0xd1, Operator: Cmp, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0xd2, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xd3, Operator: DCP, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0xd4, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xd7, Operator: DCP, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xda, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xdb, Operator: DCP, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0xdc, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0xdf, Operator: DCP, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xe2, Operator: NOP, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xe3, Operator: ISC, AddressingMode: IndexedIndirect, Cycles: 8, Effect: RMW},
	{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xe7, Operator: ISC, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xeb, Operator: SBC, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0xef, Operator: ISC, AddressingMode: Absolute, Cycles: 6, Effect: RMW},

	{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Cycles: 2, PageSensitive: true, Effect: Flow},
	{OpCode: 0xf1, Operator: Sbc, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},
	{OpCode: 0xf2, Operator: KIL, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xf3, Operator: ISC, AddressingMode: IndirectIndexed, Cycles: 8, Effect: RMW},
	{OpCode: 0xf4, Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xf7, Operator: ISC, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xfa, Operator: NOP, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xfb, Operator: ISC, AddressingMode: AbsoluteIndexedY, Cycles: 7, Effect: RMW},
	{OpCode: 0xfc, Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
	{OpCode: 0xff, Operator: ISC, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},
}

// GetDefinitions returns the table of instruction definitions for the 2A03,
// indexed by opcode. Every opcode byte value maps to a definition; there are
// no nil entries.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)
	for i := range table {
		d := table[i]
		d.Bytes = d.AddressingMode.Bytes()
		defs[d.OpCode] = &d
	}
	return defs
}
