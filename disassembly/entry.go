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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/krbrs/gopher2a03/hardware/cpu/execution"
	"github.com/krbrs/gopher2a03/hardware/cpu/instructions"
)

// EntryLevel describes the level of reliability of an Entry.
//
// Decoded entries have been decoded as though every byte point is a valid
// instruction. Blessed entries meanwhile take into consideration the
// preceding instruction and the number of bytes it would have consumed.
//
// Decoded entries are useful in the event of the CPU landing on an address
// that didn't look like an instruction at disassembly time.
//
// Blessed instructions are deemed to be more accurate because they have been
// reached according to the flow of the instructions from the start address.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

// Entry is a disassembled instruction. The constituent parts of the
// disassembly. It is a representation of execution.Result.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// copy of the CPU execution used to create the entry
	Result execution.Result

	// string representations of information in Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

// String returns a very basic representation of an Entry. Provided for
// convenience. Most useful output of a disassembly will be with the
// Disassembly Write() functions or by using the fields directly.
func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand))
}

// FormatResult creates an Entry for the supplied execution result.
func FormatResult(result execution.Result) Entry {
	e := Entry{
		Result:  result,
		Level:   EntryLevelDecoded,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		return e
	}

	e.Operator = result.Defn.Operator.String()

	// bytecode of the instruction as it appears in memory
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%02x ", result.Defn.OpCode))
	switch result.Defn.Bytes {
	case 3:
		b.WriteString(fmt.Sprintf("%02x %02x", result.InstructionData&0x00ff, result.InstructionData>>8))
	case 2:
		b.WriteString(fmt.Sprintf("%02x", result.InstructionData&0x00ff))
	}
	e.Bytecode = strings.TrimSpace(b.String())

	data := result.InstructionData

	switch result.Defn.AddressingMode {
	case instructions.Implied:
		// no operand
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02x", data)
	case instructions.Relative:
		// operand is the branch target rather than the raw offset. the
		// target is relative to the address of the next instruction
		target := result.Address + uint16(result.Defn.Bytes)
		offset := data
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		target += offset
		e.Operand = fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04x", data)
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02x", data)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04x)", data)
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02x,X)", data)
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02x),Y", data)
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("$%04x,X", data)
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("$%04x,Y", data)
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("$%02x,X", data)
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("$%02x,Y", data)
	}

	return e
}
