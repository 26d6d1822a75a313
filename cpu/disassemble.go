package cpu

import (
	"fmt"

	"gone6502/mem"
)

// Disassemble decodes the single instruction at addr into a mnemonic+operand
// string, and returns the address of the instruction following it. It never
// mutates Cpu state; it reads directly from bus using the same opcode table
// Clock dispatches through, so it can never drift from execution semantics.
//
// Grounded on jmchacon-6502's disassemble.Step and n-ulricksen-nes's
// Cpu6502.Disassemble.
func Disassemble(bus mem.Reader, addr uint16) (string, uint16) {
	pc := addr
	opcode := bus.Read(pc, true)
	pc++

	entry := instructionTable[opcode]

	var operand string
	switch entry.Mode {
	case IMP:
		operand = ""
	case IMM:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" #$%02X", v)
	case ZP0:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" $%02X", v)
	case ZPX:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" $%02X,X", v)
	case ZPY:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" $%02X,Y", v)
	case REL:
		v := bus.Read(pc, true)
		pc++
		rel := uint16(v)
		if rel&0x80 != 0 {
			rel |= 0xFF00
		}
		operand = fmt.Sprintf(" $%02X [$%04X]", v, pc+rel)
	case ABS:
		lo := uint16(bus.Read(pc, true))
		pc++
		hi := uint16(bus.Read(pc, true))
		pc++
		operand = fmt.Sprintf(" $%04X", hi<<8|lo)
	case ABX:
		lo := uint16(bus.Read(pc, true))
		pc++
		hi := uint16(bus.Read(pc, true))
		pc++
		operand = fmt.Sprintf(" $%04X,X", hi<<8|lo)
	case ABY:
		lo := uint16(bus.Read(pc, true))
		pc++
		hi := uint16(bus.Read(pc, true))
		pc++
		operand = fmt.Sprintf(" $%04X,Y", hi<<8|lo)
	case IND:
		lo := uint16(bus.Read(pc, true))
		pc++
		hi := uint16(bus.Read(pc, true))
		pc++
		operand = fmt.Sprintf(" ($%04X)", hi<<8|lo)
	case IZX:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" ($%02X,X)", v)
	case IZY:
		v := bus.Read(pc, true)
		pc++
		operand = fmt.Sprintf(" ($%02X),Y", v)
	}

	name := entry.Name
	if name == "???" {
		name = "XXX"
	}

	return fmt.Sprintf("$%04X: %s%s", addr, name, operand), pc
}
