package cpu

// An Opcode binds a single byte value (0x00-0xFF) to the addressing mode
// that resolves its operand, the operation that executes it, its mnemonic
// (for disassembly/debugging), and its base cycle cost. Of the 256 possible
// byte values, only 56 mnemonics are documented; the rest are illegal
// opcodes that this core treats uniformly as tabulated-cycle no-ops (XXX),
// except for the six "NOP abs,X" encodings that are documented to pay the
// same page-cross penalty as a real load/compare.
type Opcode struct {
	Name string // mnemonic, for disassembly/debugging only

	Mode AddressingMode

	// Op is invoked with Fetched/AbsAddress/RelAddress already resolved by
	// the addressing-mode decoder. Its return value is a 1-bit "extra
	// cycle eligible" flag, ANDed against the addressing mode's own
	// page-cross flag by Clock.
	Op func(c *Cpu) byte

	Cycles byte // base clock cycles, before any page-cross/branch penalty
}

// instructionTable is the 256-entry dispatch table indexed directly by
// opcode byte. Bindings follow the canonical MOS 6502 reference table, with
// one deliberate deviation: opcodes 0x1C/0x3C/0x5C/0x7C/0xDC/0xFC ("NOP
// abs,X") are tabulated here with AddressingMode ABX rather than IMP, since
// they are documented as page-cross-penalty eligible and IMP never resolves
// an address to check for a page cross. See DESIGN.md.
var instructionTable = [256]Opcode{
	0x00: {"BRK", IMP, (*Cpu).BRK, 7}, 0x01: {"ORA", IZX, (*Cpu).ORA, 6}, 0x02: {"???", IMP, (*Cpu).XXX, 2}, 0x03: {"???", IMP, (*Cpu).XXX, 8},
	0x04: {"???", IMP, (*Cpu).NOP, 3}, 0x05: {"ORA", ZP0, (*Cpu).ORA, 3}, 0x06: {"ASL", ZP0, (*Cpu).ASL, 5}, 0x07: {"???", IMP, (*Cpu).XXX, 5},
	0x08: {"PHP", IMP, (*Cpu).PHP, 3}, 0x09: {"ORA", IMM, (*Cpu).ORA, 2}, 0x0A: {"ASL", IMP, (*Cpu).ASL, 2}, 0x0B: {"???", IMP, (*Cpu).XXX, 2},
	0x0C: {"???", IMP, (*Cpu).NOP, 4}, 0x0D: {"ORA", ABS, (*Cpu).ORA, 4}, 0x0E: {"ASL", ABS, (*Cpu).ASL, 6}, 0x0F: {"???", IMP, (*Cpu).XXX, 6},

	0x10: {"BPL", REL, (*Cpu).BPL, 2}, 0x11: {"ORA", IZY, (*Cpu).ORA, 5}, 0x12: {"???", IMP, (*Cpu).XXX, 2}, 0x13: {"???", IMP, (*Cpu).XXX, 8},
	0x14: {"???", IMP, (*Cpu).NOP, 4}, 0x15: {"ORA", ZPX, (*Cpu).ORA, 4}, 0x16: {"ASL", ZPX, (*Cpu).ASL, 6}, 0x17: {"???", IMP, (*Cpu).XXX, 6},
	0x18: {"CLC", IMP, (*Cpu).CLC, 2}, 0x19: {"ORA", ABY, (*Cpu).ORA, 4}, 0x1A: {"???", IMP, (*Cpu).NOP, 2}, 0x1B: {"???", IMP, (*Cpu).XXX, 7},
	0x1C: {"NOP", ABX, (*Cpu).NOP, 4}, 0x1D: {"ORA", ABX, (*Cpu).ORA, 4}, 0x1E: {"ASL", ABX, (*Cpu).ASL, 7}, 0x1F: {"???", IMP, (*Cpu).XXX, 7},

	0x20: {"JSR", ABS, (*Cpu).JSR, 6}, 0x21: {"AND", IZX, (*Cpu).AND, 6}, 0x22: {"???", IMP, (*Cpu).XXX, 2}, 0x23: {"???", IMP, (*Cpu).XXX, 8},
	0x24: {"BIT", ZP0, (*Cpu).BIT, 3}, 0x25: {"AND", ZP0, (*Cpu).AND, 3}, 0x26: {"ROL", ZP0, (*Cpu).ROL, 5}, 0x27: {"???", IMP, (*Cpu).XXX, 5},
	0x28: {"PLP", IMP, (*Cpu).PLP, 4}, 0x29: {"AND", IMM, (*Cpu).AND, 2}, 0x2A: {"ROL", IMP, (*Cpu).ROL, 2}, 0x2B: {"???", IMP, (*Cpu).XXX, 2},
	0x2C: {"BIT", ABS, (*Cpu).BIT, 4}, 0x2D: {"AND", ABS, (*Cpu).AND, 4}, 0x2E: {"ROL", ABS, (*Cpu).ROL, 6}, 0x2F: {"???", IMP, (*Cpu).XXX, 6},

	0x30: {"BMI", REL, (*Cpu).BMI, 2}, 0x31: {"AND", IZY, (*Cpu).AND, 5}, 0x32: {"???", IMP, (*Cpu).XXX, 2}, 0x33: {"???", IMP, (*Cpu).XXX, 8},
	0x34: {"???", IMP, (*Cpu).NOP, 4}, 0x35: {"AND", ZPX, (*Cpu).AND, 4}, 0x36: {"ROL", ZPX, (*Cpu).ROL, 6}, 0x37: {"???", IMP, (*Cpu).XXX, 6},
	0x38: {"SEC", IMP, (*Cpu).SEC, 2}, 0x39: {"AND", ABY, (*Cpu).AND, 4}, 0x3A: {"???", IMP, (*Cpu).NOP, 2}, 0x3B: {"???", IMP, (*Cpu).XXX, 7},
	0x3C: {"NOP", ABX, (*Cpu).NOP, 4}, 0x3D: {"AND", ABX, (*Cpu).AND, 4}, 0x3E: {"ROL", ABX, (*Cpu).ROL, 7}, 0x3F: {"???", IMP, (*Cpu).XXX, 7},

	0x40: {"RTI", IMP, (*Cpu).RTI, 6}, 0x41: {"EOR", IZX, (*Cpu).EOR, 6}, 0x42: {"???", IMP, (*Cpu).XXX, 2}, 0x43: {"???", IMP, (*Cpu).XXX, 8},
	0x44: {"???", IMP, (*Cpu).NOP, 3}, 0x45: {"EOR", ZP0, (*Cpu).EOR, 3}, 0x46: {"LSR", ZP0, (*Cpu).LSR, 5}, 0x47: {"???", IMP, (*Cpu).XXX, 5},
	0x48: {"PHA", IMP, (*Cpu).PHA, 3}, 0x49: {"EOR", IMM, (*Cpu).EOR, 2}, 0x4A: {"LSR", IMP, (*Cpu).LSR, 2}, 0x4B: {"???", IMP, (*Cpu).XXX, 2},
	0x4C: {"JMP", ABS, (*Cpu).JMP, 3}, 0x4D: {"EOR", ABS, (*Cpu).EOR, 4}, 0x4E: {"LSR", ABS, (*Cpu).LSR, 6}, 0x4F: {"???", IMP, (*Cpu).XXX, 6},

	0x50: {"BVC", REL, (*Cpu).BVC, 2}, 0x51: {"EOR", IZY, (*Cpu).EOR, 5}, 0x52: {"???", IMP, (*Cpu).XXX, 2}, 0x53: {"???", IMP, (*Cpu).XXX, 8},
	0x54: {"???", IMP, (*Cpu).NOP, 4}, 0x55: {"EOR", ZPX, (*Cpu).EOR, 4}, 0x56: {"LSR", ZPX, (*Cpu).LSR, 6}, 0x57: {"???", IMP, (*Cpu).XXX, 6},
	0x58: {"CLI", IMP, (*Cpu).CLI, 2}, 0x59: {"EOR", ABY, (*Cpu).EOR, 4}, 0x5A: {"???", IMP, (*Cpu).NOP, 2}, 0x5B: {"???", IMP, (*Cpu).XXX, 7},
	0x5C: {"NOP", ABX, (*Cpu).NOP, 4}, 0x5D: {"EOR", ABX, (*Cpu).EOR, 4}, 0x5E: {"LSR", ABX, (*Cpu).LSR, 7}, 0x5F: {"???", IMP, (*Cpu).XXX, 7},

	0x60: {"RTS", IMP, (*Cpu).RTS, 6}, 0x61: {"ADC", IZX, (*Cpu).ADC, 6}, 0x62: {"???", IMP, (*Cpu).XXX, 2}, 0x63: {"???", IMP, (*Cpu).XXX, 8},
	0x64: {"???", IMP, (*Cpu).NOP, 3}, 0x65: {"ADC", ZP0, (*Cpu).ADC, 3}, 0x66: {"ROR", ZP0, (*Cpu).ROR, 5}, 0x67: {"???", IMP, (*Cpu).XXX, 5},
	0x68: {"PLA", IMP, (*Cpu).PLA, 4}, 0x69: {"ADC", IMM, (*Cpu).ADC, 2}, 0x6A: {"ROR", IMP, (*Cpu).ROR, 2}, 0x6B: {"???", IMP, (*Cpu).XXX, 2},
	0x6C: {"JMP", IND, (*Cpu).JMP, 5}, 0x6D: {"ADC", ABS, (*Cpu).ADC, 4}, 0x6E: {"ROR", ABS, (*Cpu).ROR, 6}, 0x6F: {"???", IMP, (*Cpu).XXX, 6},

	0x70: {"BVS", REL, (*Cpu).BVS, 2}, 0x71: {"ADC", IZY, (*Cpu).ADC, 5}, 0x72: {"???", IMP, (*Cpu).XXX, 2}, 0x73: {"???", IMP, (*Cpu).XXX, 8},
	0x74: {"???", IMP, (*Cpu).NOP, 4}, 0x75: {"ADC", ZPX, (*Cpu).ADC, 4}, 0x76: {"ROR", ZPX, (*Cpu).ROR, 6}, 0x77: {"???", IMP, (*Cpu).XXX, 6},
	0x78: {"SEI", IMP, (*Cpu).SEI, 2}, 0x79: {"ADC", ABY, (*Cpu).ADC, 4}, 0x7A: {"???", IMP, (*Cpu).NOP, 2}, 0x7B: {"???", IMP, (*Cpu).XXX, 7},
	0x7C: {"NOP", ABX, (*Cpu).NOP, 4}, 0x7D: {"ADC", ABX, (*Cpu).ADC, 4}, 0x7E: {"ROR", ABX, (*Cpu).ROR, 7}, 0x7F: {"???", IMP, (*Cpu).XXX, 7},

	0x80: {"???", IMP, (*Cpu).NOP, 2}, 0x81: {"STA", IZX, (*Cpu).STA, 6}, 0x82: {"???", IMP, (*Cpu).NOP, 2}, 0x83: {"???", IMP, (*Cpu).XXX, 6},
	0x84: {"STY", ZP0, (*Cpu).STY, 3}, 0x85: {"STA", ZP0, (*Cpu).STA, 3}, 0x86: {"STX", ZP0, (*Cpu).STX, 3}, 0x87: {"???", IMP, (*Cpu).XXX, 3},
	0x88: {"DEY", IMP, (*Cpu).DEY, 2}, 0x89: {"???", IMP, (*Cpu).NOP, 2}, 0x8A: {"TXA", IMP, (*Cpu).TXA, 2}, 0x8B: {"???", IMP, (*Cpu).XXX, 2},
	0x8C: {"STY", ABS, (*Cpu).STY, 4}, 0x8D: {"STA", ABS, (*Cpu).STA, 4}, 0x8E: {"STX", ABS, (*Cpu).STX, 4}, 0x8F: {"???", IMP, (*Cpu).XXX, 4},

	0x90: {"BCC", REL, (*Cpu).BCC, 2}, 0x91: {"STA", IZY, (*Cpu).STA, 6}, 0x92: {"???", IMP, (*Cpu).XXX, 2}, 0x93: {"???", IMP, (*Cpu).XXX, 6},
	0x94: {"STY", ZPX, (*Cpu).STY, 4}, 0x95: {"STA", ZPX, (*Cpu).STA, 4}, 0x96: {"STX", ZPY, (*Cpu).STX, 4}, 0x97: {"???", IMP, (*Cpu).XXX, 4},
	0x98: {"TYA", IMP, (*Cpu).TYA, 2}, 0x99: {"STA", ABY, (*Cpu).STA, 5}, 0x9A: {"TXS", IMP, (*Cpu).TXS, 2}, 0x9B: {"???", IMP, (*Cpu).XXX, 5},
	0x9C: {"???", IMP, (*Cpu).NOP, 5}, 0x9D: {"STA", ABX, (*Cpu).STA, 5}, 0x9E: {"???", IMP, (*Cpu).XXX, 5}, 0x9F: {"???", IMP, (*Cpu).XXX, 5},

	0xA0: {"LDY", IMM, (*Cpu).LDY, 2}, 0xA1: {"LDA", IZX, (*Cpu).LDA, 6}, 0xA2: {"LDX", IMM, (*Cpu).LDX, 2}, 0xA3: {"???", IMP, (*Cpu).XXX, 6},
	0xA4: {"LDY", ZP0, (*Cpu).LDY, 3}, 0xA5: {"LDA", ZP0, (*Cpu).LDA, 3}, 0xA6: {"LDX", ZP0, (*Cpu).LDX, 3}, 0xA7: {"???", IMP, (*Cpu).XXX, 3},
	0xA8: {"TAY", IMP, (*Cpu).TAY, 2}, 0xA9: {"LDA", IMM, (*Cpu).LDA, 2}, 0xAA: {"TAX", IMP, (*Cpu).TAX, 2}, 0xAB: {"???", IMP, (*Cpu).XXX, 2},
	0xAC: {"LDY", ABS, (*Cpu).LDY, 4}, 0xAD: {"LDA", ABS, (*Cpu).LDA, 4}, 0xAE: {"LDX", ABS, (*Cpu).LDX, 4}, 0xAF: {"???", IMP, (*Cpu).XXX, 4},

	0xB0: {"BCS", REL, (*Cpu).BCS, 2}, 0xB1: {"LDA", IZY, (*Cpu).LDA, 5}, 0xB2: {"???", IMP, (*Cpu).XXX, 2}, 0xB3: {"???", IMP, (*Cpu).XXX, 5},
	0xB4: {"LDY", ZPX, (*Cpu).LDY, 4}, 0xB5: {"LDA", ZPX, (*Cpu).LDA, 4}, 0xB6: {"LDX", ZPY, (*Cpu).LDX, 4}, 0xB7: {"???", IMP, (*Cpu).XXX, 4},
	0xB8: {"CLV", IMP, (*Cpu).CLV, 2}, 0xB9: {"LDA", ABY, (*Cpu).LDA, 4}, 0xBA: {"TSX", IMP, (*Cpu).TSX, 2}, 0xBB: {"???", IMP, (*Cpu).XXX, 4},
	0xBC: {"LDY", ABX, (*Cpu).LDY, 4}, 0xBD: {"LDA", ABX, (*Cpu).LDA, 4}, 0xBE: {"LDX", ABY, (*Cpu).LDX, 4}, 0xBF: {"???", IMP, (*Cpu).XXX, 4},

	0xC0: {"CPY", IMM, (*Cpu).CPY, 2}, 0xC1: {"CMP", IZX, (*Cpu).CMP, 6}, 0xC2: {"???", IMP, (*Cpu).NOP, 2}, 0xC3: {"???", IMP, (*Cpu).XXX, 8},
	0xC4: {"CPY", ZP0, (*Cpu).CPY, 3}, 0xC5: {"CMP", ZP0, (*Cpu).CMP, 3}, 0xC6: {"DEC", ZP0, (*Cpu).DEC, 5}, 0xC7: {"???", IMP, (*Cpu).XXX, 5},
	0xC8: {"INY", IMP, (*Cpu).INY, 2}, 0xC9: {"CMP", IMM, (*Cpu).CMP, 2}, 0xCA: {"DEX", IMP, (*Cpu).DEX, 2}, 0xCB: {"???", IMP, (*Cpu).XXX, 2},
	0xCC: {"CPY", ABS, (*Cpu).CPY, 4}, 0xCD: {"CMP", ABS, (*Cpu).CMP, 4}, 0xCE: {"DEC", ABS, (*Cpu).DEC, 6}, 0xCF: {"???", IMP, (*Cpu).XXX, 6},

	0xD0: {"BNE", REL, (*Cpu).BNE, 2}, 0xD1: {"CMP", IZY, (*Cpu).CMP, 5}, 0xD2: {"???", IMP, (*Cpu).XXX, 2}, 0xD3: {"???", IMP, (*Cpu).XXX, 8},
	0xD4: {"???", IMP, (*Cpu).NOP, 4}, 0xD5: {"CMP", ZPX, (*Cpu).CMP, 4}, 0xD6: {"DEC", ZPX, (*Cpu).DEC, 6}, 0xD7: {"???", IMP, (*Cpu).XXX, 6},
	0xD8: {"CLD", IMP, (*Cpu).CLD, 2}, 0xD9: {"CMP", ABY, (*Cpu).CMP, 4}, 0xDA: {"???", IMP, (*Cpu).NOP, 2}, 0xDB: {"???", IMP, (*Cpu).XXX, 7},
	0xDC: {"NOP", ABX, (*Cpu).NOP, 4}, 0xDD: {"CMP", ABX, (*Cpu).CMP, 4}, 0xDE: {"DEC", ABX, (*Cpu).DEC, 7}, 0xDF: {"???", IMP, (*Cpu).XXX, 7},

	0xE0: {"CPX", IMM, (*Cpu).CPX, 2}, 0xE1: {"SBC", IZX, (*Cpu).SBC, 6}, 0xE2: {"???", IMP, (*Cpu).NOP, 2}, 0xE3: {"???", IMP, (*Cpu).XXX, 8},
	0xE4: {"CPX", ZP0, (*Cpu).CPX, 3}, 0xE5: {"SBC", ZP0, (*Cpu).SBC, 3}, 0xE6: {"INC", ZP0, (*Cpu).INC, 5}, 0xE7: {"???", IMP, (*Cpu).XXX, 5},
	0xE8: {"INX", IMP, (*Cpu).INX, 2}, 0xE9: {"SBC", IMM, (*Cpu).SBC, 2}, 0xEA: {"NOP", IMP, (*Cpu).NOP, 2}, 0xEB: {"???", IMP, (*Cpu).XXX, 2},
	0xEC: {"CPX", ABS, (*Cpu).CPX, 4}, 0xED: {"SBC", ABS, (*Cpu).SBC, 4}, 0xEE: {"INC", ABS, (*Cpu).INC, 6}, 0xEF: {"???", IMP, (*Cpu).XXX, 6},

	0xF0: {"BEQ", REL, (*Cpu).BEQ, 2}, 0xF1: {"SBC", IZY, (*Cpu).SBC, 5}, 0xF2: {"???", IMP, (*Cpu).XXX, 2}, 0xF3: {"???", IMP, (*Cpu).XXX, 8},
	0xF4: {"???", IMP, (*Cpu).NOP, 4}, 0xF5: {"SBC", ZPX, (*Cpu).SBC, 4}, 0xF6: {"INC", ZPX, (*Cpu).INC, 6}, 0xF7: {"???", IMP, (*Cpu).XXX, 6},
	0xF8: {"SED", IMP, (*Cpu).SED, 2}, 0xF9: {"SBC", ABY, (*Cpu).SBC, 4}, 0xFA: {"???", IMP, (*Cpu).NOP, 2}, 0xFB: {"???", IMP, (*Cpu).XXX, 7},
	0xFC: {"NOP", ABX, (*Cpu).NOP, 4}, 0xFD: {"SBC", ABX, (*Cpu).SBC, 4}, 0xFE: {"INC", ABX, (*Cpu).INC, 7}, 0xFF: {"???", IMP, (*Cpu).XXX, 7},
}

type encodeKey struct {
	name string
	mode AddressingMode
}

// encodeTable is the inverse of instructionTable, restricted to named
// entries: the 56 documented mnemonics plus the six "NOP abs,X" encodings,
// for which ("NOP", ABX) maps to the last of them, 0xFC. Entries named "???"
// are not assignable by the assembler. Built once at package init.
var encodeTable = func() map[encodeKey]byte {
	m := make(map[encodeKey]byte, 151)
	for opcode, entry := range instructionTable {
		if entry.Name == "???" {
			continue
		}
		m[encodeKey{entry.Name, entry.Mode}] = byte(opcode)
	}
	return m
}()

// Encode looks up the opcode byte for a documented mnemonic+addressing-mode
// pair, for use by an assembler. ok is false if that combination is not a
// real instruction encoding.
func Encode(name string, mode AddressingMode) (opcode byte, ok bool) {
	opcode, ok = encodeTable[encodeKey{name, mode}]
	return opcode, ok
}
