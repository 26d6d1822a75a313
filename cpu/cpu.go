// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.
package cpu

import (
	"gone6502/internal/obslog"
	"gone6502/mask"
	"gone6502/mem"
)

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// Flags holds the eight status bits that make up the P register, unpacked
// into named booleans for readability.
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Negative  bool // bit 7
	Overflow  bool // bit 6
	Unused    bool // bit 5; canonically 1
	B         bool // bit 4; BRK/PHP push it as 1 without setting it here; PLP loads it from the stack
	Decimal   bool // bit 3; inherited from 6502, unused by this core (NES variant)
	Interrupt bool // bit 2; disables IRQ when set
	Zero      bool // bit 1
	Carry     bool // bit 0
}

// Cpu has no memory of its own (aside from a handful of small registers).
// Instead, the Cpu interfaces with a Bus that provides memory.
type Cpu struct {
	Bus *mem.Bus

	A  byte // Accumulator
	X  byte
	Y  byte
	SP byte // Stack pointer; stack lives at 0x0100 + SP

	// ProgramCounter is a 2-byte (word) memory address that increments
	// (almost) continuously. The byte located at this address should
	// provide the Cpu with an Opcode that specifies the next instruction
	// to execute.
	ProgramCounter uint16

	Flags Flags

	Fetched    byte   // last operand byte latched by fetch()
	AbsAddress uint16 // last effective address resolved by the addressing-mode decoder
	RelAddress uint16 // last sign-extended relative offset, for branch instructions

	Opcode byte // opcode currently being executed
	Cycles byte // clock ticks remaining for the current instruction
}

// New returns a Cpu in an indeterminate architectural state. Reset must be
// called (after AttachBus) before the first Clock call.
func New() *Cpu {
	return &Cpu{}
}

// AttachBus binds the memory collaborator. Every Read/Write reaches this
// Bus; calling any memory-accessing method before AttachBus is a
// precondition violation.
func (c *Cpu) AttachBus(b *mem.Bus) {
	c.Bus = b
}

// Read reads one byte from the given addr via the Bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr, false)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// Status packs Flags into a single byte: N V U B D I Z C (bit 7 down to 0).
func (c *Cpu) Status() byte {
	var p byte
	if c.Flags.Negative {
		p = mask.Set(p, mask.I1, 0x80)
	}
	if c.Flags.Overflow {
		p = mask.Set(p, mask.I2, 0x80)
	}
	if c.Flags.Unused {
		p = mask.Set(p, mask.I3, 0x80)
	}
	if c.Flags.B {
		p = mask.Set(p, mask.I4, 0x80)
	}
	if c.Flags.Decimal {
		p = mask.Set(p, mask.I5, 0x80)
	}
	if c.Flags.Interrupt {
		p = mask.Set(p, mask.I6, 0x80)
	}
	if c.Flags.Zero {
		p = mask.Set(p, mask.I7, 0x80)
	}
	if c.Flags.Carry {
		p = mask.Set(p, mask.I8, 0x80)
	}
	return p
}

// statusForPush returns the byte that a stack-pushing operation (BRK, PHP,
// IRQ, NMI) writes: Status() with bit 5 (U) always forced to 1 and bit 4
// (B) set to breakBit, regardless of the live Flags.Unused/Flags.B values.
// Any live-flag mutation the operation itself performs (PHP clears both
// afterward; IRQ/NMI set Unused permanently) happens separately at the
// call site.
func (c *Cpu) statusForPush(breakBit bool) byte {
	p := c.Status()
	p &^= 0x30
	p |= 0x20
	if breakBit {
		p |= 0x10
	}
	return p
}

// SetStatus unpacks p into Flags.
func (c *Cpu) SetStatus(p byte) {
	c.Flags.Negative = mask.IsSet(p, mask.I1)
	c.Flags.Overflow = mask.IsSet(p, mask.I2)
	c.Flags.Unused = mask.IsSet(p, mask.I3)
	c.Flags.B = mask.IsSet(p, mask.I4)
	c.Flags.Decimal = mask.IsSet(p, mask.I5)
	c.Flags.Interrupt = mask.IsSet(p, mask.I6)
	c.Flags.Zero = mask.IsSet(p, mask.I7)
	c.Flags.Carry = mask.IsSet(p, mask.I8)
}

// push writes data to the stack (page 1) and decrements SP, wrapping within
// the page.
func (c *Cpu) push(data byte) {
	c.Write(0x0100|uint16(c.SP), data)
	c.SP--
}

// pop increments SP (wrapping within the page) and reads the byte beneath.
func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

// fetch reads Fetched from AbsAddress unless the current mode is IMP, in
// which case Fetched was already preloaded from A by the IMP decoder.
func (c *Cpu) fetch() byte {
	if instructionTable[c.Opcode].Mode != IMP {
		c.Fetched = c.Read(c.AbsAddress)
	}
	return c.Fetched
}

// LoadProgram is a debugging/testing convenience: it writes program directly
// into the Bus at addr. It is not part of the Cpu/Bus contract.
func (c *Cpu) LoadProgram(program []byte, addr uint16) {
	c.Bus.Load(program, addr)
	obslog.Trace("loaded %d bytes at $%04X", len(program), addr)
}

// Clock advances one bus cycle. When Cycles is 0, the entire next
// instruction is performed atomically (fetch opcode, decode operand
// address, execute operation, tally cycles); the resulting cost is then
// drained one tick per subsequent Clock call. Instruction retirement is
// observable when Cycles returns to 0 after a preceding non-zero value.
func (c *Cpu) Clock() {
	if c.Cycles == 0 {
		c.Opcode = c.Read(c.ProgramCounter)
		c.ProgramCounter++

		entry := instructionTable[c.Opcode]
		c.Cycles = entry.Cycles

		c1 := addressingModeFuncs[entry.Mode](c)
		c2 := entry.Op(c)

		c.Cycles += c1 & c2

		c.Flags.Unused = true

		c.Cycles--
		return
	}
	c.Cycles--
}

// Reset re-initializes architectural state from the reset vector
// (0xFFFC/0xFFFD) and burns 8 cycles.
func (c *Cpu) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD

	c.Flags = Flags{Unused: true}

	c.AbsAddress = 0xFFFC
	lo := uint16(c.Read(c.AbsAddress))
	hi := uint16(c.Read(c.AbsAddress + 1))
	c.ProgramCounter = hi<<8 | lo

	c.RelAddress = 0
	c.AbsAddress = 0
	c.Fetched = 0

	c.Cycles = 8
	obslog.Trace("reset: pc=$%04X", c.ProgramCounter)
}

// IRQ requests a maskable interrupt. Honored only if the Interrupt flag is
// clear; otherwise it is silently dropped and architectural state is
// unchanged.
func (c *Cpu) IRQ() {
	if c.Flags.Interrupt {
		obslog.Trace("irq dropped: interrupt disable set, pc=$%04X", c.ProgramCounter)
		return
	}

	c.push(byte(c.ProgramCounter >> 8))
	c.push(byte(c.ProgramCounter))
	c.push(c.statusForPush(false))
	c.Flags.Unused = true
	c.Flags.Interrupt = true

	c.AbsAddress = 0xFFFE
	lo := uint16(c.Read(c.AbsAddress))
	hi := uint16(c.Read(c.AbsAddress + 1))
	c.ProgramCounter = hi<<8 | lo

	c.Cycles = 7
	obslog.Trace("irq serviced: pc=$%04X", c.ProgramCounter)
}

// NMI requests a non-maskable interrupt. Unconditional; cannot be masked by
// the Interrupt flag.
func (c *Cpu) NMI() {
	c.push(byte(c.ProgramCounter >> 8))
	c.push(byte(c.ProgramCounter))
	c.push(c.statusForPush(false))
	c.Flags.Unused = true
	c.Flags.Interrupt = true

	c.AbsAddress = 0xFFFA
	lo := uint16(c.Read(c.AbsAddress))
	hi := uint16(c.Read(c.AbsAddress + 1))
	c.ProgramCounter = hi<<8 | lo

	c.Cycles = 8
	obslog.Trace("nmi serviced: pc=$%04X", c.ProgramCounter)
}
