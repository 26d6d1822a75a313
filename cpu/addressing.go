package cpu

// An AddressingMode tells the Cpu where to find the operand for the current
// instruction. There are 12 modes; Accumulator is folded into IMP, since on
// this core the only consumer of the accumulator-targeting shift/rotate
// opcodes is the fetch() preload below.
//
// https://www.nesdev.org/wiki/CPU_addressing_modes
type AddressingMode int

const (
	IMP AddressingMode = iota
	IMM
	ZP0
	ZPX
	ZPY
	REL
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

// addressingModeFuncs dispatches an AddressingMode to its decoder. Each
// decoder advances ProgramCounter past its operand bytes, leaves an
// effective address in AbsAddress (REL leaves a signed offset in RelAddress
// instead), and returns a 1-bit "page-cross possible" flag. The flag is
// meaningful only to the handful of operations that are cycle-penalty
// eligible; Clock ANDs it with the operation's own eligibility bit.
var addressingModeFuncs = [...]func(*Cpu) byte{
	IMP: (*Cpu).addrIMP,
	IMM: (*Cpu).addrIMM,
	ZP0: (*Cpu).addrZP0,
	ZPX: (*Cpu).addrZPX,
	ZPY: (*Cpu).addrZPY,
	REL: (*Cpu).addrREL,
	ABS: (*Cpu).addrABS,
	ABX: (*Cpu).addrABX,
	ABY: (*Cpu).addrABY,
	IND: (*Cpu).addrIND,
	IZX: (*Cpu).addrIZX,
	IZY: (*Cpu).addrIZY,
}

// addrIMP operates directly on A; there is no memory operand.
func (c *Cpu) addrIMP() byte {
	c.Fetched = c.A
	return 0
}

// addrIMM treats the byte immediately following the opcode as the operand.
func (c *Cpu) addrIMM() byte {
	c.AbsAddress = c.ProgramCounter
	c.ProgramCounter++
	return 0
}

// addrZP0 addresses the zero page directly by the next byte.
func (c *Cpu) addrZP0() byte {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	return 0
}

// addrZPX addresses the zero page, offset by X, wrapping within the page.
func (c *Cpu) addrZPX() byte {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.X)
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	return 0
}

// addrZPY addresses the zero page, offset by Y, wrapping within the page.
func (c *Cpu) addrZPY() byte {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.Y)
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	return 0
}

// addrREL latches a sign-extended branch offset into RelAddress; the branch
// target itself is computed by the branch operation, not here.
func (c *Cpu) addrREL() byte {
	c.RelAddress = uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	if c.RelAddress&0x80 != 0 {
		c.RelAddress |= 0xFF00
	}
	return 0
}

// addrABS reads a little-endian 16-bit effective address.
func (c *Cpu) addrABS() byte {
	lo := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	hi := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	c.AbsAddress = hi<<8 | lo
	return 0
}

// addrABX is addrABS offset by X; crossing a page boundary costs an extra
// cycle on the operations that are eligible for it.
func (c *Cpu) addrABX() byte {
	lo := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	hi := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	c.AbsAddress = hi<<8 | lo
	c.AbsAddress += uint16(c.X)

	if c.AbsAddress&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// addrABY is addrABS offset by Y.
func (c *Cpu) addrABY() byte {
	lo := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	hi := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	c.AbsAddress = hi<<8 | lo
	c.AbsAddress += uint16(c.Y)

	if c.AbsAddress&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// addrIND is JMP's indirect mode. It reproduces the real 6502's page-wrap
// bug: if the low byte of the pointer is 0xFF, the high byte of the target
// is fetched from the start of the same page rather than the next page.
func (c *Cpu) addrIND() byte {
	ptrLo := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	ptrHi := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	ptr := ptrHi<<8 | ptrLo

	var hi uint16
	if ptrLo == 0x00FF {
		hi = uint16(c.Read(ptr & 0xFF00))
	} else {
		hi = uint16(c.Read(ptr + 1))
	}
	lo := uint16(c.Read(ptr))

	c.AbsAddress = hi<<8 | lo
	return 0
}

// addrIZX reads a zero-page pointer offset by X (wrapping within the zero
// page before either byte of the pointer is read).
func (c *Cpu) addrIZX() byte {
	t := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	lo := uint16(c.Read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.Read((t + uint16(c.X) + 1) & 0x00FF))

	c.AbsAddress = hi<<8 | lo
	return 0
}

// addrIZY reads a zero-page pointer, then offsets the resulting address by
// Y (the addition happens after dereferencing, unlike IZX).
func (c *Cpu) addrIZY() byte {
	t := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	lo := uint16(c.Read(t & 0x00FF))
	hi := uint16(c.Read((t + 1) & 0x00FF))

	c.AbsAddress = hi<<8 | lo
	c.AbsAddress += uint16(c.Y)

	if c.AbsAddress&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}
