package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/mem"
)

// step first drains any cycles still pending (such as the 8 that Reset
// charges), then runs Clock until the next instruction (Cycles transitioning
// from 0 to nonzero, then draining back to 0) fully retires. It returns the
// number of Clock calls made.
func step(c *Cpu) int {
	ticks := 0
	for c.Cycles != 0 {
		c.Clock()
		ticks++
	}
	c.Clock()
	ticks++
	for c.Cycles != 0 {
		c.Clock()
		ticks++
	}
	return ticks
}

func TestLoadProgram(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00, 0xAC, 0x00, 0x00, 0xA9,
		0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0, 0xFA, 0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA,
	} // 28 bytes

	c := Cpu{Bus: mem.New()}
	c.LoadProgram(program, 0x8000)
	assert.Equal(t, uint8(0xa2), c.Bus.FakeRam[0x8000])
	assert.Equal(t, uint8(0x0a), c.Bus.FakeRam[0x8001])
	assert.Equal(t, uint8(0x8e), c.Bus.FakeRam[0x8002])
	assert.Equal(t, uint8(0xea), c.Bus.FakeRam[0x801b])
	assert.Equal(t, uint8(0), c.Bus.FakeRam[0x801c])

	assert.Equal(t, "LDX", instructionTable[c.Bus.FakeRam[0x8000]].Name)
	assert.Equal(t, "ASL", instructionTable[c.Bus.FakeRam[0x8001]].Name)
	assert.Equal(t, "STX", instructionTable[c.Bus.FakeRam[0x8002]].Name)
	assert.Equal(t, "NOP", instructionTable[c.Bus.FakeRam[0x801b]].Name)
	assert.Equal(t, "BRK", instructionTable[c.Bus.FakeRam[0x801c]].Name)
}

// TestMultiplyByRepeatedAddition walks the same 10*3 program the teacher
// ported from OLC's demo, through the atomic-execute/drain Clock model
// instead of a one-shot-per-instruction tick.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00, 0xAC, 0x00, 0x00, 0xA9,
		0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0, 0xFA, 0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA,
	}

	c := Cpu{Bus: mem.New()}
	offset := uint16(0x8000)
	c.LoadProgram(program, offset)
	c.Bus.FakeRam[0xfffc] = 0x00
	c.Bus.FakeRam[0xfffd] = 0x80
	c.Reset()
	assert.Equal(t, offset, c.ProgramCounter)

	assert.Equal(t, "LDX", instructionTable[c.Bus.FakeRam[c.ProgramCounter]].Name)

	for _, want := range []struct {
		A, X, Y  uint8
		InstName string
	}{
		{A: 0, X: 0xa, Y: 0, InstName: "LDX"},
		{A: 0, X: 0xa, Y: 0, InstName: "STX"},
		{A: 0, X: 3, Y: 0, InstName: "LDX"},
		{A: 0, X: 3, Y: 0, InstName: "STX"},
		{A: 0, X: 3, Y: 0xa, InstName: "LDY"},
		{A: 0, X: 3, Y: 0xa, InstName: "LDA"},
		{A: 0, X: 3, Y: 0xa, InstName: "CLC"},

		{A: 3, X: 3, Y: 0xa, InstName: "ADC"},
		{A: 3, X: 3, Y: 9, InstName: "DEY"},
		{A: 3, X: 3, Y: 9, InstName: "BNE"},
	} {
		nextPC := c.ProgramCounter
		gotName := instructionTable[c.Bus.FakeRam[nextPC]].Name
		step(&c)
		assert.Equal(t, want.InstName, gotName)
		assert.Equal(t, want.A, c.A, "A after %s", gotName)
		assert.Equal(t, want.X, c.X, "X after %s", gotName)
		assert.Equal(t, want.Y, c.Y, "Y after %s", gotName)
	}

	// run the remaining BNE-gated loop to completion (Y counts down to 0);
	// the last iteration's ADC/DEY/BNE falls through straight into STA
	for c.Y != 0 {
		step(&c)
		step(&c)
		step(&c)
	}
	step(&c) // STA
	assert.Equal(t, uint8(30), c.A)

	assert.Equal(t, uint8(10), c.Bus.FakeRam[0])
	assert.Equal(t, uint8(3), c.Bus.FakeRam[1])
	assert.Equal(t, uint8(30), c.Bus.FakeRam[2])
}

// TestDeterminism covers spec property: identical program + identical
// initial state yields identical end state and cycle count.
func TestDeterminism(t *testing.T) {
	run := func() (*Cpu, int) {
		c := Cpu{Bus: mem.New()}
		c.LoadProgram([]byte{0xA9, 0x42, 0x85, 0x10, 0x00}, 0x8000) // LDA #$42; STA $10; BRK
		c.Bus.FakeRam[0xFFFC] = 0x00
		c.Bus.FakeRam[0xFFFD] = 0x80
		c.Reset()
		ticks := 0
		for i := 0; i < 3; i++ {
			ticks += step(&c)
		}
		return &c, ticks
	}
	c1, t1 := run()
	c2, t2 := run()
	assert.Equal(t, c1.A, c2.A)
	assert.Equal(t, c1.ProgramCounter, c2.ProgramCounter)
	assert.Equal(t, c1.Flags, c2.Flags)
	assert.Equal(t, t1, t2)
}

// TestPHAPLAStackWrap covers spec property: 256 PHA followed by 256 PLA
// round-trips SP back to its starting value (stack page wraps).
func TestPHAPLAStackWrap(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	startSP := c.SP
	c.A = 0x55

	for i := 0; i < 256; i++ {
		c.push(c.A)
	}
	assert.Equal(t, startSP, c.SP)

	c.A = 0
	for i := 0; i < 256; i++ {
		c.A = c.pop()
	}
	assert.Equal(t, startSP, c.SP)
	assert.Equal(t, uint8(0x55), c.A)
}

// TestIndirectJMPPageWrapBug covers the canonical 6502 JMP ($xxFF) bug: the
// high byte of the target is fetched from the start of the same page, not
// the next one.
func TestIndirectJMPPageWrapBug(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Bus.FakeRam[0x30FF] = 0x80
	c.Bus.FakeRam[0x3000] = 0x50 // wrap: high byte comes from 0x3000, not 0x3100
	c.Bus.FakeRam[0x3100] = 0x12 // would be wrong answer if bug were absent

	c.ProgramCounter = 0x0000
	c.Bus.FakeRam[0x0000] = 0xFF // pointer $30FF, little-endian
	c.Bus.FakeRam[0x0001] = 0x30
	c.addrIND()

	assert.Equal(t, uint16(0x5080), c.AbsAddress)
}

// TestResetIdempotence covers spec property: Reset always yields the same
// architectural state regardless of what preceded it.
func TestResetIdempotence(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Bus.FakeRam[0xFFFC] = 0x34
	c.Bus.FakeRam[0xFFFD] = 0x12

	c.A, c.X, c.Y, c.SP = 1, 2, 3, 4
	c.Flags = Flags{Carry: true, Zero: true, Negative: true}
	c.Reset()
	first := c

	c.A, c.X, c.Y, c.SP = 9, 8, 7, 6
	c.Flags = Flags{Decimal: true}
	c.Reset()
	second := c

	assert.Equal(t, first.A, second.A)
	assert.Equal(t, first.X, second.X)
	assert.Equal(t, first.Y, second.Y)
	assert.Equal(t, first.SP, second.SP)
	assert.Equal(t, first.Flags, second.Flags)
	assert.Equal(t, first.ProgramCounter, second.ProgramCounter)
	assert.Equal(t, uint16(0x1234), second.ProgramCounter)
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	cases := []struct {
		value            byte
		wantZ, wantN     bool
	}{
		{0x00, true, false},
		{0x7F, false, false},
		{0x80, false, true},
	}
	for _, tc := range cases {
		c := Cpu{Bus: mem.New()}
		c.Reset()
		c.LoadProgram([]byte{0xA9, tc.value}, c.ProgramCounter)
		step(&c)
		assert.Equal(t, tc.value, c.A)
		assert.Equal(t, tc.wantZ, c.Flags.Zero)
		assert.Equal(t, tc.wantN, c.Flags.Negative)
	}
}

func TestLDXDEX(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.LoadProgram([]byte{0xA2, 0x01, 0xCA}, c.ProgramCounter) // LDX #$01; DEX
	step(&c)
	assert.Equal(t, uint8(1), c.X)
	step(&c)
	assert.Equal(t, uint8(0), c.X)
	assert.True(t, c.Flags.Zero)
}

func TestCLCLDAADC(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.LoadProgram([]byte{0x18, 0xA9, 0x01, 0x69, 0x01}, c.ProgramCounter) // CLC; LDA #1; ADC #1
	step(&c)
	step(&c)
	step(&c)
	assert.Equal(t, uint8(2), c.A)
	assert.False(t, c.Flags.Carry)
}

func TestSignedOverflowADC(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	// 0x50 + 0x50 = 0xA0: two positives summing to a negative result -> V set
	c.LoadProgram([]byte{0x18, 0xA9, 0x50, 0x69, 0x50}, c.ProgramCounter)
	step(&c)
	step(&c)
	step(&c)
	assert.Equal(t, uint8(0xA0), c.A)
	assert.True(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Negative)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.LoadProgram([]byte{0xA9, 0x77, 0x48, 0xA9, 0x00, 0x68}, c.ProgramCounter) // LDA #$77; PHA; LDA #$00; PLA
	step(&c)
	step(&c)
	step(&c)
	assert.Equal(t, uint8(0), c.A)
	step(&c)
	assert.Equal(t, uint8(0x77), c.A)
}

func TestCycleBudget(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.LoadProgram([]byte{0xA9, 0x01}, c.ProgramCounter) // LDA #imm: 2 cycles
	// drain the reset cycles first
	for c.Cycles != 0 {
		c.Clock()
	}
	c.Clock()
	assert.Equal(t, byte(1), c.Cycles)
	c.Clock()
	assert.Equal(t, byte(0), c.Cycles)
}
