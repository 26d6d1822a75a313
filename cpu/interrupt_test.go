package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/mem"
)

func TestIRQMaskedWhenInterruptFlagSet(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.Flags.Interrupt = true
	c.Cycles = 0
	pc := c.ProgramCounter
	sp := c.SP

	c.IRQ()

	assert.Equal(t, pc, c.ProgramCounter, "IRQ must be dropped while I is set")
	assert.Equal(t, sp, c.SP)
	assert.Equal(t, byte(0), c.Cycles, "a dropped IRQ must not charge any cycles")
}

func TestIRQHonoredWhenInterruptFlagClear(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.Flags.Interrupt = false
	c.Bus.FakeRam[0xFFFE] = 0x00
	c.Bus.FakeRam[0xFFFF] = 0x90
	c.ProgramCounter = 0x1234
	sp := c.SP

	c.IRQ()

	assert.Equal(t, uint16(0x9000), c.ProgramCounter)
	assert.Equal(t, byte(7), c.Cycles)
	assert.True(t, c.Flags.Interrupt)
	assert.True(t, c.Flags.Unused)
	assert.Equal(t, sp-3, c.SP)

	// verify what was pushed: status, then PC lo, then PC hi (pop order is
	// reverse of push order)
	pushedStatus := c.pop()
	pcLo := c.pop()
	pcHi := c.pop()
	assert.Equal(t, uint16(0x1234), uint16(pcHi)<<8|uint16(pcLo))
	assert.Equal(t, byte(0x20), pushedStatus&0x30, "U must be forced to 1, B must be 0 on IRQ push")
}

func TestNMIUnconditional(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.Flags.Interrupt = true // NMI ignores this
	c.Bus.FakeRam[0xFFFA] = 0x00
	c.Bus.FakeRam[0xFFFB] = 0xA0
	c.ProgramCounter = 0x5678

	c.NMI()

	assert.Equal(t, uint16(0xA000), c.ProgramCounter)
	assert.Equal(t, byte(8), c.Cycles)
	assert.True(t, c.Flags.Interrupt)
}

func TestBRKForcesBreakAndUnusedOnPushedByte(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.Bus.FakeRam[0xFFFE] = 0x00
	c.Bus.FakeRam[0xFFFF] = 0x80
	c.ProgramCounter = 0x0300
	c.Flags = Flags{Carry: true}

	c.BRK()

	pushedStatus := c.pop()
	c.pop() // pc lo
	c.pop() // pc hi

	assert.Equal(t, byte(0x30), pushedStatus&0x30, "BRK must push B=1, U=1")
	assert.True(t, pushedStatus&0x01 != 0, "carry must still be reflected in the pushed byte")
}

func TestPHPClearsLiveBAndUnusedAfterPush(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.Flags.B = false
	c.Flags.Unused = false

	c.PHP()

	pushedStatus := c.pop()
	assert.Equal(t, byte(0x30), pushedStatus&0x30, "PHP pushes B=1, U=1 regardless of live state")
	assert.False(t, c.Flags.B, "live B is cleared again after PHP")
	assert.False(t, c.Flags.Unused, "live U is cleared again after PHP")
}

func TestRTIRestoresWithoutForcingUnused(t *testing.T) {
	c := Cpu{Bus: mem.New()}
	c.Reset()
	c.push(0x12) // PC hi
	c.push(0x34) // PC lo
	c.push(0x00) // status with B=0, U=0

	c.RTI()

	assert.False(t, c.Flags.B)
	assert.False(t, c.Flags.Unused)
	assert.Equal(t, uint16(0x1234), c.ProgramCounter)
}
