// Package mem provides the memory Bus collaborator consumed by the cpu
// package. It owns the flat 64 KiB address space the Cpu operates on.
package mem

// A Reader is anything that can be read from like a Bus, without committing
// callers (e.g. the disassembler) to a concrete *Bus.
type Reader interface {
	Read(addr uint16, readonly bool) byte
}

// A Bus is the central object that connects the Cpu to its memory. Each Bus
// has an independent memory layout that begins at 0x0000.
//
// In the NES, there are 2 Buses. One has 64 kB, responsible for CPU, memory,
// audio and cartridge (0x0000-0xffff). The other has 8 (?) kB, responsible for
// graphics (0x2000-0x3fff?). This Bus only models the first.
type Bus struct {
	// flat RAM with no divisions or mirroring; tests, the debugger and the
	// CLI read and write it directly
	FakeRam [64 * 1024]byte // 64 kB (0xffff), zeroed on init
}

// New returns a Bus with RAM zeroed.
func New() *Bus {
	return &Bus{}
}

// Write stores data at addr. addr is taken modulo the 64 kB address space
// implicitly, since uint16 already wraps.
func (b *Bus) Write(
	addr uint16, // addresses are 2 bytes wide
	data byte,
) {
	b.FakeRam[addr] = data
}

// Read returns the byte at addr. readonly is advisory: this plain-RAM Bus
// has no side effects on read either way, but a peripheral-backed Bus may
// care (e.g. to avoid acknowledging a status register during disassembly).
func (b *Bus) Read(addr uint16, readonly bool) byte { return b.FakeRam[addr] }

// Load copies program into FakeRam starting at addr. A loader convenience
// for tests and the CLI driver; not part of the Cpu/Bus contract itself.
func (b *Bus) Load(program []byte, addr uint16) {
	copy(b.FakeRam[addr:], program)
}
