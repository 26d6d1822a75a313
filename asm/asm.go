// Package asm implements a small two-pass assembler for the subset of 6502
// syntax this core documents: the twelve addressing-mode operand forms and
// bare labels for branches and jumps. It exists to give cpu's dispatch table
// a readable way to produce test programs and is used by the CLI's asm
// subcommand.
//
// Grounded on jmchacon-6502's hand_asm (line-oriented scanning, one error
// per malformed line) generalized from raw hex bytes to real mnemonics, and
// on cpu.Encode for turning a (mnemonic, addressing mode) pair into a byte.
package asm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gone6502/cpu"
	"gone6502/internal/obslog"
)

var branchMnemonics = map[string]bool{
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

var (
	reImmediate = regexp.MustCompile(`^#\$([0-9A-Fa-f]{1,2})$`)
	reIndirect  = regexp.MustCompile(`^\(\$([0-9A-Fa-f]{4})\)$`)
	reIndirectX = regexp.MustCompile(`^\(\$([0-9A-Fa-f]{1,2}),[Xx]\)$`)
	reIndirectY = regexp.MustCompile(`^\(\$([0-9A-Fa-f]{1,2})\),[Yy]$`)
	reAbsoluteX = regexp.MustCompile(`^\$([0-9A-Fa-f]{3,4}),[Xx]$`)
	reAbsoluteY = regexp.MustCompile(`^\$([0-9A-Fa-f]{3,4}),[Yy]$`)
	reZeroPageX = regexp.MustCompile(`^\$([0-9A-Fa-f]{1,2}),[Xx]$`)
	reZeroPageY = regexp.MustCompile(`^\$([0-9A-Fa-f]{1,2}),[Yy]$`)
	reAbsolute  = regexp.MustCompile(`^\$([0-9A-Fa-f]{3,4})$`)
	reZeroPage  = regexp.MustCompile(`^\$([0-9A-Fa-f]{1,2})$`)
	reLabel     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reLabelDecl = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):\s*(.*)$`)
)

// statement is one parsed instruction line, size already known from its
// operand syntax; value is resolved in the second pass.
type statement struct {
	lineNo   int
	addr     uint16
	mnemonic string
	mode     cpu.AddressingMode
	operand  string // raw operand text, re-parsed in pass 2 for its value
	size     byte
}

// Assemble turns 6502 assembly source into a byte stream, starting at
// address 0. It runs two passes: the first sizes every instruction and
// records label addresses; the second resolves operands (including forward
// label references) and emits bytes.
func Assemble(src string) ([]byte, error) {
	labels := map[string]uint16{}
	var statements []statement

	addr := uint16(0)
	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := reLabelDecl.FindStringSubmatch(line); m != nil {
			name, rest := m[1], strings.TrimSpace(m[2])
			if _, dup := labels[name]; dup {
				return nil, errors.Errorf("line %d: label %q redefined", lineNo, name)
			}
			labels[name] = addr
			if rest == "" {
				continue
			}
			line = rest
		}

		mnemonic, operand := splitInstruction(line)
		mnemonic = strings.ToUpper(mnemonic)

		mode, err := classify(mnemonic, operand)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}

		size := modeSize(mode)
		statements = append(statements, statement{
			lineNo:   lineNo,
			addr:     addr,
			mnemonic: mnemonic,
			mode:     mode,
			operand:  operand,
			size:     size,
		})
		addr += uint16(size)
	}

	out := make([]byte, 0, addr)
	for _, s := range statements {
		opcode, ok := cpu.Encode(s.mnemonic, s.mode)
		if !ok {
			obslog.Warn("line %d: %s has no encoding for addressing mode %d", s.lineNo, s.mnemonic, s.mode)
			return nil, errors.Errorf("line %d: %s has no encoding for this addressing mode", s.lineNo, s.mnemonic)
		}
		out = append(out, opcode)

		switch s.size {
		case 1:
			// no operand bytes
		case 2:
			v, err := resolveByteOrRelative(s, labels)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", s.lineNo)
			}
			out = append(out, v)
		case 3:
			v, err := resolveWord(s.operand, labels)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", s.lineNo)
			}
			out = append(out, byte(v), byte(v>>8))
		}
	}
	return out, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

func splitInstruction(line string) (mnemonic, operand string) {
	fields := strings.SplitN(line, " ", 2)
	mnemonic = fields[0]
	if len(fields) == 2 {
		operand = strings.TrimSpace(fields[1])
	}
	return mnemonic, operand
}

func modeSize(mode cpu.AddressingMode) byte {
	switch mode {
	case cpu.IMP:
		return 1
	case cpu.IMM, cpu.ZP0, cpu.ZPX, cpu.ZPY, cpu.IZX, cpu.IZY, cpu.REL:
		return 2
	default: // ABS, ABX, ABY, IND
		return 3
	}
}

// classify determines the addressing mode from operand syntax alone; it
// never needs a resolved label value, since every mode's byte width is
// fixed by its syntax shape.
func classify(mnemonic, operand string) (cpu.AddressingMode, error) {
	switch {
	case operand == "" || operand == "A":
		return cpu.IMP, nil
	case reImmediate.MatchString(operand):
		return cpu.IMM, nil
	case reIndirectX.MatchString(operand):
		return cpu.IZX, nil
	case reIndirectY.MatchString(operand):
		return cpu.IZY, nil
	case reIndirect.MatchString(operand):
		return cpu.IND, nil
	case reAbsoluteX.MatchString(operand):
		return cpu.ABX, nil
	case reAbsoluteY.MatchString(operand):
		return cpu.ABY, nil
	case reZeroPageX.MatchString(operand):
		return cpu.ZPX, nil
	case reZeroPageY.MatchString(operand):
		return cpu.ZPY, nil
	case reAbsolute.MatchString(operand):
		return cpu.ABS, nil
	case reZeroPage.MatchString(operand):
		return cpu.ZP0, nil
	case reLabel.MatchString(operand):
		if branchMnemonics[mnemonic] {
			return cpu.REL, nil
		}
		return cpu.ABS, nil
	default:
		return 0, errors.Errorf("unrecognized operand %q", operand)
	}
}

// resolveByteOrRelative resolves the single operand byte for a 2-byte
// instruction: immediate/zero-page operands parse directly, a REL operand
// is a label resolved to a signed displacement from the byte after it.
func resolveByteOrRelative(s statement, labels map[string]uint16) (byte, error) {
	if s.mode == cpu.REL {
		target, ok := labels[s.operand]
		if !ok {
			return 0, errors.Errorf("undefined label %q", s.operand)
		}
		next := s.addr + uint16(s.size)
		offset := int(int16(target) - int16(next))
		if offset < -128 || offset > 127 {
			return 0, errors.Errorf("branch target %q out of range (%d)", s.operand, offset)
		}
		return byte(int8(offset)), nil
	}

	hex := stripOperandPrefix(s.operand)
	v, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "bad operand %q", s.operand)
	}
	return byte(v), nil
}

// resolveWord resolves a 2-byte little-endian operand: a $nnnn literal or a
// label (forward references are fine, since pass 1 already recorded every
// label's address before pass 2 runs).
func resolveWord(operand string, labels map[string]uint16) (uint16, error) {
	if reLabel.MatchString(operand) {
		v, ok := labels[operand]
		if !ok {
			return 0, errors.Errorf("undefined label %q", operand)
		}
		return v, nil
	}

	hex := stripOperandPrefix(operand)
	v, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "bad operand %q", operand)
	}
	return uint16(v), nil
}

// stripOperandPrefix strips the #$, $, (, ),X, ),Y, ,X, ,Y decoration around
// a hex literal, leaving just the digits.
func stripOperandPrefix(operand string) string {
	s := operand
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimPrefix(s, "$")
	if i := strings.IndexAny(s, ",)"); i >= 0 {
		s = s[:i]
	}
	return s
}
