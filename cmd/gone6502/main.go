// Command gone6502 loads a 6502 binary (or assembles one from source) onto
// a Bus, drives the Cpu's Clock loop, and prints the resulting architectural
// state or a disassembly listing.
//
// Grounded on master-g-childhood's pure6502 CLI (PlainBus wiring, Reset
// vector setup, step-to-completion Clock loop) reworked onto cobra/pflag
// subcommands instead of a termui event loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gone6502/asm"
	"gone6502/cpu"
	"gone6502/internal/obslog"
	"gone6502/mem"
)

var (
	loadAddr    uint16
	resetVector uint16
	maxSteps    int
)

func main() {
	defer obslog.Flush()
	if err := rootCmd().Execute(); err != nil {
		obslog.Error("%v", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gone6502",
		Short: "A cycle-accurate MOS 6502 emulator core",
	}
	root.PersistentFlags().Uint16Var(&loadAddr, "load-addr", 0x8000, "address to load the program at")
	root.PersistentFlags().Uint16Var(&resetVector, "reset-vector", 0, "override the reset vector (0xFFFC/0xFFFD); 0 means load-addr")

	// glog registers its -v/-logtostderr/etc flags on the stdlib flag
	// package; fold them into pflag so `-v=1` reaches cobra's parser too.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(runCmd(), asmCmd(), disasmCmd(), debugCmd())
	return root
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <program.bin>",
		Short: "load a binary and run it to completion (BRK or --max-steps)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			vector := loadAddr
			if resetVector != 0 {
				vector = resetVector
			}

			bus := mem.New()
			c := cpu.New()
			c.AttachBus(bus)
			c.LoadProgram(program, loadAddr)
			bus.Write(0xFFFC, byte(vector))
			bus.Write(0xFFFD, byte(vector>>8))
			c.Reset()
			for c.Cycles != 0 { // drain the reset cycles
				c.Clock()
			}

			steps := 0
			for steps < maxSteps {
				if c.Bus.Read(c.ProgramCounter, true) == 0x00 {
					break // BRK
				}
				c.Clock()
				for c.Cycles != 0 {
					c.Clock()
				}
				steps++
			}

			printState(c)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 100000, "instruction limit, to guard against runaway loops")
	return cmd
}

func asmCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "asm <source.s>",
		Short: "assemble a source file into a raw binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			program, err := asm.Assemble(string(src))
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".bin"
			}
			obslog.Info("assembled %d bytes to %s", len(program), out)
			return os.WriteFile(out, program, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: <input>.bin)")
	return cmd
}

func disasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <program.bin>",
		Short: "disassemble a binary starting at --load-addr",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bus := mem.New()
			bus.Load(program, loadAddr)

			addr := loadAddr
			end := loadAddr + uint16(len(program))
			for addr < end {
				text, next := cpu.Disassemble(bus, addr)
				fmt.Println(text)
				addr = next
			}
			return nil
		},
	}
	return cmd
}

func debugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <program.bin>",
		Short: "load a binary and step through it in the interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c := cpu.New()
			c.AttachBus(mem.New())
			c.Debug(program, loadAddr)
			return nil
		},
	}
	return cmd
}

func printState(c *cpu.Cpu) {
	fmt.Printf("PC: $%04X  SP: $%02X\n", c.ProgramCounter, c.SP)
	fmt.Printf("A: $%02X  X: $%02X  Y: $%02X\n", c.A, c.X, c.Y)
	fmt.Printf("Flags: N=%v V=%v U=%v B=%v D=%v I=%v Z=%v C=%v\n",
		c.Flags.Negative, c.Flags.Overflow, c.Flags.Unused, c.Flags.B,
		c.Flags.Decimal, c.Flags.Interrupt, c.Flags.Zero, c.Flags.Carry)
}
