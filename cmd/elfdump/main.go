// main.go - ELF header decoder entry point
//
// Thin external collaborator per spec.md §1: prints the decoded ELF
// header and first program header entry. Presentation only; all
// decoding lives in internal/elfhdr.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThreadedStream/yavm/internal/elfhdr"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "elfdump <path>",
		Short: "Decode an ELF header, program header and section header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("elfdump: %w", err)
	}
	defer f.Close()

	res, err := elfhdr.Parse(f)
	if err != nil {
		return fmt.Errorf("elfdump: %w", err)
	}

	printHeader(res.Header)
	printProgramHeader(res.ProgramHeaderEntry)
	return nil
}

func printHeader(h elfhdr.Header) {
	class := 32
	if h.Bits64 {
		class = 64
	}
	endian := "big-endian"
	if h.LittleEndian {
		endian = "little-endian"
	}

	fmt.Printf("ELF class:        %d-bit\n", class)
	fmt.Printf("Data encoding:    %s\n", endian)
	fmt.Printf("OS/ABI:           %s\n", h.ABIOS)
	fmt.Printf("ABI version:      %d\n", h.ABIVersion)
	fmt.Printf("Type:             %s\n", h.Type)
	fmt.Printf("Machine:          %s\n", h.ISA)
	fmt.Printf("Entry point:      0x%X\n", h.EntryPoint)
	fmt.Printf("Program headers:  offset=0x%X count=%d size=%d\n",
		h.ProgramHeaderOffset, h.ProgramHeaderCount, h.ProgramHeaderEntrySize)
	fmt.Printf("Section headers:  offset=0x%X count=%d size=%d strndx=%d\n",
		h.SectionHeaderOffset, h.SectionHeaderCount, h.SectionHeaderEntrySize, h.SectionHeaderStrIndex)
	fmt.Printf("Flags:            0x%X\n", h.Flags)
}

func printProgramHeader(e elfhdr.ProgramHeaderEntry) {
	fmt.Printf("\nFirst program header entry:\n")
	fmt.Printf("  Type:       %s\n", e.Type)
	fmt.Printf("  Flags:      0x%X\n", e.Flags)
	fmt.Printf("  Offset:     0x%X\n", e.Offset)
	fmt.Printf("  VAddr:      0x%X\n", e.VAddr)
	fmt.Printf("  PAddr:      0x%X\n", e.PAddr)
	fmt.Printf("  File size:  0x%X\n", e.FileSize)
	fmt.Printf("  Mem size:   0x%X\n", e.MemSize)
	fmt.Printf("  Align:      0x%X\n", e.Align)
}
