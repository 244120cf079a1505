// main.go - LC-3 virtual machine entry point
//
// Thin external collaborator per spec.md §1: parses a path and runs
// the machine to completion. Built on cobra, following the CLI shape
// of cmd/z80opt/main.go in the retrieved corpus.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThreadedStream/yavm/internal/lc3"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lc3vm <path>",
		Short: "Run an LC-3 program image",
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
		return fmt.Errorf("lc3vm: %w", err)
	}
	defer f.Close()

	term := lc3.NewRawTerminal()
	if err := term.Start(); err != nil {
		return fmt.Errorf("lc3vm: %w", err)
	}
	defer term.Stop()

	m := lc3.NewMachine(term)
	if err := lc3.LoadImage(m, f); err != nil {
		return fmt.Errorf("lc3vm: %w", err)
	}

	m.Run()
	return nil
}
