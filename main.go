// Package main provides the entry point for hexnight.
// hexnight names ARM64 system registers in decompiled code.
//
// For the full CLI, use: go run ./cmd/hexnight
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("hexnight - ARM64 system register annotator")
	fmt.Println("")
	fmt.Println("Usage: hexnight <command> [flags]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  annotate   Print pseudo-code with system registers named")
	fmt.Println("  disasm     List system instructions with registers named")
	fmt.Println("  resolve    Look up one system register")
	fmt.Println("  table      Dump the system register table")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/hexnight' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/hexnight' instead.")
	}
}
