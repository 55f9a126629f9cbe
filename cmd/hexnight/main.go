// Package main provides the entry point for hexnight.
// hexnight shows ARM64 system-register operands of decompiled code by name.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
