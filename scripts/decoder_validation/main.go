// Validate the system register path - every table key must survive an
// MRS encode/decode round trip, and resolving must not allocate.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sarchlab/hexnight/insts"
	"github.com/sarchlab/hexnight/sysreg"
)

func main() {
	decoder := insts.NewDecoder()
	table := sysreg.Default()

	// Round trip: key -> MRS x0 word -> decoded fields -> key -> name
	failures := 0
	table.Each(func(k sysreg.Key, name string) bool {
		word := 0xD5200000 | uint32(k)<<5
		inst := decoder.Decode(word)
		if inst.Op != insts.OpMRS || inst.SysReg() != k {
			fmt.Printf("  0x%04x %s: decoded as %s key 0x%04x\n", uint16(k), name, inst.Op, uint16(inst.SysReg()))
			failures++
			return true
		}
		if got, ok := table.Lookup(inst.SysReg()); !ok || got != name {
			fmt.Printf("  0x%04x %s: resolved to %q\n", uint16(k), name, got)
			failures++
		}
		return true
	})

	keys := table.Keys()

	// Warm up
	for _, k := range keys {
		table.Lookup(k)
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 1000

	for i := 0; i < iterations; i++ {
		for _, k := range keys {
			f := k.Fields()
			table.Resolve(f.Op0, f.Op1, f.CRn, f.CRm, f.Op2)
		}
		table.Lookup(0xff00)
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	total := iterations * (len(keys) + 1)
	allocations := m2.Mallocs - m1.Mallocs

	fmt.Printf("System Register Resolution Results:\n")
	fmt.Printf("===================================\n")
	fmt.Printf("Table keys: %d (duplicates: %d)\n", table.Len(), len(table.Duplicates()))
	fmt.Printf("Round-trip failures: %d\n", failures)
	fmt.Printf("Total lookups: %d\n", total)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Lookups per second: %.0f\n", float64(total)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)

	if failures > 0 {
		fmt.Printf("\nFAILED: %d keys did not round-trip\n", failures)
		os.Exit(1)
	}
	if allocations == 0 {
		fmt.Printf("\nSUCCESS: zero allocations on the lookup path\n")
	} else {
		fmt.Printf("\nWARNING: lookups allocated\n")
	}
}
