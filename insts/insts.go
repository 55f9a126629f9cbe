// Package insts provides ARM64 instruction definitions and decoding.
//
// This package decodes the ARM64 system instruction class, the part of
// the instruction set that reaches system registers and processor state:
//   - System register moves: MRS, MSR (register)
//   - PSTATE writes: MSR (immediate)
//   - System instructions: SYS, SYSL
//   - Hints and barriers: NOP, WFI, DSB, DMB, ISB, ...
//   - Exception generation: SVC, HVC, SMC, BRK
//
// Everything outside that class decodes to OpUnknown.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0xD5380000) // MRS X0, MIDR_EL1
//	fmt.Println(insts.Text(inst, sysreg.Default()))
package insts
