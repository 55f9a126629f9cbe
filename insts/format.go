package insts

import (
	"fmt"

	"github.com/sarchlab/hexnight/sysreg"
)

// Resolver maps a packed system-register key to a name.
type Resolver interface {
	Lookup(k sysreg.Key) (string, bool)
}

var barrierOptions = map[uint64]string{
	0b0001: "oshld",
	0b0010: "oshst",
	0b0011: "osh",
	0b0101: "nshld",
	0b0110: "nshst",
	0b0111: "nsh",
	0b1001: "ishld",
	0b1010: "ishst",
	0b1011: "ish",
	0b1101: "ld",
	0b1110: "st",
	0b1111: "sy",
}

// Text renders inst in assembler syntax. System registers known to r are
// printed by name, the rest in the generic s<op0>_<op1>_c<n>_c<m>_<op2>
// form. r may be nil.
func Text(inst *Instruction, r Resolver) string {
	switch inst.Format {
	case FormatSysReg:
		reg := sysRegName(inst.SysReg(), r)
		if inst.Op == OpMRS {
			return fmt.Sprintf("mrs %s, %s", xreg(inst.Rt), reg)
		}
		return fmt.Sprintf("msr %s, %s", reg, xreg(inst.Rt))
	case FormatPState:
		field, ok := sysreg.PStateField(inst.Op1, inst.Op2)
		if !ok {
			field = fmt.Sprintf("pstate_%d_%d", inst.Op1, inst.Op2)
		}
		return fmt.Sprintf("msr %s, #%d", field, inst.Imm)
	case FormatSys:
		return sysText(inst)
	case FormatHint:
		if inst.Op == OpHINT {
			return fmt.Sprintf("hint #%d", inst.Imm)
		}
		return inst.Op.String()
	case FormatBarrier:
		return barrierText(inst)
	case FormatException:
		return fmt.Sprintf("%s #0x%x", inst.Op, inst.Imm)
	}

	return fmt.Sprintf(".word 0x%08x", inst.Word)
}

func sysText(inst *Instruction) string {
	ops := fmt.Sprintf("#%d, c%d, c%d, #%d", inst.Op1, inst.CRn, inst.CRm, inst.Op2)
	if inst.Op == OpSYSL {
		return fmt.Sprintf("sysl %s, %s", xreg(inst.Rt), ops)
	}
	if inst.Rt == 31 {
		return "sys " + ops
	}
	return fmt.Sprintf("sys %s, %s", ops, xreg(inst.Rt))
}

func barrierText(inst *Instruction) string {
	switch inst.Op {
	case OpCLREX, OpISB:
		if inst.Imm == 0b1111 {
			return inst.Op.String()
		}
		return fmt.Sprintf("%s #%d", inst.Op, inst.Imm)
	}

	if opt, ok := barrierOptions[inst.Imm]; ok {
		return fmt.Sprintf("%s %s", inst.Op, opt)
	}
	return fmt.Sprintf("%s #%d", inst.Op, inst.Imm)
}

func sysRegName(k sysreg.Key, r Resolver) string {
	if r != nil {
		if name, ok := r.Lookup(k); ok {
			return name
		}
	}
	return k.String()
}

// xreg names a 64-bit general-purpose register; 31 is the zero register.
func xreg(n uint8) string {
	if n == 31 {
		return "xzr"
	}
	return fmt.Sprintf("x%d", n)
}
