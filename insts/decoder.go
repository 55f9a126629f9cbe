// Package insts provides ARM64 instruction definitions and decoding.
package insts

import "github.com/sarchlab/hexnight/sysreg"

// Op represents an ARM64 opcode.
type Op uint16

// ARM64 opcodes.
const (
	OpUnknown Op = iota
	OpMRS
	OpMSR
	OpMSRImm
	OpSYS
	OpSYSL
	OpHINT
	OpNOP
	OpYIELD
	OpWFE
	OpWFI
	OpSEV
	OpSEVL
	OpCLREX
	OpDSB
	OpDMB
	OpISB
	OpSVC
	OpHVC
	OpSMC
	OpBRK
)

var opNames = map[Op]string{
	OpUnknown: "unknown",
	OpMRS:     "mrs",
	OpMSR:     "msr",
	OpMSRImm:  "msr",
	OpSYS:     "sys",
	OpSYSL:    "sysl",
	OpHINT:    "hint",
	OpNOP:     "nop",
	OpYIELD:   "yield",
	OpWFE:     "wfe",
	OpWFI:     "wfi",
	OpSEV:     "sev",
	OpSEVL:    "sevl",
	OpCLREX:   "clrex",
	OpDSB:     "dsb",
	OpDMB:     "dmb",
	OpISB:     "isb",
	OpSVC:     "svc",
	OpHVC:     "hvc",
	OpSMC:     "smc",
	OpBRK:     "brk",
}

// String returns the assembler mnemonic.
func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "unknown"
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown   Format = iota
	FormatSysReg           // System register move (MRS, MSR register)
	FormatPState           // MSR (immediate) to a PSTATE field
	FormatSys              // System instruction (SYS, SYSL)
	FormatHint             // Hint instructions
	FormatBarrier          // Barriers and CLREX
	FormatException        // Exception generation
)

// Instruction represents a decoded ARM64 instruction.
type Instruction struct {
	Op     Op     // Operation code
	Format Format // Encoding format
	Word   uint32 // Raw encoding

	// System encoding fields
	Op0 uint8 // bits [20:19]
	Op1 uint8 // bits [18:16]
	CRn uint8 // bits [15:12]
	CRm uint8 // bits [11:8]
	Op2 uint8 // bits [7:5]
	Rt  uint8 // bits [4:0]

	// Imm holds the 16-bit exception immediate, the CRm immediate of
	// MSR (immediate) and barriers, or the hint number.
	Imm uint64
}

// SysReg returns the packed system-register key held in bits [20:5].
func (inst *Instruction) SysReg() sysreg.Key {
	return sysreg.Pack(inst.Op0, inst.Op1, inst.CRn, inst.CRm, inst.Op2)
}

// Decoder decodes ARM64 machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new ARM64 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit ARM64 instruction word.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{Op: OpUnknown, Format: FormatUnknown, Word: word}

	switch {
	case d.isSystem(word):
		d.decodeSystem(word, inst)
	case d.isException(word):
		d.decodeException(word, inst)
	}

	return inst
}

// isSystem checks for the system instruction class.
// bits [31:22] == 0b1101010100
func (d *Decoder) isSystem(word uint32) bool {
	return word>>22 == 0b1101010100
}

// decodeSystem splits the system class on L and op0.
// Format: 1101010100 | L | op0 | op1 | CRn | CRm | op2 | Rt
func (d *Decoder) decodeSystem(word uint32, inst *Instruction) {
	l := (word >> 21) & 0x1 // bit 21: 1=read

	inst.Op0 = uint8((word >> 19) & 0x3) // bits [20:19]
	inst.Op1 = uint8((word >> 16) & 0x7) // bits [18:16]
	inst.CRn = uint8((word >> 12) & 0xF) // bits [15:12]
	inst.CRm = uint8((word >> 8) & 0xF)  // bits [11:8]
	inst.Op2 = uint8((word >> 5) & 0x7)  // bits [7:5]
	inst.Rt = uint8(word & 0x1F)         // bits [4:0]

	switch {
	case inst.Op0 >= 2:
		inst.Format = FormatSysReg
		if l == 1 {
			inst.Op = OpMRS
		} else {
			inst.Op = OpMSR
		}
	case inst.Op0 == 1:
		inst.Format = FormatSys
		if l == 1 {
			inst.Op = OpSYSL
		} else {
			inst.Op = OpSYS
		}
	case l == 0 && inst.Rt == 0b11111:
		d.decodeSystemOp0(inst)
	}
}

// decodeSystemOp0 decodes the op0 == 0 space: hints, barriers and
// MSR (immediate). All of them have L == 0 and Rt == 0b11111.
func (d *Decoder) decodeSystemOp0(inst *Instruction) {
	switch inst.CRn {
	case 0b0010:
		if inst.Op1 != 0b011 {
			return
		}
		d.decodeHint(inst)
	case 0b0011:
		if inst.Op1 != 0b011 {
			return
		}
		d.decodeBarrier(inst)
	case 0b0100:
		inst.Format = FormatPState
		inst.Op = OpMSRImm
		inst.Imm = uint64(inst.CRm)
	}
}

// decodeHint decodes HINT #imm, where imm = CRm:op2.
func (d *Decoder) decodeHint(inst *Instruction) {
	inst.Format = FormatHint
	inst.Imm = uint64(inst.CRm)<<3 | uint64(inst.Op2)

	switch inst.Imm {
	case 0:
		inst.Op = OpNOP
	case 1:
		inst.Op = OpYIELD
	case 2:
		inst.Op = OpWFE
	case 3:
		inst.Op = OpWFI
	case 4:
		inst.Op = OpSEV
	case 5:
		inst.Op = OpSEVL
	default:
		inst.Op = OpHINT
	}
}

// decodeBarrier decodes CLREX, DSB, DMB and ISB. CRm is the option field.
func (d *Decoder) decodeBarrier(inst *Instruction) {
	inst.Imm = uint64(inst.CRm)

	switch inst.Op2 {
	case 0b010:
		inst.Op = OpCLREX
	case 0b100:
		inst.Op = OpDSB
	case 0b101:
		inst.Op = OpDMB
	case 0b110:
		inst.Op = OpISB
	default:
		return
	}
	inst.Format = FormatBarrier
}

// isException checks for exception generation.
// bits [31:24] == 0b11010100
func (d *Decoder) isException(word uint32) bool {
	return word>>24 == 0b11010100
}

// decodeException decodes SVC, HVC, SMC and BRK.
// Format: 11010100 | opc | imm16 | op2 | LL
func (d *Decoder) decodeException(word uint32, inst *Instruction) {
	opc := (word >> 21) & 0x7 // bits [23:21]
	op2 := (word >> 2) & 0x7  // bits [4:2]
	ll := word & 0x3          // bits [1:0]

	if op2 != 0 {
		return
	}

	inst.Imm = uint64((word >> 5) & 0xFFFF) // bits [20:5]

	switch {
	case opc == 0b000 && ll == 0b01:
		inst.Op = OpSVC
	case opc == 0b000 && ll == 0b10:
		inst.Op = OpHVC
	case opc == 0b000 && ll == 0b11:
		inst.Op = OpSMC
	case opc == 0b001 && ll == 0b00:
		inst.Op = OpBRK
	default:
		return
	}
	inst.Format = FormatException
}
