// Package sysreg resolves ARM64 system-register encodings to their names.
//
// A system register is identified by five encoding fields (op0, op1, CRn,
// CRm, op2). The fields are packed into a 16-bit key which indexes a
// static table of known registers:
//
//	name, ok := sysreg.Resolve(0b11, 0b011, 0b0100, 0b0010, 0b000) // "NZCV", true
//	name, ok = sysreg.Resolve(0, 0, 0, 0, 0)                       // "", false
//
// Resolution never fails: a key that is not in the table reports ok ==
// false and leaves the fallback to the caller.
package sysreg

import "fmt"

// Field shift amounts within a packed Key.
const (
	ShiftOp0 = 14
	ShiftOp1 = 11
	ShiftCRn = 7
	ShiftCRm = 3
	ShiftOp2 = 0
)

// Key is the packed 16-bit encoding of a system register.
//
// Layout: op0 [15:14] | op1 [13:11] | CRn [10:7] | CRm [6:3] | op2 [2:0]
type Key uint16

// Pack combines the five encoding fields into a Key.
//
// The fields are not masked. Callers pass values already constrained to
// their widths (2, 3, 4, 4 and 3 bits); a wider value corrupts the
// neighbouring fields and the resulting key will most likely miss.
func Pack(op0, op1, crn, crm, op2 uint8) Key {
	return Key(uint16(op0)<<ShiftOp0 |
		uint16(op1)<<ShiftOp1 |
		uint16(crn)<<ShiftCRn |
		uint16(crm)<<ShiftCRm |
		uint16(op2)<<ShiftOp2)
}

// Fields holds the unpacked encoding of a system register.
type Fields struct {
	Op0 uint8 // bits [15:14]
	Op1 uint8 // bits [13:11]
	CRn uint8 // bits [10:7]
	CRm uint8 // bits [6:3]
	Op2 uint8 // bits [2:0]
}

// Key packs the fields.
func (f Fields) Key() Key {
	return Pack(f.Op0, f.Op1, f.CRn, f.CRm, f.Op2)
}

// Unpack splits a key into its encoding fields.
func Unpack(k Key) Fields {
	return Fields{
		Op0: uint8(k>>ShiftOp0) & 0x3,
		Op1: uint8(k>>ShiftOp1) & 0x7,
		CRn: uint8(k>>ShiftCRn) & 0xF,
		CRm: uint8(k>>ShiftCRm) & 0xF,
		Op2: uint8(k>>ShiftOp2) & 0x7,
	}
}

// Fields is shorthand for Unpack(k).
func (k Key) Fields() Fields {
	return Unpack(k)
}

// String returns the generic assembler spelling, e.g. "s3_0_c0_c0_0".
func (k Key) String() string {
	f := Unpack(k)
	return fmt.Sprintf("s%d_%d_c%d_c%d_%d", f.Op0, f.Op1, f.CRn, f.CRm, f.Op2)
}
