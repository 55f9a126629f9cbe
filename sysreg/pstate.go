package sysreg

// pstateFields names the targets of MSR (immediate), keyed by op1<<3 | op2.
var pstateFields = map[uint8]string{
	0b000<<3 | 0b011: "UAO",
	0b000<<3 | 0b100: "PAN",
	0b000<<3 | 0b101: "SPSel",
	0b011<<3 | 0b001: "SSBS",
	0b011<<3 | 0b010: "DIT",
	0b011<<3 | 0b100: "TCO",
	0b011<<3 | 0b110: "DAIFSet",
	0b011<<3 | 0b111: "DAIFClr",
}

// PStateField returns the PSTATE field written by "MSR <field>, #imm".
func PStateField(op1, op2 uint8) (string, bool) {
	name, ok := pstateFields[(op1&0x7)<<3|op2&0x7]
	return name, ok
}
