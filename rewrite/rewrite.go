// Package rewrite decides how ARM64_SYSREG helper calls are shown.
//
// The pass only reads a call site and answers with a Directive; applying
// the directive to a tree is up to whoever owns it.
package rewrite

import "github.com/sarchlab/hexnight/sysreg"

// Helper is the name of the helper call the pass looks for.
const Helper = "ARM64_SYSREG"

// shifts places operand i of an ARM64_SYSREG call within the key.
var shifts = [...]uint{
	sysreg.ShiftOp0,
	sysreg.ShiftOp1,
	sysreg.ShiftCRn,
	sysreg.ShiftCRm,
	sysreg.ShiftOp2,
}

// Operand is a read-only view of one call argument.
type Operand struct {
	Value uint64
	// IsInt is true when the argument is a numeric constant of type int.
	IsInt bool
}

// CallSite is a read-only view of one helper call.
type CallSite struct {
	Helper string
	Args   []Operand
}

// Directive tells the tree owner how to rewrite a call: keep the first
// Keep arguments and replace the first with Key as a constant of Enum.
type Directive struct {
	Key  sysreg.Key
	Name string
	Enum string
	Keep int
}

// Resolver maps a packed key to a register name.
type Resolver interface {
	Lookup(k sysreg.Key) (string, bool)
}

// Pass turns ARM64_SYSREG calls with known encodings into directives.
type Pass struct {
	resolver Resolver
	enum     string
}

// NewPass creates a pass that resolves keys through r and names enum in
// its directives.
func NewPass(r Resolver, enum string) *Pass {
	return &Pass{resolver: r, enum: enum}
}

// Matches reports whether site is an ARM64_SYSREG call with five int
// constant arguments.
func (p *Pass) Matches(site CallSite) bool {
	if site.Helper != Helper || len(site.Args) != len(shifts) {
		return false
	}
	for _, a := range site.Args {
		if !a.IsInt {
			return false
		}
	}
	return true
}

// Key packs the operands of a matching site. Operands are not masked; the
// boolean is false when the combined value does not fit in 16 bits.
func (p *Pass) Key(site CallSite) (sysreg.Key, bool) {
	var k uint64
	for i, a := range site.Args {
		k |= a.Value << shifts[i]
	}
	if k > 0xFFFF {
		return 0, false
	}
	return sysreg.Key(k), true
}

// Visit returns the directive for site, or false when the call should be
// left as it is: wrong helper, wrong operand shape, or unknown encoding.
func (p *Pass) Visit(site CallSite) (Directive, bool) {
	if !p.Matches(site) {
		return Directive{}, false
	}

	k, ok := p.Key(site)
	if !ok {
		return Directive{}, false
	}

	name, ok := p.resolver.Lookup(k)
	if !ok {
		return Directive{}, false
	}

	return Directive{Key: k, Name: name, Enum: p.enum, Keep: 1}, true
}
