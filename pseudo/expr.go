// Package pseudo turns ARM64 functions into a small pseudo-code tree.
//
// Only the system instruction class is lifted. System-register accesses
// become calls to the ARM64_SYSREG helper with the five encoding fields
// as int operands, the way decompilers show registers they cannot name:
//
//	x0 = _ReadStatusReg(ARM64_SYSREG(3, 0, 0, 0, 0));
//
// A Decompiler is an akita sim.Hookable. Hooks registered on it see every
// function at each maturity level and may rewrite the tree in place.
package pseudo

// Operand types.
const (
	TypeInt    = "int"
	TypeUint64 = "unsigned __int64"
)

// Helper names.
const (
	HelperSysReg   = "ARM64_SYSREG"
	HelperReadSys  = "_ReadStatusReg"
	HelperWriteSys = "_WriteStatusReg"
	HelperSys      = "__sys"
	HelperSysL     = "__sysl"
	HelperPState   = "__msr"
)

// Expr is a node of the pseudo-code tree.
type Expr interface {
	expr()
}

// Num is a numeric constant. When Enum is set the printer shows the
// member of that enum whose value is Value.
type Num struct {
	Value uint64
	Type  string
	Enum  string
}

// Var is a named variable, usually a general-purpose register.
type Var struct {
	Name string
}

// Call is a call to a compiler helper.
type Call struct {
	Helper string
	Args   []Expr
}

// Asg is an assignment.
type Asg struct {
	Dst Expr
	Src Expr
}

func (*Num) expr()  {}
func (*Var) expr()  {}
func (*Call) expr() {}
func (*Asg) expr()  {}

// Symbolize keeps the first keep arguments of c and turns the first one
// into a constant of the given enum. It is a no-op when keep < 1 or c has
// no arguments.
func (c *Call) Symbolize(keep int, enum string, value uint64) {
	if keep < 1 || len(c.Args) == 0 {
		return
	}
	if keep < len(c.Args) {
		c.Args = c.Args[:keep]
	}

	typ := TypeInt
	if n, ok := c.Args[0].(*Num); ok {
		typ = n.Type
	}
	c.Args[0] = &Num{Value: value, Type: typ, Enum: enum}
}

// Stmt is one statement with the address of the instruction it came from.
type Stmt struct {
	Addr uint64
	Expr Expr
}

// Func is a decompiled function.
type Func struct {
	Name string
	Addr uint64
	Body []Stmt
	// Skipped counts instructions outside the system class.
	Skipped int
}

// Visitor is called for every node of a tree, parents before children.
// Returning false stops the walk.
type Visitor interface {
	VisitExpr(e Expr) bool
}

// VisitorFunc adapts a function to Visitor.
type VisitorFunc func(e Expr) bool

// VisitExpr calls f(e).
func (f VisitorFunc) VisitExpr(e Expr) bool {
	return f(e)
}

// Walk visits e and its children in pre-order. Children are read after
// the parent has been visited, so a visitor may replace them.
func Walk(e Expr, v Visitor) bool {
	if e == nil {
		return true
	}
	if !v.VisitExpr(e) {
		return false
	}

	switch n := e.(type) {
	case *Call:
		for i := 0; i < len(n.Args); i++ {
			if !Walk(n.Args[i], v) {
				return false
			}
		}
	case *Asg:
		if !Walk(n.Dst, v) {
			return false
		}
		return Walk(n.Src, v)
	}

	return true
}

// Walk visits every statement of f in order.
func (f *Func) Walk(v Visitor) bool {
	for _, s := range f.Body {
		if !Walk(s.Expr, v) {
			return false
		}
	}
	return true
}
