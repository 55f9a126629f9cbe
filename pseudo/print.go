package pseudo

import (
	"fmt"
	"io"
	"strings"
)

// Style decorates printed tokens, e.g. with terminal colors. Nil fields
// leave the token unchanged.
type Style struct {
	Addr   func(a ...any) string
	Helper func(a ...any) string
	Number func(a ...any) string
	Symbol func(a ...any) string
	Var    func(a ...any) string
}

func apply(f func(a ...any) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// Printer renders functions as C-like pseudo-code.
type Printer struct {
	enums *Enums
	style Style
}

// NewPrinter creates a printer that resolves enum constants through enums.
func NewPrinter(enums *Enums, style Style) *Printer {
	return &Printer{enums: enums, style: style}
}

// Fprint writes f to w.
func (p *Printer) Fprint(w io.Writer, f *Func) error {
	var b strings.Builder

	fmt.Fprintf(&b, "void %s()\n{\n", f.Name)
	for _, s := range f.Body {
		fmt.Fprintf(&b, "  %s; %s\n",
			p.Expr(s.Expr),
			apply(p.style.Addr, fmt.Sprintf("// %#x", s.Addr)))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Expr renders a single expression.
func (p *Printer) Expr(e Expr) string {
	switch n := e.(type) {
	case *Num:
		return p.num(n)
	case *Var:
		return apply(p.style.Var, n.Name)
	case *Asg:
		return p.Expr(n.Dst) + " = " + p.Expr(n.Src)
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = p.Expr(a)
		}
		return apply(p.style.Helper, n.Helper) + "(" + strings.Join(args, ", ") + ")"
	case nil:
		return ""
	}

	return fmt.Sprintf("/* %T */", e)
}

func (p *Printer) num(n *Num) string {
	if n.Enum != "" && p.enums != nil {
		if e, ok := p.enums.Get(n.Enum); ok {
			if name, ok := e.Member(n.Value); ok {
				return apply(p.style.Symbol, name)
			}
		}
	}

	if n.Enum == "" && (n.Type == TypeInt || n.Value < 10) {
		return apply(p.style.Number, fmt.Sprintf("%d", n.Value))
	}
	return apply(p.style.Number, fmt.Sprintf("%#x", n.Value))
}
