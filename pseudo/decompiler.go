package pseudo

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hexnight/insts"
	"github.com/sarchlab/hexnight/loader"
	"github.com/sarchlab/hexnight/sysreg"
)

// Maturity is the stage a decompiled function has reached.
type Maturity int

// Maturity levels, in the order hooks see them.
const (
	MaturityBuilt Maturity = iota + 1 // tree built, nothing simplified
	MaturityFinal                     // ready to print
)

func (m Maturity) String() string {
	switch m {
	case MaturityBuilt:
		return "built"
	case MaturityFinal:
		return "final"
	}
	return fmt.Sprintf("maturity(%d)", int(m))
}

// HookPosMaturity marks hook invocations for a function reaching a new
// maturity level. The hook context carries the *Func as Item and the
// Maturity as Detail.
var HookPosMaturity = &sim.HookPos{Name: "Maturity"}

// Decompiler lifts ARM64 functions into pseudo-code.
type Decompiler struct {
	*sim.HookableBase

	decoder *insts.Decoder
	enums   *Enums
	logger  *slog.Logger
}

// Option is a functional option for configuring the Decompiler.
type Option func(*Decompiler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decompiler) {
		d.logger = l
	}
}

// WithEnums shares an enum registry with the decompiler.
func WithEnums(e *Enums) Option {
	return func(d *Decompiler) {
		d.enums = e
	}
}

// NewDecompiler creates a Decompiler with no hooks.
func NewDecompiler(opts ...Option) *Decompiler {
	d := &Decompiler{
		HookableBase: sim.NewHookableBase(),
		decoder:      insts.NewDecoder(),
		enums:        NewEnums(),
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Arch names the processor family the decompiler handles.
func (d *Decompiler) Arch() string {
	return "arm64"
}

// Bits returns the address width.
func (d *Decompiler) Bits() int {
	return 64
}

// Enums returns the enum registry used when printing.
func (d *Decompiler) Enums() *Enums {
	return d.enums
}

// Decompile lifts fn and runs the maturity hooks on the result.
func (d *Decompiler) Decompile(fn loader.Function) *Func {
	f := &Func{Name: fn.Name, Addr: fn.Addr}

	for off := 0; off+4 <= len(fn.Code); off += 4 {
		word := binary.LittleEndian.Uint32(fn.Code[off:])
		inst := d.decoder.Decode(word)

		e := d.lift(inst)
		if e == nil {
			f.Skipped++
			continue
		}
		f.Body = append(f.Body, Stmt{Addr: fn.Addr + uint64(off), Expr: e})
	}

	d.logger.Debug("function lifted",
		"func", f.Name,
		"addr", fmt.Sprintf("0x%x", f.Addr),
		"stmts", len(f.Body),
		"skipped", f.Skipped)

	d.advance(f, MaturityBuilt)
	d.advance(f, MaturityFinal)

	return f
}

func (d *Decompiler) advance(f *Func, m Maturity) {
	if d.NumHooks() == 0 {
		return
	}

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    HookPosMaturity,
		Item:   f,
		Detail: m,
	})
}

// lift converts one instruction; nil means it has no pseudo-code form.
func (d *Decompiler) lift(inst *insts.Instruction) Expr {
	switch inst.Op {
	case insts.OpMRS:
		return &Asg{
			Dst: xreg(inst.Rt),
			Src: call(HelperReadSys, sysRegCall(inst)),
		}
	case insts.OpMSR:
		return call(HelperWriteSys, sysRegCall(inst), xsrc(inst.Rt))
	case insts.OpSYS:
		if inst.Rt == 31 {
			return call(HelperSys, sysRegCall(inst))
		}
		return call(HelperSys, sysRegCall(inst), xsrc(inst.Rt))
	case insts.OpSYSL:
		return &Asg{Dst: xreg(inst.Rt), Src: call(HelperSysL, sysRegCall(inst))}
	case insts.OpMSRImm:
		field, ok := sysreg.PStateField(inst.Op1, inst.Op2)
		if !ok {
			field = fmt.Sprintf("pstate_%d_%d", inst.Op1, inst.Op2)
		}
		return call(HelperPState, &Var{Name: field}, uint64Num(inst.Imm))
	case insts.OpDSB, insts.OpDMB, insts.OpISB:
		return call("__"+inst.Op.String(), uint64Num(inst.Imm))
	case insts.OpCLREX, insts.OpYIELD, insts.OpWFE, insts.OpWFI, insts.OpSEV, insts.OpSEVL:
		return call("__" + inst.Op.String())
	case insts.OpHINT, insts.OpSVC, insts.OpHVC, insts.OpSMC, insts.OpBRK:
		return call("__"+inst.Op.String(), uint64Num(inst.Imm))
	}

	return nil
}

// sysRegCall builds ARM64_SYSREG(op0, op1, CRn, CRm, op2).
func sysRegCall(inst *insts.Instruction) *Call {
	return call(HelperSysReg,
		intNum(inst.Op0),
		intNum(inst.Op1),
		intNum(inst.CRn),
		intNum(inst.CRm),
		intNum(inst.Op2),
	)
}

func call(helper string, args ...Expr) *Call {
	return &Call{Helper: helper, Args: args}
}

func intNum(v uint8) *Num {
	return &Num{Value: uint64(v), Type: TypeInt}
}

func uint64Num(v uint64) *Num {
	return &Num{Value: v, Type: TypeUint64}
}

func xreg(n uint8) *Var {
	if n == 31 {
		return &Var{Name: "xzr"}
	}
	return &Var{Name: fmt.Sprintf("x%d", n)}
}

// xsrc reads register n as a source, where 31 is the zero register.
func xsrc(n uint8) Expr {
	if n == 31 {
		return uint64Num(0)
	}
	return xreg(n)
}
