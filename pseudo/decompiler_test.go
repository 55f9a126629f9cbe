package pseudo_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hexnight/internal/elftest"
	"github.com/sarchlab/hexnight/loader"
	"github.com/sarchlab/hexnight/pseudo"
)

type recordingHook struct {
	seen []pseudo.Maturity
	fns  []*pseudo.Func
}

func (h *recordingHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != pseudo.HookPosMaturity {
		return
	}
	h.seen = append(h.seen, ctx.Detail.(pseudo.Maturity))
	h.fns = append(h.fns, ctx.Item.(*pseudo.Func))
}

var _ = Describe("Decompiler", func() {
	var (
		d   *pseudo.Decompiler
		out *pseudo.Printer
	)

	BeforeEach(func() {
		d = pseudo.NewDecompiler()
		out = pseudo.NewPrinter(d.Enums(), pseudo.Style{})
	})

	decompile := func(words ...uint32) *pseudo.Func {
		return d.Decompile(loader.Function{
			Name: "fn",
			Addr: 0x1000,
			Code: elftest.Code(words...),
		})
	}

	render := func(f *pseudo.Func) []string {
		lines := make([]string, len(f.Body))
		for i, s := range f.Body {
			lines[i] = out.Expr(s.Expr)
		}
		return lines
	}

	It("should describe an ARM64 host", func() {
		Expect(d.Arch()).To(Equal("arm64"))
		Expect(d.Bits()).To(Equal(64))
	})

	It("should lift system-register moves into ARM64_SYSREG calls", func() {
		f := decompile(
			0xD5380000, // mrs x0, MIDR_EL1
			0xD5181002, // msr SCTLR_EL1, x2
			0xD518101F, // msr SCTLR_EL1, xzr
		)

		Expect(render(f)).To(Equal([]string{
			"x0 = _ReadStatusReg(ARM64_SYSREG(3, 0, 0, 0, 0))",
			"_WriteStatusReg(ARM64_SYSREG(3, 0, 1, 0, 0), x2)",
			"_WriteStatusReg(ARM64_SYSREG(3, 0, 1, 0, 0), 0)",
		}))
	})

	It("should give every ARM64_SYSREG operand the int type", func() {
		f := decompile(0xD53B4201) // mrs x1, NZCV

		call := f.Body[0].Expr.(*pseudo.Asg).Src.(*pseudo.Call).Args[0].(*pseudo.Call)
		Expect(call.Helper).To(Equal(pseudo.HelperSysReg))
		Expect(call.Args).To(HaveLen(5))
		for _, a := range call.Args {
			Expect(a.(*pseudo.Num).Type).To(Equal(pseudo.TypeInt))
		}
	})

	It("should lift the rest of the system class", func() {
		f := decompile(
			0xD50B7420, // dc zva, x0
			0xD52B7420, // sysl x0, ...
			0xD50342DF, // msr DAIFSet, #2
			0xD5033F9F, // dsb sy
			0xD5033FDF, // isb
			0xD503207F, // wfi
			0xD4000001, // svc #0
			0xD4207D00, // brk #0x3e8
		)

		Expect(render(f)).To(Equal([]string{
			"__sys(ARM64_SYSREG(1, 3, 7, 4, 1), x0)",
			"x0 = __sysl(ARM64_SYSREG(1, 3, 7, 4, 1))",
			"__msr(DAIFSet, 2)",
			"__dsb(0xf)",
			"__isb(0xf)",
			"__wfi()",
			"__svc(0)",
			"__brk(0x3e8)",
		}))
	})

	It("should skip instructions outside the system class", func() {
		f := decompile(
			0x9100A820, // add x0, x1, #42
			0xD503201F, // nop
			0xD5380000, // mrs x0, MIDR_EL1
			0xD65F03C0, // ret
		)

		Expect(f.Body).To(HaveLen(1))
		Expect(f.Body[0].Addr).To(Equal(uint64(0x1008)))
		Expect(f.Skipped).To(Equal(3))
	})

	It("should ignore a trailing partial word", func() {
		f := d.Decompile(loader.Function{
			Name: "tail",
			Code: append(elftest.Code(0xD5380000), 0x01, 0x02),
		})
		Expect(f.Body).To(HaveLen(1))
	})

	Describe("maturity hooks", func() {
		It("should fire built then final for each function", func() {
			hook := &recordingHook{}
			d.AcceptHook(hook)

			f := decompile(0xD5380000)

			Expect(hook.seen).To(Equal([]pseudo.Maturity{pseudo.MaturityBuilt, pseudo.MaturityFinal}))
			Expect(hook.fns[0]).To(BeIdenticalTo(f))
			Expect(hook.fns[1]).To(BeIdenticalTo(f))
		})

		It("should print maturity names", func() {
			Expect(pseudo.MaturityBuilt.String()).To(Equal("built"))
			Expect(pseudo.MaturityFinal.String()).To(Equal("final"))
			Expect(pseudo.Maturity(9).String()).To(Equal("maturity(9)"))
		})
	})

	Describe("printing", func() {
		It("should show enum constants by name", func() {
			e, err := d.Enums().Add("regs")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.AddMember("MIDR_EL1", 0xc000)).To(Succeed())

			f := decompile(0xD5380000)
			call := f.Body[0].Expr.(*pseudo.Asg).Src.(*pseudo.Call).Args[0].(*pseudo.Call)
			call.Symbolize(1, "regs", 0xc000)

			var buf bytes.Buffer
			Expect(out.Fprint(&buf, f)).To(Succeed())
			Expect(buf.String()).To(Equal(
				"void fn()\n{\n  x0 = _ReadStatusReg(ARM64_SYSREG(MIDR_EL1)); // 0x1000\n}\n"))
		})

		It("should fall back to hex for unknown enum values", func() {
			n := &pseudo.Num{Value: 0xc000, Type: pseudo.TypeInt, Enum: "missing"}
			Expect(out.Expr(n)).To(Equal("0xc000"))
		})

		It("should apply the style", func() {
			styled := pseudo.NewPrinter(nil, pseudo.Style{
				Helper: func(a ...any) string { return "<" + a[0].(string) + ">" },
			})
			Expect(styled.Expr(&pseudo.Call{Helper: "__isb"})).To(Equal("<__isb>()"))
		})
	})
})
