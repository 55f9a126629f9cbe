package pseudo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hexnight/pseudo"
)

var _ = Describe("Walk", func() {
	var tree pseudo.Expr

	BeforeEach(func() {
		tree = &pseudo.Asg{
			Dst: &pseudo.Var{Name: "x0"},
			Src: &pseudo.Call{
				Helper: "outer",
				Args: []pseudo.Expr{
					&pseudo.Call{Helper: "inner", Args: []pseudo.Expr{&pseudo.Num{Value: 1}}},
					&pseudo.Num{Value: 2},
				},
			},
		}
	})

	It("should visit parents before children", func() {
		var kinds []string
		pseudo.Walk(tree, pseudo.VisitorFunc(func(e pseudo.Expr) bool {
			switch n := e.(type) {
			case *pseudo.Asg:
				kinds = append(kinds, "asg")
			case *pseudo.Var:
				kinds = append(kinds, n.Name)
			case *pseudo.Call:
				kinds = append(kinds, n.Helper)
			case *pseudo.Num:
				kinds = append(kinds, "num")
			}
			return true
		}))

		Expect(kinds).To(Equal([]string{"asg", "x0", "outer", "inner", "num", "num"}))
	})

	It("should stop when the visitor says so", func() {
		n := 0
		done := pseudo.Walk(tree, pseudo.VisitorFunc(func(e pseudo.Expr) bool {
			n++
			_, isCall := e.(*pseudo.Call)
			return !isCall
		}))

		Expect(done).To(BeFalse())
		Expect(n).To(Equal(3))
	})

	It("should see arguments replaced by the visitor", func() {
		var nums []uint64
		pseudo.Walk(tree, pseudo.VisitorFunc(func(e pseudo.Expr) bool {
			switch n := e.(type) {
			case *pseudo.Call:
				if n.Helper == "inner" {
					n.Symbolize(1, "E", 42)
				}
			case *pseudo.Num:
				nums = append(nums, n.Value)
			}
			return true
		}))

		Expect(nums).To(Equal([]uint64{42, 2}))
	})
})

var _ = Describe("Call.Symbolize", func() {
	It("should drop trailing arguments and retarget the first", func() {
		c := &pseudo.Call{Helper: pseudo.HelperSysReg, Args: []pseudo.Expr{
			&pseudo.Num{Value: 3, Type: pseudo.TypeInt},
			&pseudo.Num{Value: 0, Type: pseudo.TypeInt},
			&pseudo.Num{Value: 0, Type: pseudo.TypeInt},
			&pseudo.Num{Value: 0, Type: pseudo.TypeInt},
			&pseudo.Num{Value: 0, Type: pseudo.TypeInt},
		}}

		c.Symbolize(1, "ARM64_SYSREG_aenum", 0xc000)

		Expect(c.Args).To(HaveLen(1))
		Expect(c.Args[0]).To(Equal(&pseudo.Num{Value: 0xc000, Type: pseudo.TypeInt, Enum: "ARM64_SYSREG_aenum"}))
	})

	It("should leave calls without arguments alone", func() {
		c := &pseudo.Call{Helper: "__isb"}
		c.Symbolize(1, "E", 1)
		Expect(c.Args).To(BeEmpty())
	})
})

var _ = Describe("Enums", func() {
	var enums *pseudo.Enums

	BeforeEach(func() {
		enums = pseudo.NewEnums()
	})

	It("should reject a second enum with the same name", func() {
		_, err := enums.Add("E")
		Expect(err).NotTo(HaveOccurred())
		_, err = enums.Add("E")
		Expect(err).To(MatchError(ContainSubstring("already exists")))
	})

	It("should store members both ways", func() {
		e, _ := enums.Add("E")
		Expect(e.AddMember("A", 1)).To(Succeed())
		Expect(e.AddMember("B", 1)).To(Succeed())

		name, ok := e.Member(1)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("A"))

		v, ok := e.Value("B")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint64(1)))
		Expect(e.Len()).To(Equal(2))
		Expect(e.Name()).To(Equal("E"))
	})

	It("should reject duplicate member names", func() {
		e, _ := enums.Add("E")
		Expect(e.AddMember("A", 1)).To(Succeed())
		Expect(e.AddMember("A", 2)).To(MatchError(ContainSubstring("already defined")))
	})

	It("should forget removed enums", func() {
		_, _ = enums.Add("E")
		enums.Remove("E")
		_, ok := enums.Get("E")
		Expect(ok).To(BeFalse())
	})
})
