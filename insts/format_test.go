package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hexnight/insts"
	"github.com/sarchlab/hexnight/sysreg"
)

var _ = Describe("Text", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	DescribeTable("with the default register table",
		func(word uint32, want string) {
			Expect(insts.Text(decoder.Decode(word), sysreg.Default())).To(Equal(want))
		},
		Entry("MRS", uint32(0xD5380000), "mrs x0, MIDR_EL1"),
		Entry("MRS NZCV", uint32(0xD53B4201), "mrs x1, NZCV"),
		Entry("MSR", uint32(0xD5181002), "msr SCTLR_EL1, x2"),
		Entry("MSR from XZR", uint32(0xD518101F), "msr SCTLR_EL1, xzr"),
		Entry("MSR unknown register", uint32(0xD53FF000), "mrs x0, s3_7_c15_c0_0"),
		Entry("MSR DAIFSet", uint32(0xD50342DF), "msr DAIFSet, #2"),
		Entry("SYS", uint32(0xD50B7420), "sys #3, c7, c4, #1, x0"),
		Entry("SYS without register", uint32(0xD508871F), "sys #0, c8, c7, #0"),
		Entry("SYSL", uint32(0xD52B7420), "sysl x0, #3, c7, c4, #1"),
		Entry("NOP", uint32(0xD503201F), "nop"),
		Entry("HINT", uint32(0xD503245F), "hint #34"),
		Entry("DSB SY", uint32(0xD5033F9F), "dsb sy"),
		Entry("DMB ISH", uint32(0xD5033BBF), "dmb ish"),
		Entry("ISB", uint32(0xD5033FDF), "isb"),
		Entry("SVC", uint32(0xD4000001), "svc #0x0"),
		Entry("BRK", uint32(0xD4207D00), "brk #0x3e8"),
		Entry("unknown", uint32(0x9100A820), ".word 0x9100a820"),
	)

	It("should fall back to the generic name without a resolver", func() {
		Expect(insts.Text(decoder.Decode(0xD5380000), nil)).To(Equal("mrs x0, s3_0_c0_c0_0"))
	})

	It("should fall back to the generic name with a nil table", func() {
		var table *sysreg.Table
		Expect(insts.Text(decoder.Decode(0xD5380000), table)).To(Equal("mrs x0, s3_0_c0_c0_0"))
	})
})
