package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hexnight/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should name every opcode", func() {
		for op := insts.OpUnknown; op <= insts.OpBRK; op++ {
			Expect(op.String()).NotTo(BeEmpty())
		}
		Expect(insts.Op(999).String()).To(Equal("unknown"))
	})
})
