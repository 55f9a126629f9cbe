package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hexnight/insts"
	"github.com/sarchlab/hexnight/sysreg"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("System register moves", func() {
		// MRS X0, MIDR_EL1   -> 0xD5380000
		// Encoding: 1101010100 | L=1 | op0=11 | op1=000 | CRn=0000 | CRm=0000 | op2=000 | Rt=0
		It("should decode MRS X0, MIDR_EL1", func() {
			inst := decoder.Decode(0xD5380000)

			Expect(inst.Op).To(Equal(insts.OpMRS))
			Expect(inst.Format).To(Equal(insts.FormatSysReg))
			Expect(inst.Op0).To(Equal(uint8(3)))
			Expect(inst.Op1).To(Equal(uint8(0)))
			Expect(inst.CRn).To(Equal(uint8(0)))
			Expect(inst.CRm).To(Equal(uint8(0)))
			Expect(inst.Op2).To(Equal(uint8(0)))
			Expect(inst.Rt).To(Equal(uint8(0)))
			Expect(inst.SysReg()).To(Equal(sysreg.Key(0xc000)))
		})

		// MRS X1, NZCV       -> 0xD53B4201
		It("should decode MRS X1, NZCV", func() {
			inst := decoder.Decode(0xD53B4201)

			Expect(inst.Op).To(Equal(insts.OpMRS))
			Expect(inst.Rt).To(Equal(uint8(1)))
			Expect(inst.SysReg()).To(Equal(sysreg.Key(0xda10)))
		})

		// MSR SCTLR_EL1, X2  -> 0xD5181002
		// Encoding: 1101010100 | L=0 | op0=11 | op1=000 | CRn=0001 | CRm=0000 | op2=000 | Rt=2
		It("should decode MSR SCTLR_EL1, X2", func() {
			inst := decoder.Decode(0xD5181002)

			Expect(inst.Op).To(Equal(insts.OpMSR))
			Expect(inst.Format).To(Equal(insts.FormatSysReg))
			Expect(inst.CRn).To(Equal(uint8(1)))
			Expect(inst.Rt).To(Equal(uint8(2)))
			Expect(inst.SysReg()).To(Equal(sysreg.Key(0xc080)))
		})

		// MSR FPSR, X0       -> 0xD51B4420
		It("should decode the key from bits [20:5]", func() {
			inst := decoder.Decode(0xD51B4420)

			Expect(inst.Op).To(Equal(insts.OpMSR))
			Expect(inst.SysReg()).To(Equal(sysreg.Key((0xD51B4420 >> 5) & 0xFFFF)))
		})

		// MRS X3, MDCCSR_EL0 -> 0xD5330103 (op0=10)
		It("should decode debug registers with op0 == 2", func() {
			inst := decoder.Decode(0xD5330103)

			Expect(inst.Op).To(Equal(insts.OpMRS))
			Expect(inst.Op0).To(Equal(uint8(2)))
			Expect(inst.SysReg()).To(Equal(sysreg.Key(0x9808)))
		})
	})

	Describe("System instructions", func() {
		// DC ZVA, X0         -> 0xD50B7420 (SYS #3, C7, C4, #1, X0)
		It("should decode SYS", func() {
			inst := decoder.Decode(0xD50B7420)

			Expect(inst.Op).To(Equal(insts.OpSYS))
			Expect(inst.Format).To(Equal(insts.FormatSys))
			Expect(inst.Op0).To(Equal(uint8(1)))
			Expect(inst.Op1).To(Equal(uint8(3)))
			Expect(inst.CRn).To(Equal(uint8(7)))
			Expect(inst.CRm).To(Equal(uint8(4)))
			Expect(inst.Op2).To(Equal(uint8(1)))
		})

		It("should decode SYSL", func() {
			inst := decoder.Decode(0xD52B7420)

			Expect(inst.Op).To(Equal(insts.OpSYSL))
		})
	})

	Describe("PSTATE writes", func() {
		// MSR DAIFSet, #2    -> 0xD50342DF
		It("should decode MSR DAIFSet, #2", func() {
			inst := decoder.Decode(0xD50342DF)

			Expect(inst.Op).To(Equal(insts.OpMSRImm))
			Expect(inst.Format).To(Equal(insts.FormatPState))
			Expect(inst.Op1).To(Equal(uint8(3)))
			Expect(inst.Op2).To(Equal(uint8(6)))
			Expect(inst.Imm).To(Equal(uint64(2)))
		})
	})

	Describe("Hints", func() {
		DescribeTable("named hints",
			func(word uint32, op insts.Op) {
				inst := decoder.Decode(word)
				Expect(inst.Op).To(Equal(op))
				Expect(inst.Format).To(Equal(insts.FormatHint))
			},
			Entry("NOP", uint32(0xD503201F), insts.OpNOP),
			Entry("YIELD", uint32(0xD503203F), insts.OpYIELD),
			Entry("WFE", uint32(0xD503205F), insts.OpWFE),
			Entry("WFI", uint32(0xD503207F), insts.OpWFI),
			Entry("SEV", uint32(0xD503209F), insts.OpSEV),
			Entry("SEVL", uint32(0xD50320BF), insts.OpSEVL),
		)

		// HINT #34 (BTI C)   -> 0xD503245F
		It("should keep the number of other hints", func() {
			inst := decoder.Decode(0xD503245F)

			Expect(inst.Op).To(Equal(insts.OpHINT))
			Expect(inst.Imm).To(Equal(uint64(34)))
		})
	})

	Describe("Barriers", func() {
		DescribeTable("barrier instructions",
			func(word uint32, op insts.Op, option uint64) {
				inst := decoder.Decode(word)
				Expect(inst.Op).To(Equal(op))
				Expect(inst.Format).To(Equal(insts.FormatBarrier))
				Expect(inst.Imm).To(Equal(option))
			},
			Entry("CLREX", uint32(0xD5033F5F), insts.OpCLREX, uint64(15)),
			Entry("DSB SY", uint32(0xD5033F9F), insts.OpDSB, uint64(15)),
			Entry("DMB ISH", uint32(0xD5033BBF), insts.OpDMB, uint64(11)),
			Entry("ISB", uint32(0xD5033FDF), insts.OpISB, uint64(15)),
		)
	})

	Describe("Exception generation", func() {
		DescribeTable("exception instructions",
			func(word uint32, op insts.Op, imm uint64) {
				inst := decoder.Decode(word)
				Expect(inst.Op).To(Equal(op))
				Expect(inst.Format).To(Equal(insts.FormatException))
				Expect(inst.Imm).To(Equal(imm))
			},
			Entry("SVC #0", uint32(0xD4000001), insts.OpSVC, uint64(0)),
			Entry("HVC #1", uint32(0xD4000022), insts.OpHVC, uint64(1)),
			Entry("SMC #0", uint32(0xD4000003), insts.OpSMC, uint64(0)),
			Entry("BRK #0x3e8", uint32(0xD4207D00), insts.OpBRK, uint64(0x3e8)),
		)
	})

	Describe("Other instructions", func() {
		// ADD X0, X1, #42    -> 0x9100A820
		It("should leave non-system instructions unknown", func() {
			inst := decoder.Decode(0x9100A820)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatUnknown))
			Expect(inst.Word).To(Equal(uint32(0x9100A820)))
		})

		// RET                -> 0xD65F03C0
		It("should not mistake RET for a system instruction", func() {
			inst := decoder.Decode(0xD65F03C0)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})
})
