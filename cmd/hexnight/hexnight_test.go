package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/hexnight/internal/elftest"
)

func run(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var _ = Describe("hexnight", func() {
	var (
		tempDir string
		elfPath string
	)

	code := elftest.Code(
		0xD5380000, // mrs x0, MIDR_EL1
		0xD503201F, // nop
		0xD5181002, // msr SCTLR_EL1, x2
		0xD53FF000, // mrs x0, s3_7_c15_c0_0
		0xD65F03C0, // ret
	)

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
		GinkgoT().Setenv("HOME", tempDir)

		elfPath = filepath.Join(tempDir, "prog.elf")
		Expect(elftest.Image{
			Entry: 0x400000,
			Segments: []elftest.Segment{
				{Addr: 0x400000, Data: code, Flags: elftest.FlagR | elftest.FlagX},
			},
			Symbols: []elftest.Symbol{
				{Name: "read_id", Addr: 0x400000, Size: 8},
				{Name: "write_ctl", Addr: 0x400008, Size: 12},
			},
		}.Write(elfPath)).To(Succeed())
	})

	Describe("annotate", func() {
		It("should print registers by name", func() {
			out, _, err := run("annotate", elfPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(ContainSubstring("void read_id()"))
			Expect(out).To(ContainSubstring("x0 = _ReadStatusReg(ARM64_SYSREG(MIDR_EL1)); // 0x400000"))
			Expect(out).To(ContainSubstring("void write_ctl()"))
			Expect(out).To(ContainSubstring("_WriteStatusReg(ARM64_SYSREG(SCTLR_EL1), x2); // 0x400008"))
			Expect(out).To(ContainSubstring("x0 = _ReadStatusReg(ARM64_SYSREG(3, 7, 15, 0, 0)); // 0x40000c"))
			Expect(out).NotTo(ContainSubstring("\x1b["))
		})

		It("should only print the selected functions", func() {
			out, _, err := run("annotate", "--function", "write_ctl", elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("void write_ctl()"))
			Expect(out).NotTo(ContainSubstring("read_id"))
		})

		It("should fail when no function matches", func() {
			_, _, err := run("annotate", "--function", "nope", elfPath)
			Expect(err).To(MatchError(ContainSubstring("no function matches")))
		})

		It("should load raw code at the given base", func() {
			rawPath := filepath.Join(tempDir, "code.bin")
			Expect(os.WriteFile(rawPath, code, 0o644)).To(Succeed())

			out, _, err := run("annotate", "--raw", "--base", "0x1000", rawPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("void sub_1000()"))
			Expect(out).To(ContainSubstring("ARM64_SYSREG(MIDR_EL1)); // 0x1000"))
		})

		It("should fail on a missing file", func() {
			_, _, err := run("annotate", filepath.Join(tempDir, "missing.elf"))
			Expect(err).To(MatchError(ContainSubstring("failed to open ELF file")))
		})

		It("should write JSON logs to the log file", func() {
			logPath := filepath.Join(tempDir, "hexnight.log")
			_, _, err := run("--log-file", logPath, "annotate", elfPath)
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(logPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"msg":"plugin installed"`))
			Expect(string(data)).To(ContainSubstring(`"msg":"annotation done"`))
		})

		It("should write a CPU profile when asked", func() {
			profDir := filepath.Join(tempDir, "prof")
			_, _, err := run("annotate", "--profile", profDir, elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Join(profDir, "cpu.pprof")).To(BeAnExistingFile())
		})
	})

	Describe("disasm", func() {
		It("should list instructions with registers named", func() {
			out, _, err := run("disasm", elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("read_id:"))
			Expect(out).To(ContainSubstring("d5380000  mrs x0, MIDR_EL1"))
			Expect(out).To(ContainSubstring("d5181002  msr SCTLR_EL1, x2"))
			Expect(out).To(ContainSubstring("d53ff000  mrs x0, s3_7_c15_c0_0"))
		})
	})

	Describe("resolve", func() {
		DescribeTable("known registers",
			func(args []string, want string) {
				out, _, err := run(append([]string{"resolve"}, args...)...)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal(want))
			},
			Entry("by fields", []string{"3", "0", "0", "0", "0"}, "MIDR_EL1\t0xc000\ts3_0_c0_c0_0\n"),
			Entry("by key", []string{"0xda10"}, "NZCV\t0xda10\ts3_3_c4_c2_0\n"),
			Entry("by name", []string{"sctlr_el1"}, "SCTLR_EL1\t0xc080\ts3_0_c1_c0_0\n"),
			Entry("by the duplicated key", []string{"0x9828"}, "DBGDTRTX_EL0\t0x9828\ts2_3_c0_c5_0\n"),
		)

		DescribeTable("unknown registers",
			func(args ...string) {
				out, errOut, err := run(append([]string{"resolve"}, args...)...)
				Expect(err).To(MatchError(errUnknown))
				Expect(out).To(Equal("unknown\n"))
				Expect(errOut).NotTo(ContainSubstring("Error"))
			},
			Entry("fields", "3", "7", "15", "0", "0"),
			Entry("key", "0xff00"),
			Entry("name", "NOT_A_REG"),
		)

		It("should say when a name lost its key to another", func() {
			out, errOut, err := run("resolve", "DBGDTRRX_EL0")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("DBGDTRTX_EL0\t0x9828\ts2_3_c0_c5_0\n"))
			Expect(errOut).To(ContainSubstring(
				"note: 0x9828 is shared by DBGDTRRX_EL0, DBGDTRTX_EL0; it resolves to DBGDTRTX_EL0"))
		})

		It("should not add a note for unique keys", func() {
			_, errOut, err := run("resolve", "MIDR_EL1")
			Expect(err).NotTo(HaveOccurred())
			Expect(errOut).NotTo(ContainSubstring("note:"))
		})

		It("should reject fields out of range", func() {
			_, _, err := run("resolve", "4", "0", "0", "0", "0")
			Expect(err).To(MatchError(ContainSubstring("op0 4 out of range")))
		})

		It("should reject a wrong number of arguments", func() {
			_, _, err := run("resolve", "3", "0")
			Expect(err).To(MatchError(ContainSubstring("accepts 1 or 5 arg(s)")))
		})
	})

	Describe("table", func() {
		It("should print one line per key", func() {
			out, _, err := run("table")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("0xc000  MIDR_EL1"))
			Expect(out).To(ContainSubstring("0x9828  DBGDTRTX_EL0"))
			Expect(out).NotTo(ContainSubstring("DBGDTRRX_EL0"))
		})

		It("should export yaml", func() {
			out, _, err := run("table", "--format", "yaml")
			Expect(err).NotTo(HaveOccurred())

			var rows []tableRow
			Expect(yaml.Unmarshal([]byte(out), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(575))
			Expect(rows).To(ContainElement(tableRow{Key: "0xc000", Name: "MIDR_EL1", Encoding: "s3_0_c0_c0_0"}))
		})

		It("should export json duplicates", func() {
			out, _, err := run("table", "--format", "json", "--duplicates")
			Expect(err).NotTo(HaveOccurred())

			var rows []duplicateRow
			Expect(json.Unmarshal([]byte(out), &rows)).To(Succeed())
			Expect(rows).To(Equal([]duplicateRow{{
				Key:    "0x9828",
				Names:  []string{"DBGDTRRX_EL0", "DBGDTRTX_EL0"},
				Winner: "DBGDTRTX_EL0",
			}}))
		})

		It("should list duplicates as text", func() {
			out, _, err := run("table", "--duplicates")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("0x9828  [DBGDTRRX_EL0 DBGDTRTX_EL0] -> DBGDTRTX_EL0\n"))
		})

		It("should reject unknown formats", func() {
			_, _, err := run("table", "--format", "xml")
			Expect(err).To(MatchError(ContainSubstring(`invalid format "xml"`)))
		})
	})

	Describe("configuration", func() {
		It("should take the format from the environment", func() {
			GinkgoT().Setenv("HEXNIGHT_FORMAT", "json")

			out, _, err := run("table", "--duplicates")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("["))
		})

		It("should take settings from a config file", func() {
			cfgPath := filepath.Join(tempDir, "cfg.yaml")
			Expect(os.WriteFile(cfgPath, []byte("format: yaml\n"), 0o644)).To(Succeed())

			out, _, err := run("--config", cfgPath, "table", "--duplicates")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("- key:"))
			Expect(out).To(ContainSubstring("winner: DBGDTRTX_EL0"))
		})

		It("should read $HOME/.hexnight.yaml", func() {
			Expect(os.WriteFile(filepath.Join(tempDir, ".hexnight.yaml"),
				[]byte("format: json\n"), 0o644)).To(Succeed())

			out, _, err := run("table", "--duplicates")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("["))
		})

		It("should fail on a missing explicit config file", func() {
			_, _, err := run("--config", filepath.Join(tempDir, "none.yaml"), "table")
			Expect(err).To(MatchError(ContainSubstring("failed to read config")))
		})

		It("should reject an invalid log level", func() {
			_, _, err := run("--log-level", "loud", "table")
			Expect(err).To(MatchError(ContainSubstring("invalid log level")))
		})

		It("should log to stderr at the configured level", func() {
			_, errOut, err := run("--log-level", "info", "annotate", elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(errOut).To(ContainSubstring("plugin installed"))
		})
	})
})
