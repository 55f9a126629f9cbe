package main

import (
	"encoding/binary"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sarchlab/hexnight/insts"
	"github.com/sarchlab/hexnight/sysreg"
)

func newDisasmCmd(a *app) *cobra.Command {
	var load loadOptions

	cmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "List system instructions with registers named",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := load.load(args[0])
			if err != nil {
				return err
			}

			addr := color.New(color.FgHiBlack).SprintfFunc()
			label := color.New(color.Bold).SprintFunc()
			decoder := insts.NewDecoder()
			table := sysreg.Default()
			out := cmd.OutOrStdout()

			for _, fn := range prog.Functions {
				fmt.Fprintf(out, "%s:\n", label(fn.Name))
				for off := 0; off+4 <= len(fn.Code); off += 4 {
					word := binary.LittleEndian.Uint32(fn.Code[off:])
					inst := decoder.Decode(word)
					fmt.Fprintf(out, "  %s  %08x  %s\n",
						addr("%8x", fn.Addr+uint64(off)), word, insts.Text(inst, table))
				}
			}

			a.logger.Debug("listing done", "functions", len(prog.Functions))

			return nil
		},
	}

	load.register(cmd)

	return cmd
}
