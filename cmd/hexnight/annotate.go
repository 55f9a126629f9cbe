package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/sarchlab/hexnight/loader"
	"github.com/sarchlab/hexnight/plugin"
	"github.com/sarchlab/hexnight/pseudo"
)

type loadOptions struct {
	raw  bool
	base uint64
}

func (o *loadOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.raw, "raw", false, "treat the input as flat ARM64 code instead of ELF")
	cmd.Flags().Uint64Var(&o.base, "base", 0, "load address of raw code")
}

func (o *loadOptions) load(path string) (*loader.Program, error) {
	if !o.raw {
		return loader.Load(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raw file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return loader.LoadRaw(f, o.base)
}

// selectFunctions keeps the functions named in names, or all of them when
// names is empty.
func selectFunctions(prog *loader.Program, names []string) ([]loader.Function, error) {
	if len(names) == 0 {
		return prog.Functions, nil
	}

	var out []loader.Function
	for _, fn := range prog.Functions {
		if slices.Contains(names, fn.Name) {
			out = append(out, fn)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no function matches %v", names)
	}
	return out, nil
}

func listingStyle() pseudo.Style {
	return pseudo.Style{
		Addr:   color.New(color.FgHiBlack).SprintFunc(),
		Helper: color.New(color.FgYellow).SprintFunc(),
		Number: color.New(color.FgMagenta).SprintFunc(),
		Symbol: color.New(color.FgGreen, color.Bold).SprintFunc(),
		Var:    color.New(color.FgCyan).SprintFunc(),
	}
}

func newAnnotateCmd(a *app) *cobra.Command {
	var (
		load       loadOptions
		functions  []string
		profileDir string
	)

	cmd := &cobra.Command{
		Use:   "annotate <file>",
		Short: "Print pseudo-code with system registers named",
		Long: `Decompiles every function of an ARM64 binary into pseudo-code and
replaces each ARM64_SYSREG(op0, op1, CRn, CRm, op2) with the name of the
register it encodes. Encodings without a name are left as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileDir != "" {
				defer profile.Start(
					profile.NoShutdownHook,
					profile.Quiet,
					profile.ProfilePath(profileDir),
					profile.CPUProfile,
				).Stop()
			}

			prog, err := load.load(args[0])
			if err != nil {
				return err
			}

			fns, err := selectFunctions(prog, functions)
			if err != nil {
				return err
			}

			d := pseudo.NewDecompiler(pseudo.WithLogger(a.logger))
			p := plugin.New(plugin.WithLogger(a.logger))
			if err := p.Init(d); err != nil {
				return err
			}
			defer func() { _ = p.Term() }()

			printer := pseudo.NewPrinter(d.Enums(), listingStyle())
			out := cmd.OutOrStdout()
			for i, fn := range fns {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := printer.Fprint(out, d.Decompile(fn)); err != nil {
					return err
				}
			}

			stats := p.Stats()
			a.logger.Info("annotation done",
				"functions", stats.Functions,
				"rewritten", stats.Rewritten,
				"missed", stats.Missed,
				"faults", stats.Faults)

			return nil
		},
	}

	load.register(cmd)
	cmd.Flags().StringSliceVar(&functions, "function", nil, "only annotate these functions")
	cmd.Flags().StringVar(&profileDir, "profile", "", "write a CPU profile into this directory")

	return cmd
}
