package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/hexnight/sysreg"
)

var errUnknown = errors.New("unknown system register")

// fieldLimits are the largest values of op0, op1, CRn, CRm and op2.
var fieldLimits = [...]struct {
	name string
	max  uint64
}{
	{"op0", 3},
	{"op1", 7},
	{"CRn", 15},
	{"CRm", 15},
	{"op2", 7},
}

func newResolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <op0> <op1> <CRn> <CRm> <op2> | <key> | <name>",
		Short: "Look up one system register",
		Long: `Looks up a system register by its five encoding fields, by its packed
16-bit key, or by name. Prints "unknown" and exits with status 1 when the
register is not in the table.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != len(fieldLimits) {
				return fmt.Errorf("accepts 1 or %d arg(s), received %d", len(fieldLimits), len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, name, err := resolve(sysreg.Default(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if name == "" {
				a.logger.Debug("lookup missed", "args", args)
				fmt.Fprintln(out, "unknown")
				cmd.SilenceErrors = true
				return errUnknown
			}

			printEntry(out, key, name)
			noteDuplicate(cmd.ErrOrStderr(), sysreg.Default(), key)
			return nil
		},
	}

	return cmd
}

// resolve returns the key and name args refer to. name is empty on a miss.
func resolve(t *sysreg.Table, args []string) (sysreg.Key, string, error) {
	if len(args) == len(fieldLimits) {
		var f [len(fieldLimits)]uint8
		for i, s := range args {
			v, err := strconv.ParseUint(s, 0, 64)
			if err != nil {
				return 0, "", fmt.Errorf("invalid %s %q: %w", fieldLimits[i].name, s, err)
			}
			if v > fieldLimits[i].max {
				return 0, "", fmt.Errorf("%s %d out of range 0..%d", fieldLimits[i].name, v, fieldLimits[i].max)
			}
			f[i] = uint8(v)
		}
		key := sysreg.Pack(f[0], f[1], f[2], f[3], f[4])
		name, _ := t.Lookup(key)
		return key, name, nil
	}

	arg := args[0]
	if v, err := strconv.ParseUint(arg, 0, 16); err == nil {
		key := sysreg.Key(v)
		name, _ := t.Lookup(key)
		return key, name, nil
	}

	key, ok := t.ByName(arg)
	if !ok {
		return 0, "", nil
	}
	name, _ := t.Lookup(key)
	return key, name, nil
}

func printEntry(w io.Writer, k sysreg.Key, name string) {
	fmt.Fprintf(w, "%s\t0x%04x\t%s\n", name, uint16(k), k)
}

// noteDuplicate tells the user when k was given more than one name, since
// only the winner is printed.
func noteDuplicate(w io.Writer, t *sysreg.Table, k sysreg.Key) {
	for _, d := range t.Duplicates() {
		if d.Key == k {
			fmt.Fprintf(w, "note: 0x%04x is shared by %s; it resolves to %s\n",
				uint16(k), strings.Join(d.Names, ", "), d.Winner)
			return
		}
	}
}
