package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/hexnight/sysreg"
)

type tableRow struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	Encoding string `yaml:"encoding" json:"encoding"`
}

type duplicateRow struct {
	Key    string   `yaml:"key" json:"key"`
	Names  []string `yaml:"names" json:"names"`
	Winner string   `yaml:"winner" json:"winner"`
}

func hexKey(k sysreg.Key) string {
	return fmt.Sprintf("0x%04x", uint16(k))
}

func tableRows(t *sysreg.Table) []tableRow {
	return lo.Map(t.Keys(), func(k sysreg.Key, _ int) tableRow {
		name, _ := t.Lookup(k)
		return tableRow{Key: hexKey(k), Name: name, Encoding: k.String()}
	})
}

func duplicateRows(t *sysreg.Table) []duplicateRow {
	return lo.Map(t.Duplicates(), func(d sysreg.Duplicate, _ int) duplicateRow {
		return duplicateRow{Key: hexKey(d.Key), Names: d.Names, Winner: d.Winner}
	})
}

func newTableCmd(a *app) *cobra.Command {
	var duplicates bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the system register table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := sysreg.Default()
			format := a.cfg.GetString(keyFormat)

			var data any = tableRows(t)
			if duplicates {
				data = duplicateRows(t)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				if duplicates {
					writeDuplicates(out, duplicateRows(t))
				} else {
					writeRows(out, tableRows(t))
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(data); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(data); err != nil {
					return fmt.Errorf("failed to encode json: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("invalid format %q", format)
			}
		},
	}

	cmd.Flags().String(keyFormat, "text", "output format: text, yaml or json")
	cmd.Flags().BoolVar(&duplicates, "duplicates", false, "list keys with more than one name")
	cobra.CheckErr(a.cfg.BindPFlag(keyFormat, cmd.Flags().Lookup(keyFormat)))

	return cmd
}

func writeRows(w io.Writer, rows []tableRow) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %-24s %s\n", r.Key, r.Name, r.Encoding)
	}
}

func writeDuplicates(w io.Writer, rows []duplicateRow) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %v -> %s\n", r.Key, r.Names, r.Winner)
	}
}
