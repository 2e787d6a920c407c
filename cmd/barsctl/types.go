package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edubars/barskema/records"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered record types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range records.Names() {
			s := records.Registry[name]
			if _, err := fmt.Fprintf(w, "%-26s %-24s %s\n", name, s.Name(), strings.Join(s.FieldNames(), ", ")); err != nil {
				return err
			}
		}
		return nil
	},
}
