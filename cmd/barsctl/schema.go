package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edubars/barskema/jsonschema"
	"github.com/edubars/barskema/records"
)

var schemaType string

var schemaCmd = &cobra.Command{
	Use:   "schema --type T",
	Short: "Print the JSON Schema of a record type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := records.Lookup(schemaType)
		if err != nil {
			return err
		}
		js, err := s.JSONSchema()
		if err != nil {
			return fmt.Errorf("schema %s: %w", schemaType, err)
		}
		return write(cmd.OutOrStdout(), jsonschema.Document(js))
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaType, "type", "", "record type (see barsctl types)")
	_ = schemaCmd.MarkFlagRequired("type")
}
