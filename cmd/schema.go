package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/nav/cli"
	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/logging"
	"github.com/grovetools/nav/schema"
)

// NewSchemaCmd creates the `schema` command
func NewSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"schema [dataset]",
		"Print the dataset JSON Schema, or validate a dataset against it",
	)
	cmd.Long = `Without arguments, prints the embedded JSON Schema that dataset
files are validated against. With a dataset path, validates the file
and reports the result.

Examples:
  # Print the schema
  nav schema

  # Validate a file
  nav schema backlog.yml`

	cmd.Args = cobra.MaximumNArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		if len(args) == 0 {
			fmt.Println(string(schema.EmbeddedSchema()))
			return nil
		}

		doc, err := dataset.Load(args[0])
		if err != nil {
			return handler.Handle(err)
		}

		pretty := logging.NewPrettyLogger()
		pretty.Success("dataset is valid")
		pretty.Path("file", args[0])
		pretty.Field("groups", len(doc.Groups))
		return nil
	}

	return cmd
}
