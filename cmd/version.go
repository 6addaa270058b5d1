package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/nav/cli"
	"github.com/grovetools/nav/version"
)

// NewVersionCmd creates the `version` command
func NewVersionCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"version",
		"Print version information",
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()

		opts := cli.GetOptions(cmd)
		if opts.JSONOutput {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(info.String())
		return nil
	}

	return cmd
}
