package main

import (
	"os"

	"github.com/grovetools/nav/cli"
	"github.com/grovetools/nav/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"nav",
		"Traverse and claim work items in grouped datasets",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewDumpCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
