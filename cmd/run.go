package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/nav/cli"
	"github.com/grovetools/nav/config"
	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/errors"
	"github.com/grovetools/nav/tui"
	"github.com/grovetools/nav/tui/navigator"
)

// NewRunCmd creates the `run` command
func NewRunCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"run [dataset]",
		"Work through a dataset interactively",
	)
	cmd.Long = `This command launches the interactive navigator over a dataset file.
The dataset path comes from the argument, or from the 'dataset:' key in
nav.yml when the argument is omitted. Progress is written back to the
file with ctrl+s.

Examples:
  # Open the dataset configured in nav.yml
  nav run

  # Open a specific file with group navigation enabled
  nav run backlog.yml --group-nav

  # Pick claims up where another handler left off
  nav run backlog.yml --handler alice --auto-advance

  # Reload automatically when another process edits the file
  nav run backlog.yml --watch`

	cmd.Flags().String("handler", "", "Handler identity for claims (defaults to config, then $USER)")
	cmd.Flags().Bool("group-nav", false, "Allow next/previous to cross group boundaries")
	cmd.Flags().Bool("auto-advance", false, "Claim-and-advance mode: skip items other handlers hold")
	cmd.Flags().Int("group", 0, "1-based group to start at")
	cmd.Flags().Bool("watch", false, "Reload the dataset when the file changes on disk")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := sessionConfig(cmd, args)
		if err != nil {
			return handler.Handle(err)
		}

		if cfg.Path == "" {
			return handler.Handle(errors.DatasetNotFound("(no dataset argument and no 'dataset:' in nav.yml)"))
		}

		doc, err := dataset.Load(cfg.Path)
		if err != nil {
			return handler.Handle(err)
		}
		cfg.Document = doc

		tui.InitializeTUI()
		m, err := navigator.New(cfg)
		if err != nil {
			return handler.Handle(err)
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			return err
		}
		return nil
	}

	return cmd
}

// sessionConfig merges nav.yml with the run flags. Flags win over config,
// config wins over defaults.
func sessionConfig(cmd *cobra.Command, args []string) (navigator.Config, error) {
	opts := cli.GetOptions(cmd)

	var fileCfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		fileCfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			return navigator.Config{}, err
		}
	} else {
		fileCfg, err = config.LoadDefault()
		if err != nil {
			// No nav.yml anywhere is fine; flags and defaults carry the session.
			if errors.GetCode(err) != errors.ErrCodeConfigNotFound {
				return navigator.Config{}, err
			}
			fileCfg = &config.Config{}
			fileCfg.SetDefaults()
		}
	}

	cfg := navigator.Config{
		Handler:         fileCfg.Handler,
		GroupNavigation: fileCfg.GroupNavigation,
		AutoAdvance:     fileCfg.AutoAdvance,
		Path:            fileCfg.Dataset,
	}

	if len(args) > 0 {
		cfg.Path = args[0]
	}
	if cmd.Flags().Changed("handler") {
		cfg.Handler, _ = cmd.Flags().GetString("handler")
	}
	if cmd.Flags().Changed("group-nav") {
		cfg.GroupNavigation, _ = cmd.Flags().GetBool("group-nav")
	}
	if cmd.Flags().Changed("auto-advance") {
		cfg.AutoAdvance, _ = cmd.Flags().GetBool("auto-advance")
	}
	if group, _ := cmd.Flags().GetInt("group"); group > 0 {
		cfg.StartGroup = group - 1
	}
	cfg.Watch, _ = cmd.Flags().GetBool("watch")

	return cfg, nil
}
