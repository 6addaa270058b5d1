package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/nav/cli"
	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/nav"
	"github.com/grovetools/nav/tui/theme"
)

// NewDumpCmd creates the `dump` command
func NewDumpCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"dump <dataset>",
		"Print a dataset's items and their progress",
	)
	cmd.Long = `Prints every group and item in the dataset with its state and
handler claims. Useful for checking progress from scripts or before
handing a dataset to someone else.

Examples:
  # Human-readable progress listing
  nav dump backlog.yml

  # Machine-readable output
  nav dump backlog.yml --json`

	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		doc, err := dataset.Load(args[0])
		if err != nil {
			return handler.Handle(err)
		}

		if opts.JSONOutput {
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		printDocument(doc)
		return nil
	}

	return cmd
}

func printDocument(doc *dataset.Document) {
	t := theme.DefaultTheme
	names := doc.GroupNames()

	for gi, group := range doc.Groups {
		done := 0
		for i := range group.Items {
			if group.Items[i].State == nav.StateCompleted {
				done++
			}
		}
		fmt.Printf("%s %s\n", t.Title.Render(names[gi]), t.Muted.Render(fmt.Sprintf("(%d/%d completed)", done, len(group.Items))))

		for i := range group.Items {
			item := &group.Items[i]
			line := fmt.Sprintf("  %s #%-4d %s", stateLabel(t, item.State), item.ID, item.Name)
			if len(item.Handlers) > 0 {
				line += t.Accent.Render(" [" + strings.Join(item.Handlers, ", ") + "]")
			}
			fmt.Println(line)
		}
	}
}

func stateLabel(t *theme.Theme, s nav.State) string {
	switch s {
	case nav.StateCompleted:
		return t.Success.Render("done")
	case nav.StateViewed:
		return t.Warning.Render("view")
	default:
		return t.Muted.Render("open")
	}
}
