package navigator

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the navigator TUI.
type KeyMap struct {
	Next          key.Binding
	Previous      key.Binding
	NextPage      key.Binding
	PreviousPage  key.Binding
	Continue      key.Binding
	Jump          key.Binding
	Complete      key.Binding
	Reset         key.Binding
	ResetGroup    key.Binding
	ResetAll      key.Binding
	ReleaseGroup  key.Binding
	ReleaseAll    key.Binding
	ToggleAuto    key.Binding
	ToggleGroups  key.Binding
	Save          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the default set of keybindings.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("down", "j", "n"),
		key.WithHelp("↓/j/n", "next item"),
	),
	Previous: key.NewBinding(
		key.WithKeys("up", "k", "p"),
		key.WithHelp("↑/k/p", "previous item"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "]"),
		key.WithHelp("→/]", "next group"),
	),
	PreviousPage: key.NewBinding(
		key.WithKeys("left", "h", "["),
		key.WithHelp("←/[", "previous group"),
	),
	Continue: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "continue in group"),
	),
	Jump: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start at group..."),
	),
	Complete: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "mark complete"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset item"),
	),
	ResetGroup: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset group"),
	),
	ResetAll: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset everything"),
	),
	ReleaseGroup: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "release my claims in group"),
	),
	ReleaseAll: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "release my claims everywhere"),
	),
	ToggleAuto: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle auto-advance"),
	),
	ToggleGroups: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "toggle group navigation"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save dataset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings to be shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Complete, k.Continue, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.NextPage, k.PreviousPage},
		{k.Continue, k.Jump, k.Complete, k.Save},
		{k.Reset, k.ResetGroup, k.ResetAll, k.ReleaseGroup, k.ReleaseAll},
		{k.ToggleAuto, k.ToggleGroups, k.Help, k.Quit},
	}
}
