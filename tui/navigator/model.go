// Package navigator is the interactive front end over the nav core: it maps
// keybindings onto Navigator operations and renders the dataset with the
// cursor, item states, and handler lists. It performs no traversal logic
// itself.
package navigator

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/logging"
	"github.com/grovetools/nav/nav"
	"github.com/grovetools/nav/tui/theme"
)

// Config describes a navigator session.
type Config struct {
	Document *dataset.Document
	Path     string // dataset file path, used for save and watch
	Handler  string

	GroupNavigation bool
	AutoAdvance     bool
	StartGroup      int  // 0-based starting group
	Watch           bool // reload the dataset when the file changes
}

// Model is the bubbletea model for the navigator TUI.
type Model struct {
	nav    *nav.Navigator
	doc    *dataset.Document
	path   string
	watch  bool

	keys   KeyMap
	help   help.Model
	jump   textinput.Model
	events *statusObserver
	theme  *theme.Theme

	jumping bool
	status  string
	width   int
	height  int

	reloads   <-chan reloadMsg
	watchDone chan struct{}
}

// statusObserver captures the core's informational notifications for the
// status line.
type statusObserver struct {
	last string
}

func (s *statusObserver) NoMove(reason string) {
	s.last = reason
}

func (s *statusObserver) ItemCompleted(item *nav.Item) {
	s.last = fmt.Sprintf("item %d marked completed", item.ID)
}

// New builds the TUI model and its Navigator over the given document.
func New(cfg Config) (*Model, error) {
	events := &statusObserver{}
	n, err := newNavigator(cfg, events)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "group number"
	ti.CharLimit = 6
	ti.Width = 12

	m := &Model{
		nav:    n,
		doc:    cfg.Document,
		path:   cfg.Path,
		watch:  cfg.Watch,
		keys:   DefaultKeyMap,
		help:   help.New(),
		jump:   ti,
		events: events,
		theme:  theme.DefaultTheme,
	}

	if cfg.Watch && cfg.Path != "" {
		m.watchDone = make(chan struct{})
		ch, err := watchDataset(cfg.Path, m.watchDone)
		if err != nil {
			return nil, err
		}
		m.reloads = ch
	}

	return m, nil
}

// stopWatch shuts the dataset watcher goroutine down. Safe to call more than
// once and without a watcher running.
func (m *Model) stopWatch() {
	if m.watchDone != nil {
		close(m.watchDone)
		m.watchDone = nil
	}
}

func newNavigator(cfg Config, events nav.Observer) (*nav.Navigator, error) {
	n, err := nav.New(cfg.Document.ToNav(), cfg.Handler,
		nav.WithGroupNavigation(cfg.GroupNavigation),
		nav.WithAutoAdvance(cfg.AutoAdvance),
		nav.WithObserver(nav.Observers(events, logging.NewObserver("navigator"))),
	)
	if err != nil {
		return nil, err
	}
	if cfg.StartGroup != 0 {
		if err := n.Start(cfg.StartGroup); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Navigator exposes the underlying engine, mainly for tests.
func (m *Model) Navigator() *nav.Navigator {
	return m.nav
}

// Init is the first command that will be executed.
func (m *Model) Init() tea.Cmd {
	if m.reloads != nil {
		return waitForReload(m.reloads)
	}
	return nil
}
