package navigator

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/nav/dataset"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case reloadMsg:
		m.applyReload(msg)
		return m, waitForReload(m.reloads)

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// applyReload swaps in a freshly loaded dataset, rebuilding the navigator
// with the current modes. The cursor returns to the starting group.
func (m *Model) applyReload(msg reloadMsg) {
	if msg.err != nil {
		m.status = fmt.Sprintf("reload failed: %v", msg.err)
		return
	}
	n, err := newNavigator(Config{
		Document:        msg.doc,
		Handler:         m.nav.Handler(),
		GroupNavigation: m.nav.GroupNavigation(),
		AutoAdvance:     m.nav.AutoAdvance(),
	}, m.events)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.doc = msg.doc
	m.nav = n
	m.status = "dataset reloaded from disk"
}

func (m *Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.jumping = false
		value := m.jump.Value()
		m.jump.Reset()
		group, err := strconv.Atoi(value)
		if err != nil {
			m.status = fmt.Sprintf("not a group number: %q", value)
			return m, nil
		}
		// The prompt is 1-based like the rendered group labels.
		if err := m.nav.Start(group - 1); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("started at group %d", group)
		return m, nil
	case tea.KeyEsc:
		m.jumping = false
		m.jump.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.events.last = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		if m.nav.NextItem() {
			m.status = ""
		}

	case key.Matches(msg, m.keys.Previous):
		if m.nav.PreviousItem() {
			m.status = ""
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.nav.NextPage() {
			m.status = ""
		}

	case key.Matches(msg, m.keys.PreviousPage):
		if m.nav.PreviousPage() {
			m.status = ""
		}

	case key.Matches(msg, m.keys.Continue):
		if m.nav.ContinueItem() {
			m.status = "resumed first open item in group"
		}

	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.nav.MarkCurrentItemComplete()

	case key.Matches(msg, m.keys.Reset):
		m.nav.ResetCurrentItem()
		m.status = "current item reset"

	case key.Matches(msg, m.keys.ResetGroup):
		m.nav.ResetCurrentGroup()
		m.status = "current group reset"

	case key.Matches(msg, m.keys.ResetAll):
		m.nav.ResetAll()
		m.status = "all items reset"

	case key.Matches(msg, m.keys.ReleaseGroup):
		m.nav.ResetCurrentGroupOwn()
		m.status = "released my claims in this group"

	case key.Matches(msg, m.keys.ReleaseAll):
		m.nav.ResetAllOwn()
		m.status = "released my claims everywhere"

	case key.Matches(msg, m.keys.ToggleAuto):
		if m.nav.ToggleAutoAdvance() {
			m.status = "auto-advance on"
		} else {
			m.status = "auto-advance off"
		}

	case key.Matches(msg, m.keys.ToggleGroups):
		if m.nav.ToggleGroupNavigation() {
			m.status = "group navigation on"
		} else {
			m.status = "group navigation off"
		}

	case key.Matches(msg, m.keys.Save):
		if m.path == "" {
			m.status = "no dataset path to save to"
			break
		}
		if err := dataset.Save(m.doc, m.path); err != nil {
			m.status = err.Error()
		} else {
			m.status = "dataset saved"
		}
	}

	if m.events.last != "" {
		m.status = m.events.last
	}
	return m, nil
}
