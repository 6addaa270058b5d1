package navigator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/nav/nav"
)

// View renders the navigator: a group tab row, the current group's items
// with state glyphs and handler lists, and a status/help footer.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("NAV"))
	b.WriteString("  ")
	b.WriteString(m.theme.Muted.Render(m.settingsLine()))
	b.WriteString("\n\n")

	b.WriteString(m.groupTabs())
	b.WriteString("\n\n")

	b.WriteString(m.itemList())
	b.WriteString("\n")

	if m.jumping {
		b.WriteString(m.theme.Accent.Render("start at group: "))
		b.WriteString(m.jump.View())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.theme.Warning.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) settingsLine() string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("handler=%s  auto-advance=%s  group-nav=%s",
		m.nav.Handler(), onOff(m.nav.AutoAdvance()), onOff(m.nav.GroupNavigation()))
}

func (m *Model) groupTabs() string {
	names := m.doc.GroupNames()
	currentGroup, _ := m.nav.Cursor()

	tabs := make([]string, len(names))
	for i, name := range names {
		label := fmt.Sprintf(" %s (%d) ", name, m.groupCompleted(i))
		if i == currentGroup {
			tabs[i] = m.theme.Selected.Render(label)
		} else {
			tabs[i] = m.theme.Muted.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// groupCompleted counts completed items in group i.
func (m *Model) groupCompleted(i int) int {
	count := 0
	for _, item := range m.nav.Data()[i] {
		if item.State == nav.StateCompleted {
			count++
		}
	}
	return count
}

func (m *Model) itemList() string {
	group := m.nav.CurrentGroup()
	_, currentItem := m.nav.Cursor()

	// Window the list around the cursor when the terminal is short.
	visible := len(group)
	if m.height > 0 {
		// header, tabs, status, and help rows eat roughly eight lines
		if max := m.height - 8; max > 0 && max < visible {
			visible = max
		}
	}
	offset := 0
	if currentItem >= visible {
		offset = currentItem - visible + 1
	}

	var rows []string
	for i := offset; i < offset+visible && i < len(group); i++ {
		rows = append(rows, m.itemRow(group[i], i == currentItem))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) itemRow(item *nav.Item, selected bool) string {
	glyph := m.stateGlyph(item.State)

	name := item.Name
	if name == "" {
		name = fmt.Sprintf("item %d", item.ID)
	}

	handlers := ""
	if len(item.Handlers) > 0 {
		handlers = m.theme.Accent.Render(" [" + strings.Join(item.Handlers, ", ") + "]")
	}

	cursor := "  "
	row := fmt.Sprintf("%s %s #%-4d %s%s", cursor, glyph, item.ID, name, handlers)
	if selected {
		row = fmt.Sprintf("%s %s #%-4d %s%s", "❯ ", glyph, item.ID, name, handlers)
		return m.theme.Selected.Render(row)
	}
	return row
}

func (m *Model) stateGlyph(state nav.State) string {
	switch state {
	case nav.StateCompleted:
		return m.theme.Success.Render("●")
	case nav.StateViewed:
		return m.theme.Warning.Render("◐")
	default:
		return m.theme.Muted.Render("○")
	}
}
