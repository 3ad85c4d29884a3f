package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/dataviews/pkg/stack"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StackListModel - Interactive stack entry browser
// =============================================================================

// entryRow is one displayable stack entry.
type entryRow struct {
	key   string
	title string
	kind  string
	xlim  string
	ylim  string
}

// StackListModel is the bubbletea model for browsing stack entries.
type StackListModel struct {
	Title   string
	Entries []entryRow
	Cursor  int
	Height  int
	Offset  int
}

// NewStackListModel creates a browser model over a stack's entries.
func NewStackListModel(title string, s *stack.Stack) StackListModel {
	entries := make([]entryRow, 0, s.Len())
	for _, it := range s.Items() {
		x, y := it.View.XLim(), it.View.YLim()
		entries = append(entries, entryRow{
			key:   fmt.Sprint(it.Key),
			title: strings.ReplaceAll(it.View.Axes().Title, "\n", " "),
			kind:  it.View.Kind().String(),
			xlim:  fmt.Sprintf("[%g, %g]", x.Min, x.Max),
			ylim:  fmt.Sprintf("[%g, %g]", y.Min, y.Max),
		})
	}
	return StackListModel{Title: title, Entries: entries, Height: 15}
}

func (m StackListModel) Init() tea.Cmd {
	return nil
}

func (m StackListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StackListModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = "Browse Entries"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.key, e.kind, e.title, e.xlim, e.ylim})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Key", "Kind", "Title", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 4 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
