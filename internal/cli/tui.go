package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lowent/netforge/pkg/hierarchy"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// HierarchyModel - Interactive hierarchy browser
// =============================================================================

// hierarchyRow is one browsable entry: a named node with its expanded
// instance count and the scopes that instantiate it.
type hierarchyRow struct {
	Name    string
	Kind    hierarchy.Kind
	Count   int
	Parents []string
}

// HierarchyModel is the bubbletea model for browsing the instantiation
// hierarchy of a circuit.
type HierarchyModel struct {
	Title  string
	Rows   []hierarchyRow
	Cursor int
	Height int
	Offset int
}

// NewHierarchyModel builds the browser over a hierarchy graph. Rows are
// subcircuits first, then devices, each group in graph insertion order.
func NewHierarchyModel(title string, g *hierarchy.Graph) HierarchyModel {
	counts := g.CountInstances()

	parents := map[string][]string{}
	for _, e := range g.Edges() {
		parents[e.To] = append(parents[e.To], e.From)
	}

	var subs, devs []hierarchyRow
	for _, n := range g.Nodes() {
		if n.Kind == hierarchy.KindRoot {
			continue
		}
		row := hierarchyRow{
			Name:    n.ID,
			Kind:    n.Kind,
			Count:   counts[n.ID],
			Parents: parents[n.ID],
		}
		if n.Kind == hierarchy.KindSubcircuit {
			subs = append(subs, row)
		} else {
			devs = append(devs, row)
		}
	}

	return HierarchyModel{
		Title:  title,
		Rows:   append(subs, devs...),
		Height: 15,
	}
}

func (m HierarchyModel) Init() tea.Cmd {
	return nil
}

func (m HierarchyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m HierarchyModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Circuit Hierarchy"))
	if m.Title != "" {
		b.WriteString(listDimStyle.Render("  " + m.Title))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		kind := "device"
		if r.Kind == hierarchy.KindSubcircuit {
			kind = "subcircuit"
		}

		from := "—"
		if len(r.Parents) > 0 {
			from = strings.Join(r.Parents, ", ")
		}

		rows = append(rows, []string{cursor, r.Name, kind, fmt.Sprintf("%d", r.Count), from})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Kind", "Instances", "Instantiated by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[actualIdx]

			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return StyleNumber
			}
			if r.Kind == hierarchy.KindSubcircuit && col == 1 {
				return StyleHighlight
			}
			if col == 4 {
				return listDimStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
