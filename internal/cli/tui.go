package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/castcolor/pkg/casting"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listLeadStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// SolutionListModel - Interactive solution browser
// =============================================================================

// SolutionListModel is the bubbletea model for browsing the solutions of a
// casting instance. The left column lists solutions; the table below shows
// the selected solution role by role.
type SolutionListModel struct {
	Instance  *casting.Instance
	Solutions [][]int
	Cursor    int
	Height    int
	Offset    int

	// Detail toggles the per-role table for the selected solution.
	Detail bool
}

// NewSolutionListModel creates a new solution list model.
func NewSolutionListModel(inst *casting.Instance, solutions [][]int) SolutionListModel {
	return SolutionListModel{
		Instance:  inst,
		Solutions: solutions,
		Height:    10,
		Detail:    true,
	}
}

func (m SolutionListModel) Init() tea.Cmd {
	return nil
}

func (m SolutionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Solutions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Solutions); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = (msg.Height - 8) / 2
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m SolutionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Solutions (%d)", len(m.Solutions))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Solutions) == 0 {
		b.WriteString(listDimStyle.Render("  No solution found"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Solutions))
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s#%-4d %s", cursor, i+1, actorList(m.Solutions[i]))
		if m.Instance.LeadsApart(m.Solutions[i]) {
			line += " " + listLeadStyle.Render("leads apart")
		}
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Detail {
		b.WriteString("\n")
		b.WriteString(m.detailTable())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Solutions))))

	return b.String()
}

// detailTable lists every role of the selected solution with its actor and
// the scenes the role appears in.
func (m SolutionListModel) detailTable() string {
	sol := m.Solutions[m.Cursor]
	rows := make([][]string, len(sol))
	for role, actor := range sol {
		scenes := m.Instance.RoleScenes(role)
		names := make([]string, len(scenes))
		for i, s := range scenes {
			names[i] = strconv.Itoa(s + 1)
		}
		sceneList := strings.Join(names, ", ")
		if sceneList == "" {
			sceneList = "—"
		}
		rows[role] = []string{strconv.Itoa(role + 1), strconv.Itoa(actor + 1), sceneList}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Role", "Actor", "Scenes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1 && isLead(sol[row]):
				return listLeadStyle
			case col == 2:
				return listDimStyle
			}
			return StyleValue
		}).
		Render()
}

// isLead reports whether actor is one of the two leads kept apart by the lead
// filter.
func isLead(actor int) bool {
	return actor == casting.LeadA || actor == casting.LeadB
}

// actorList renders a solution as space-separated 1-indexed actors.
func actorList(sol []int) string {
	parts := make([]string, len(sol))
	for i, a := range sol {
		parts[i] = strconv.Itoa(a + 1)
	}
	return strings.Join(parts, " ")
}
