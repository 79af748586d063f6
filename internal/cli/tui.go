package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LogoListModel - Interactive logo selection
// =============================================================================

// LogoListModel is the bubbletea model for interactive logo selection.
type LogoListModel struct {
	Names    []string
	Dir      string
	Files    map[string]string
	Cursor   int
	Selected string
}

// NewLogoListModel creates a new logo list model.
func NewLogoListModel(names []string, dir string, files map[string]string) LogoListModel {
	return LogoListModel{Names: names, Dir: dir, Files: files}
}

func (m LogoListModel) Init() tea.Cmd {
	return nil
}

func (m LogoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Names[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LogoListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Logo"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, name := range m.Names {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		path := filepath.Join(m.Dir, m.Files[name])
		onDisk := fileExists(path)
		var status string
		if onDisk {
			status = StyleSuccess.Render("*")
		} else {
			status = StyleWarning.Render("!")
		}

		line := fmt.Sprintf("%s%s %-20s  %s", cursor, status, name, listDimStyle.Render(m.Files[name]))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if !onDisk {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s on disk   %s missing file\n",
		StyleSuccess.Render("*"), StyleWarning.Render("!")))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
