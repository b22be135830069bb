package detection

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"anvil/pkg/detector"
)

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#FF8C42")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")).Bold(true)
	valueStyle   = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C98A5E"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	resultBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF8C42")).
			Padding(1, 2).
			Width(64)
)

type model struct {
	result    detector.DetectionResult
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Stack Detection Results"))
	s.WriteString("\n\n")
	s.WriteString(RenderResult(m.result))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Generate configuration for this project?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(labelStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to continue, "))
	s.WriteString(labelStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(labelStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

// RenderResult renders a detection result as a bordered summary box.
func RenderResult(res detector.DetectionResult) string {
	var content strings.Builder

	if len(res.Languages) > 0 {
		names := make([]string, 0, len(res.Languages))
		for _, l := range res.Languages {
			names = append(names, string(l))
		}
		writeLine(&content, "Languages", strings.Join(names, ", "), "")
	}
	if res.PackageManager != "" {
		source := ""
		if res.InstallCommand != nil {
			source = res.InstallCommand.Source
		}
		writeLine(&content, "Package manager", string(res.PackageManager), source)
	}
	if res.TestFramework != nil {
		writeLine(&content, "Tests", res.TestFramework.Command.Command, res.TestFramework.Command.Source)
	}
	if res.BuildSystem != nil {
		writeLine(&content, "Build", res.BuildSystem.Command.Command, res.BuildSystem.Command.Source)
	}
	for _, l := range res.Linters {
		writeLine(&content, "Lint", l.Command.Command, l.Command.Source)
	}
	if res.CIProvider != "" {
		writeLine(&content, "CI", string(res.CIProvider), "")
	}
	if res.IsMonorepo {
		writeLine(&content, "Monorepo", "yes", "")
	}
	if len(res.Directories) > 0 {
		writeLine(&content, "Directories", strings.Join(res.Directories, ", "), "")
	}

	if content.Len() == 0 {
		content.WriteString(helpStyle.Render("No stack signals found in this directory."))
	}

	return resultBorder.Render(content.String())
}

func writeLine(b *strings.Builder, label, value, source string) {
	b.WriteString(checkStyle.Render("✓ "))
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(valueStyle.Render(value))
	if source != "" {
		b.WriteString(sourceStyle.Render(fmt.Sprintf("  (%s)", source)))
	}
	b.WriteString("\n")
}

// ShowDetectionResults displays the detection summary and asks whether to
// continue with generation.
func ShowDetectionResults(res detector.DetectionResult) (bool, error) {
	m := model{result: res}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing detection results: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}
