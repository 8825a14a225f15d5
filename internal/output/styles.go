package output

import "github.com/charmbracelet/lipgloss"

var (
	// HeadingStyle renders section headings.
	HeadingStyle = lipgloss.NewStyle().Bold(true)

	// NameStyle renders component and package names.
	NameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	// MutedStyle renders secondary details such as file lists.
	MutedStyle = lipgloss.NewStyle().Faint(true)

	// WarnStyle renders warnings.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Check returns a check mark for true and a dash for false.
func Check(b bool) string {
	if b {
		return "✓"
	}
	return "-"
}
