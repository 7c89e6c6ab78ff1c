package console

import "github.com/charmbracelet/lipgloss"

// palette colors status messages. The zero value prints plain text.
type palette struct {
	enabled bool
}

func (p palette) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func (p palette) success(s string) string { return p.paint("2", s) }
func (p palette) failure(s string) string { return p.paint("1", s) }
func (p palette) option(s string) string  { return p.paint("3", s) }
func (p palette) title(s string) string   { return p.paint("6", s) }
