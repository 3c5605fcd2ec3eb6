package feedback

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hitStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	presentStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	missStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236"))
)

// Render draws guess as colored tiles according to p.
// Returns guess unchanged if its length is wrong.
func Render(guess string, p Pattern) string {
	if len(guess) != len(p) {
		return guess
	}
	var b strings.Builder
	for i, m := range p.Marks() {
		tile := strings.ToUpper(guess[i : i+1])
		switch m {
		case MarkHit:
			b.WriteString(hitStyle.Render(tile))
		case MarkPresent:
			b.WriteString(presentStyle.Render(tile))
		default:
			b.WriteString(missStyle.Render(tile))
		}
	}
	return b.String()
}
