package styles

import "github.com/charmbracelet/lipgloss"

// FrameStyle returns the rounded player frame. The border color moves from
// the resting color to the focus color as emphasis goes from 0 to 1.
func FrameStyle(emphasis float64) lipgloss.Style {
	t := T()
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blend(t.Border, t.BorderFocus, emphasis))
}
