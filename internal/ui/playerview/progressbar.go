package playerview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"

	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶ 1:23 ▓▓▓▓▓░░░░░ 4:56
func RenderProgressBar(position, duration time.Duration, width int, status string) string {
	posStr := formatDuration(position)
	durStr := formatDuration(duration)

	fixedWidth := lipgloss.Width(status) + 1 + len(posStr) + 1 + 1 + len(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		short := status + " " + posStr
		if lipgloss.Width(short) > width {
			return ""
		}
		return short
	}

	filled := filledCells(position, duration, barWidth)
	t := styles.T()
	bar := lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat(filledBlock, filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat(emptyBlock, barWidth-filled))

	return status + " " + posStr + " " + bar + " " + durStr
}

func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
