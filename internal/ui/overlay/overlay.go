// Package overlay places rendered boxes on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceAt draws box on top of base with its top-left corner at column x,
// row y. The base is padded to width where the box needs it. Box lines that
// fall outside the base are dropped and box columns past width are cut.
// Both inputs may carry ANSI styling.
func PlaceAt(base, box string, x, y, width int) string {
	if box == "" || width <= 0 {
		return base
	}
	x = max(x, 0)
	if x >= width {
		return base
	}

	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		boxWidth := ansi.StringWidth(boxLine)
		end := min(x+boxWidth, width)
		if end < x+boxWidth {
			boxLine = ansi.Cut(boxLine, 0, end-x)
		}

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < end {
			baseLine += strings.Repeat(" ", end-w)
		}

		result := ansi.Cut(baseLine, 0, x) + boxLine
		if rest := ansi.StringWidth(baseLine); end < rest {
			result += ansi.Cut(baseLine, end, rest)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		baseLines[i] = PlaceAt(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, 0, width)
	}

	return strings.Join(baseLines, "\n")
}
