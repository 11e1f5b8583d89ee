package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/miniplayer/internal/ui/testutil"
)

func grid(rows, cols int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", cols)
	}
	return strings.Join(lines, "\n")
}

func TestPlaceAt(t *testing.T) {
	tests := []struct {
		name string
		base string
		box  string
		x, y int
		want string
	}{
		{
			name: "inside",
			base: grid(3, 6),
			box:  "ab\ncd",
			x:    2, y: 1,
			want: "......\n..ab..\n..cd..",
		},
		{
			name: "clipped right",
			base: grid(2, 6),
			box:  "abcd",
			x:    4, y: 0,
			want: "....ab\n......",
		},
		{
			name: "clipped bottom",
			base: grid(2, 4),
			box:  "ab\ncd\nef",
			x:    0, y: 1,
			want: "....\nab..",
		},
		{
			name: "negative row skipped",
			base: grid(2, 4),
			box:  "ab\ncd",
			x:    1, y: -1,
			want: ".cd.\n....",
		},
		{
			name: "short base padded",
			base: "..\n..",
			box:  "xy",
			x:    3, y: 1,
			want: "..\n.. xy",
		},
		{
			name: "x past width ignored",
			base: grid(1, 4),
			box:  "xy",
			x:    9, y: 0,
			want: "....",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceAt(tt.base, tt.box, tt.x, tt.y, 6))
		})
	}
}

func TestPlaceAt_StyledContent(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	base := style.Render("......") + "\n" + style.Render("......")

	got := PlaceAt(base, style.Render("xy"), 2, 1, 6)

	lines := strings.Split(testutil.StripANSI(got), "\n")
	assert.Equal(t, []string{"......", "..xy.."}, lines)
	assert.Equal(t, 6, testutil.MeasureWidth(strings.Split(got, "\n")[1]))
}

func TestCompose_SkipsBlankLines(t *testing.T) {
	got := Compose(grid(3, 5), "     \n  x  \n", 5)

	assert.Equal(t, ".....\n..x..\n.....", got)
}
