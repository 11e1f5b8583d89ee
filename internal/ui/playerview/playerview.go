// Package playerview renders the player into a rectangle of any size. The
// layout degrades from the full view to the mini box to a single-line bar as
// the rectangle shrinks, so interpolated rects during a transition render
// sensibly.
package playerview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/miniplayer/internal/media"
	"github.com/llehouerou/miniplayer/internal/ui/render"
	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

const (
	// BarHeight is the height of the collapsed bar including its border.
	BarHeight = 3
	// fullMinHeight is the smallest height that gets the full layout.
	fullMinHeight = 12
	fullMinWidth  = 30
)

// State holds everything needed to render the player.
type State struct {
	Playing  bool
	Paused   bool
	Title    string
	Artist   string
	Album    string
	Year     int
	Size     int64
	Position time.Duration
	Duration time.Duration
	Label    string  // current player state, shown in the full layout
	Hint     string  // gesture help, shown in the full layout
	Status   string  // last error, if any
	Emphasis float64 // frame highlight in [0,1]
}

// NewState constructs a State from the media player.
func NewState(p media.Player) State {
	info := p.Info()
	if info == nil {
		return State{Title: "No media"}
	}
	return State{
		Playing:  p.State() == media.Playing,
		Paused:   p.State() == media.Paused,
		Title:    info.Title,
		Artist:   info.Artist,
		Album:    info.Album,
		Year:     info.Year,
		Size:     info.Size,
		Position: p.Position(),
		Duration: p.Duration(),
	}
}

// Render returns the player drawn into exactly width by height cells.
func Render(s State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 || height < BarHeight {
		return render.Block([]string{render.Fit(s.title(), width)}, width, height)
	}

	innerW, innerH := width-2, height-2

	var lines []string
	switch {
	case height == BarHeight:
		lines = []string{barLine(s, innerW)}
	case height >= fullMinHeight && width >= fullMinWidth:
		lines = fullLines(s, innerW, innerH)
	default:
		lines = miniLines(s, innerW)
	}

	body := render.Block(lines, innerW, innerH)
	return styles.FrameStyle(s.Emphasis).Render(body)
}

func (s State) title() string {
	if s.Title == "" {
		return "Unknown Track"
	}
	return s.Title
}

func (s State) status() string {
	if s.Paused {
		return pauseSymbol
	}
	if s.Playing {
		return playSymbol
	}
	return stopSymbol
}

// barLine renders the single-line collapsed layout:
// ▶ Title · Artist          1:23 / 3:58
func barLine(s State, width int) string {
	st := styles.T().S()

	timeStr := formatDuration(s.Position) + " / " + formatDuration(s.Duration)
	left := s.title()
	if s.Artist != "" {
		left += " · " + s.Artist
	}

	leftWidth := width - len(timeStr) - 3
	if leftWidth < 8 {
		return st.Title.Render(render.Fit(s.status()+" "+left, width))
	}
	return render.Row(
		st.Playing.Render(s.status())+" "+st.Title.Render(render.Truncate(left, leftWidth)),
		st.Muted.Render(timeStr),
		width,
	)
}

func miniLines(s State, width int) []string {
	t := styles.T()
	st := t.S()
	lines := []string{
		styles.ApplyGradient(render.Fit(s.title(), width), t.Primary, t.Secondary),
		st.Muted.Render(render.Fit(s.Artist, width)),
		RenderProgressBar(s.Position, s.Duration, width, s.status()),
	}
	if s.Status != "" {
		lines = append(lines, st.Error.Render(render.Fit(s.Status, width)))
	}
	return lines
}

func fullLines(s State, width, height int) []string {
	t := styles.T()
	st := t.S()

	title := render.Truncate(s.title(), width)
	meta := []string{
		render.Center(styles.ApplyBoldGradient(title, t.Primary, t.Secondary), width),
		render.Center(st.Base.Render(render.Truncate(s.Artist, width)), width),
	}
	if album := albumLine(s); album != "" {
		meta = append(meta, render.Center(st.Muted.Render(render.Truncate(album, width)), width))
	}
	if s.Size > 0 {
		meta = append(meta, render.Center(st.Subtle.Render(humanize.Bytes(uint64(s.Size))), width))
	}

	bar := RenderProgressBar(s.Position, s.Duration, min(width, 60), s.status())
	meta = append(meta, "", render.Center(bar, width))

	footer := []string{}
	if s.Status != "" {
		footer = append(footer, st.Error.Render(render.Truncate(s.Status, width)))
	}
	if s.Hint != "" || s.Label != "" {
		footer = append(footer, render.Row(
			st.Subtle.Render(render.Truncate(s.Hint, max(width-len(s.Label)-1, 0))),
			st.Muted.Render(s.Label),
			width,
		))
	}

	// Vertically centre the metadata, keep the footer on the last rows.
	top := max((height-len(meta)-len(footer))/2, 0)
	lines := make([]string, 0, height)
	for range top {
		lines = append(lines, "")
	}
	lines = append(lines, meta...)
	for len(lines) < height-len(footer) {
		lines = append(lines, "")
	}
	return append(lines, footer...)
}

func albumLine(s State) string {
	var parts []string
	if s.Album != "" {
		parts = append(parts, s.Album)
	}
	if s.Year > 0 {
		parts = append(parts, strconv.Itoa(s.Year))
	}
	return strings.Join(parts, " · ")
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
