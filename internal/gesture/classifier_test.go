package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_DownEmitsNothing(t *testing.T) {
	c := NewClassifier(10)
	res := c.Handle(Down(100, 100), 800)
	assert.Equal(t, SignalNone, res.Signal)
	assert.True(t, c.Session().Active)
	assert.InDelta(t, 100, c.Session().StartY, 0)
}

func TestClassifier_MoveInsideThreshold(t *testing.T) {
	c := NewClassifier(10)
	c.Handle(Down(100, 100), 800)

	for _, y := range []float64{105, 110, 90} {
		res := c.Handle(Move(100, y), 800)
		assert.Equal(t, SignalNone, res.Signal, "y=%v", y)
	}
	assert.False(t, c.Session().Dragging)
}

func TestClassifier_MoveDirections(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		signal   Signal
		progress float64
	}{
		{"down", 500, SignalDragDown, 0.5},
		{"up", 20, SignalDragUp, 0.1},
		{"just past threshold down", 111, SignalDragDown, 11.0 / 800},
		{"just past threshold up", 89, SignalDragUp, 11.0 / 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(10)
			c.Handle(Down(0, 100), 800)
			res := c.Handle(Move(0, tt.y), 800)
			assert.Equal(t, tt.signal, res.Signal)
			assert.InDelta(t, tt.progress, res.Progress, 1e-9)
			assert.True(t, c.Session().Dragging)
		})
	}
}

func TestClassifier_ProgressClampedToOne(t *testing.T) {
	c := NewClassifier(10)
	c.Handle(Down(0, 0), 800)
	res := c.Handle(Move(0, 5000), 800)
	assert.Equal(t, SignalDragDown, res.Signal)
	assert.Equal(t, 1.0, res.Progress)

	res = c.Handle(Move(0, -5000), 800)
	assert.Equal(t, SignalDragUp, res.Signal)
	assert.Equal(t, 1.0, res.Progress)
}

func TestClassifier_ClickInsideThreshold(t *testing.T) {
	c := NewClassifier(10)
	c.Handle(Down(100, 100), 800)
	c.Handle(Move(103, 102), 800)
	res := c.Handle(Up(105, 104), 800)
	assert.Equal(t, SignalClick, res.Signal)
	assert.False(t, c.Session().Active, "session must end on up")
}

func TestClassifier_HorizontalMoveIsNotClick(t *testing.T) {
	c := NewClassifier(10)
	c.Handle(Down(100, 100), 800)
	res := c.Handle(Up(150, 102), 800)
	assert.Equal(t, SignalCancelUp, res.Signal)
}

func TestClassifier_CancelDirection(t *testing.T) {
	tests := []struct {
		name   string
		end    Event
		signal Signal
	}{
		{"up after downward drag", Up(100, 300), SignalCancelDown},
		{"up after upward drag", Up(100, 20), SignalCancelUp},
		{"cancel after downward drag", Cancel(100, 300), SignalCancelDown},
		{"release exactly at threshold below start", Up(100, 110), SignalCancelDown},
		{"release exactly at threshold above start", Up(100, 90), SignalCancelUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(10)
			c.Handle(Down(100, 100), 800)
			c.Handle(Move(100, tt.end.Y), 800)
			res := c.Handle(tt.end, 800)
			assert.Equal(t, tt.signal, res.Signal)
		})
	}
}

func TestClassifier_UpWithoutBaselineIsClick(t *testing.T) {
	c := NewClassifier(10)
	res := c.Handle(Up(400, 400), 800)
	assert.Equal(t, SignalClick, res.Signal)
}

func TestClassifier_MoveWithoutBaselineSetsIt(t *testing.T) {
	c := NewClassifier(10)
	res := c.Handle(Move(0, 300), 800)
	assert.Equal(t, SignalNone, res.Signal)
	assert.True(t, c.Session().Active)
	assert.InDelta(t, 300, c.Session().StartY, 0)

	res = c.Handle(Move(0, 700), 800)
	assert.Equal(t, SignalDragDown, res.Signal)
	assert.InDelta(t, 0.5, res.Progress, 1e-9)
}

func TestClassifier_NewDownReplacesSession(t *testing.T) {
	c := NewClassifier(10)
	c.Handle(Down(0, 0), 800)
	c.Handle(Move(0, 400), 800)
	c.Handle(Down(0, 500), 800)

	s := c.Session()
	assert.InDelta(t, 500, s.StartY, 0)
	assert.False(t, s.Dragging)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 800))
	assert.Equal(t, 0.5, Progress(-400, 800))
	assert.Equal(t, 1.0, Progress(5000, 800))
	assert.Equal(t, 0.5, Progress(400, 0), "non-positive max falls back to default")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.3, Clamp(0.3, 0, 1))
}
