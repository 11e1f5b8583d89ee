package media

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

type beepBuilder struct{}

// NewBuilder returns a builder for speaker-backed players.
func NewBuilder() Builder {
	return beepBuilder{}
}

func (beepBuilder) Build() Player {
	return &beepPlayer{state: Idle}
}

type beepPlayer struct {
	mu       sync.Mutex
	state    State
	path     string
	info     *TrackInfo
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

func (p *beepPlayer) SetSource(uri string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Idle && p.state != Source {
		return fmt.Errorf("set source in %s: %w", p.state, ErrInvalidState)
	}
	if !IsMediaFile(uri) {
		return fmt.Errorf("%s: %w", uri, ErrUnsupported)
	}
	p.path = uri
	p.state = Source
	return nil
}

// Prepare opens and decodes the source. Track info is read from tags when
// available.
func (p *beepPlayer) Prepare() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Source {
		return fmt.Errorf("prepare in %s: %w", p.state, ErrInvalidState)
	}

	f, streamer, format, err := openStream(p.path)
	if err != nil {
		return err
	}

	info, err := ReadTrackInfo(p.path)
	if err != nil {
		info = fallbackInfo(p.path)
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	if st, err := f.Stat(); err == nil {
		info.Size = st.Size()
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.info = info
	p.state = Prepared
	return nil
}

func (p *beepPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Prepared:
		if err := initSpeaker(p.format); err != nil {
			return err
		}
		p.ctrl = &beep.Ctrl{Streamer: p.streamer}
		p.state = Playing
		speaker.Play(p.ctrl)
		return nil
	case Paused:
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
		return nil
	default:
		return fmt.Errorf("play in %s: %w", p.state, ErrInvalidState)
	}
}

func (p *beepPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *beepPlayer) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		_ = p.Play()
	default:
		// Nothing to toggle
	}
}

// Release stops playback and frees the decoder. It is safe to call more
// than once.
func (p *beepPlayer) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Released {
		return
	}
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.state = Released
}

func (p *beepPlayer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *beepPlayer) Info() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

func (p *beepPlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	if p.ctrl == nil {
		return p.format.SampleRate.D(p.streamer.Position())
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *beepPlayer) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.info == nil {
		return 0
	}
	return p.info.Duration
}

func initSpeaker(format beep.Format) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	return speakerErr
}
