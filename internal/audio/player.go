package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/nagapatha/internal/engine"
)

// Player plays cues through a shared mixer. A Player that was never
// initialized, or whose speaker failed to open, ignores Play.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. A nil logger discards output.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   DefaultSampleRate,
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Enabled reports whether cues will be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer.
func (p *Player) Play(cue engine.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(cue, p.volume, p.rate)
	if s == nil {
		p.logger.Warn("unknown sound cue", "cue", cue)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
