// Package audio plays the simulation's sound effects through the system
// speaker. Sounds are synthesized, so no asset files are needed.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes effects onto the speaker. It implements core.SoundPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player; call Init before sounds become audible.
func NewPlayer(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
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
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the named effect. Unknown names and an uninitialized
// speaker are ignored.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Effect(name, sampleRate, p.volume)
	if s == nil {
		p.logger.Debug("unknown sound", "name", name)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences every playing effect and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Open returns a working player, or a silent one when the machine has no
// usable audio device. The returned close function is always safe to call.
func Open(logger *log.Logger, volume float64) (core.SoundPlayer, func()) {
	p := NewPlayer(logger, volume)
	if err := p.Init(); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return core.NopSoundPlayer{}, func() {}
	}
	return p, p.Close
}
