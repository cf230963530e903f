package terminal

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"termlife/internal/app"
)

const sampleRate = beep.SampleRate(44100)

// Clicker plays a short tone when cells are toggled or the grid is reset.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewClicker creates a silent Clicker. Call Initialize to open the speaker.
func NewClicker(logger *log.Logger) *Clicker {
	return &Clicker{mixer: &beep.Mixer{}, logger: logger}
}

// Initialize opens the audio device. Failure leaves the Clicker silent.
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Observe is an app.Controller observer.
func (c *Clicker) Observe(a app.Action) {
	switch a {
	case app.ActionToggleCell:
		c.play(880, 40*time.Millisecond)
	case app.ActionReset:
		c.play(330, 120*time.Millisecond)
	}
}

func (c *Clicker) play(freq float64, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(beep.Take(sampleRate.N(d), NewClickGenerator(sampleRate, freq)))
	speaker.Unlock()
	if c.logger != nil {
		c.logger.Debug("click", "freq", freq)
	}
}

// ClickGenerator is a sine tone with a fast exponential decay.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click at freq Hz.
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*60)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
