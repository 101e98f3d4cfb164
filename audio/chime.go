package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeNoteDuration = 120 * time.Millisecond
	chimeVolume       = 0.4
)

// Chime notes: E5, G#5, B5, E6
var chimeNotes = []float64{659.25, 830.61, 987.77, 1318.51}

// Chime plays the win sound. Play must not block the caller.
type Chime interface {
	Play()
	Close()
}

// NopChime is a silent Chime
type NopChime struct{}

func (NopChime) Play()  {}
func (NopChime) Close() {}

// BeepChime plays through the system speaker
type BeepChime struct {
	mu     sync.Mutex
	closed bool
}

// NewBeepChime initializes the speaker. The error is returned so callers can fall back to NopChime.
func NewBeepChime() (*BeepChime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &BeepChime{}, nil
}

func (c *BeepChime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	s, err := WinChime(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *BeepChime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	speaker.Clear()
	speaker.Close()
}

// WinChime returns a short rising arpeggio of sine tones
func WinChime(rate beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	n := rate.N(chimeNoteDuration)
	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", freq, err)
		}
		notes = append(notes, beep.Take(n, tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   math.Log2(chimeVolume),
	}, nil
}
