package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/fruitmerge/ecs/component"
)

const sampleRate = beep.SampleRate(44100)

const popDuration = 140 * time.Millisecond

// soundBoard plays a short pop for every merge. Its methods are no-ops until
// Init succeeds, so a machine without audio still runs the viewer.
type soundBoard struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func newSoundBoard() *soundBoard {
	return &soundBoard{mixer: &beep.Mixer{}}
}

func (s *soundBoard) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Pop plays the merge sound for tier. Bigger fruit pop lower.
func (s *soundBoard) Pop(tier component.Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(popDuration), newPopGenerator(sampleRate, popFrequency(tier))))
	speaker.Unlock()
}

func (s *soundBoard) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}

// popFrequency drops a whole tone per tier from 880Hz.
func popFrequency(tier component.Tier) float64 {
	return 880 * math.Pow(2, -float64(tier)/6)
}

// popGenerator is a sine that sweeps down while it decays.
type popGenerator struct {
	sr     beep.SampleRate
	freq   float64
	phase  float64
	pos    int
	length int
}

func newPopGenerator(sr beep.SampleRate, freq float64) *popGenerator {
	return &popGenerator{sr: sr, freq: freq, length: sr.N(popDuration)}
}

func (g *popGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.freq * (1 - 0.4*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		v := 0.3 * math.Exp(-5*progress) * math.Sin(g.phase)
		samples[i][0], samples[i][1] = v, v
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error {
	return nil
}
