package audio

import (
	"math"
	"sync"
)

const (
	SampleRate = 44100
	BufferSize = 512

	maxVoices = 8
	delaySecs = 0.12
)

// voice is one decaying triangle tone with a downward pitch sweep.
type voice struct {
	freq  float64
	sweep float64 // multiplier applied to freq each second
	amp   float64
	decay float64 // amplitude multiplier per second
	phase float64
}

func (v *voice) done() bool { return v.amp < 1e-4 }

// Synth mixes short percussive voices into a stereo buffer. It has no
// dependency on an audio device so it can be rendered offline.
type Synth struct {
	mu      sync.Mutex
	pending []voice

	voices      []voice
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int
	Volume      float64
}

func NewSynth() *Synth {
	delayLen := int(float64(SampleRate) * delaySecs)
	return &Synth{
		voices:    make([]voice, 0, maxVoices),
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		Volume:    0.3,
	}
}

// Thump queues an impact sound. Stronger hits are lower and louder.
func (s *Synth) Thump(strength float64) {
	strength = math.Max(0, math.Min(strength, 10))
	s.queue(voice{
		freq:  180 - strength*8,
		sweep: 0.3,
		amp:   0.4 + strength*0.06,
		decay: 0.002,
	})
}

// Blip queues a short high tone for pickups and spawns.
func (s *Synth) Blip(freq float64) {
	s.queue(voice{freq: freq, sweep: 1.5, amp: 0.25, decay: 1e-6})
}

// Fanfare queues a falling pair of tones for the end of a round.
func (s *Synth) Fanfare() {
	s.queue(voice{freq: 330, sweep: 0.5, amp: 0.35, decay: 0.05})
	s.queue(voice{freq: 220, sweep: 0.5, amp: 0.35, decay: 0.02})
}

func (s *Synth) queue(v voice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, v)
}

// Active reports how many voices are still sounding.
func (s *Synth) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices) + len(s.pending)
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one pole low pass filter.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Render fills a stereo buffer. It is the stream callback and holds the lock
// for the whole buffer, so queueing a sound waits at most one buffer.
func (s *Synth) Render(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.pending {
		if len(s.voices) == maxVoices {
			s.voices = s.voices[1:]
		}
		s.voices = append(s.voices, v)
	}
	s.pending = s.pending[:0]

	dt := 1.0 / float64(SampleRate)
	steps := make([][2]float64, len(s.voices))
	for j, v := range s.voices {
		steps[j] = [2]float64{math.Pow(v.sweep, dt), math.Pow(v.decay, dt)}
	}

	for i := range out[0] {
		sample := 0.0
		for j := range s.voices {
			v := &s.voices[j]
			sample += triangle(v.phase) * v.amp
			v.phase += v.freq * dt
			v.freq *= steps[j][0]
			v.amp *= steps[j][1]
		}

		var mix [2]float64
		for ch := range mix {
			s.filterState[ch] = lpf(sample, 1800, dt, s.filterState[ch])
			echo := s.delayLine[1-ch][s.delayHead]
			mix[ch] = s.filterState[ch] + echo*0.25
			s.delayLine[ch][s.delayHead] = mix[ch] * 0.4
		}
		s.delayHead = (s.delayHead + 1) % len(s.delayLine[0])

		for ch := range out {
			out[ch][i] = float32(clip(mix[ch%2] * s.Volume))
		}
	}

	live := s.voices[:0]
	for _, v := range s.voices {
		if !v.done() {
			live = append(live, v)
		}
	}
	s.voices = live
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
