package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave whose pitch glides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	duration      int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

func newOscillator(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with a short linear attack and an exponential tail.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64
	sr       beep.SampleRate
}

func newDecay(s beep.Streamer, attack time.Duration, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: sr.N(attack), rate: rate, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// marchNotes are the four descending bass notes of the fleet's march.
var marchNotes = [4]float64{98, 87.3, 77.8, 73.4}

// Effect builds the streamer of a named simulation sound, or nil when the
// name is unknown. Every effect ends on its own.
func Effect(name string, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch name {
	case "defender_shoot":
		osc := newOscillator(1400, 350, 120*time.Millisecond, WaveSquare, rate)
		s = newVolume(newDecay(osc, 5*time.Millisecond, 12, rate), 0.25)
	case "defender_killed":
		noise := newOscillator(0, 0, 900*time.Millisecond, WaveNoise, rate)
		rumble := newOscillator(110, 40, 900*time.Millisecond, WaveSquare, rate)
		s = newDecay(beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.2)), 10*time.Millisecond, 3, rate)
	case "alien_killed":
		noise := newOscillator(0, 0, 250*time.Millisecond, WaveNoise, rate)
		chirp := newOscillator(900, 200, 250*time.Millisecond, WaveSquare, rate)
		s = newDecay(beep.Mix(newVolume(noise, 0.3), newVolume(chirp, 0.15)), 2*time.Millisecond, 10, rate)
	case "alien_move_1", "alien_move_2", "alien_move_3", "alien_move_4":
		note := marchNotes[name[len(name)-1]-'1']
		osc := newOscillator(note, note, 90*time.Millisecond, WaveSquare, rate)
		s = newVolume(newDecay(osc, 3*time.Millisecond, 6, rate), 0.4)
	default:
		return nil
	}
	return newVolume(s, volume)
}
