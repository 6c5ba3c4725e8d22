package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/connect-four/constants"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundDrop SoundType = iota // Piece lands in a column
	SoundWin                   // Four in a row
	SoundDraw                  // Board full
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundDrop:
		return "drop"
	case SoundWin:
		return "win"
	case SoundDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sample returns one value of the wave at phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone streams a raw periodic wave for d, then ends
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	step := freq / float64(rate)
	pos, phase := 0, 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range samples[:n] {
			v := wave.sample(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		pos += n
		return n, true
	})
}

// shaped cuts s to d and applies linear attack and release ramps
func shaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n, ok := s.Stream(samples[:min(len(samples), total-pos)])
		for i := range samples[:n] {
			g := 1.0
			switch {
			case pos < att:
				g = float64(pos) / float64(att)
			case rel > 0 && pos >= total-rel:
				g = float64(total-pos) / float64(rel)
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// note is a tone with attack and release
func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return shaped(tone(freq, d, wave, rate), d, attack, release, rate)
}

// gain scales s linearly; math.Log2(0) is -Inf so zero means silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateDropSound generates a short low thud for a landed piece
func CreateDropSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := note(110.0, constants.DropSoundDuration, constants.DropSoundAttack, constants.DropSoundRelease, WaveTriangle, rate)

	// Quiet sine an octave up gives the click its attack
	click := beep.Streamer(beep.Silence(0))
	if sine, err := generators.SineTone(rate, 220.0); err == nil {
		click = shaped(sine, constants.DropSoundDuration, constants.DropSoundAttack, constants.DropSoundRelease, rate)
	}

	mixed := beep.Mix(gain(body, 0.8), gain(click, 0.2))
	return gain(beep.Take(rate.N(constants.DropSoundDuration), mixed), cfg.EffectVolumes[SoundDrop]*cfg.MasterVolume)
}

// CreateWinSound generates a rising C major arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C5 E5 G5, then a held C6
	steps := []float64{523.25, 659.25, 783.99}
	notes := make([]beep.Streamer, 0, len(steps)+1)
	for _, freq := range steps {
		notes = append(notes, note(freq, constants.WinNoteDuration, constants.WinNoteAttack, constants.WinNoteRelease, WaveSquare, rate))
	}
	notes = append(notes, note(1046.50, constants.WinFinalNote, constants.WinNoteAttack, constants.WinFinalRelease, WaveSquare, rate))

	return gain(beep.Seq(notes...), 0.5*cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// CreateDrawSound generates two falling notes
func CreateDrawSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G4 then D4
	first := note(392.00, constants.DrawNoteDuration, constants.DrawNoteAttack, constants.DrawNoteRelease, WaveSine, rate)
	second := note(293.66, constants.DrawNoteDuration, constants.DrawNoteAttack, constants.DrawNoteRelease, WaveSine, rate)

	return gain(beep.Seq(first, second), cfg.EffectVolumes[SoundDraw]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the given sound
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundDraw:
		return CreateDrawSound(cfg)
	default:
		return nil
	}
}
