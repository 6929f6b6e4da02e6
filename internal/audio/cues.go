package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/nagapatha/internal/engine"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Note frequencies in Hz.
const (
	noteC3 = 130.81
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// Cue durations follow eighth and quarter notes at 120 bpm.
const (
	eighthNote  = 250 * time.Millisecond
	quarterNote = 500 * time.Millisecond
	clickLength = 20 * time.Millisecond
)

// Streamer builds a new finite streamer for cue at the given volume
// (0 silent, 1 full). Unknown cues return nil.
func Streamer(cue engine.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case engine.CueEat:
		s = tone(noteC5, eighthNote, WaveSine, rate)
	case engine.CueCrash:
		s = newVolume(tone(noteC3, quarterNote, WaveSquare, rate), 0.4)
	case engine.CuePowerUp:
		s = beep.Seq(
			tone(noteE5, 80*time.Millisecond, WaveSine, rate),
			tone(noteG5, 160*time.Millisecond, WaveSine, rate),
		)
	case engine.CueClick:
		s = newVolume(newEnvelope(newOscillator(0, clickLength, WaveNoise, rate), clickLength, time.Millisecond, 15*time.Millisecond, rate), 0.3)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// Length returns how long cue plays.
func Length(cue engine.Cue) time.Duration {
	switch cue {
	case engine.CueEat:
		return eighthNote
	case engine.CueCrash:
		return quarterNote
	case engine.CuePowerUp:
		return 240 * time.Millisecond
	case engine.CueClick:
		return clickLength
	}
	return 0
}
