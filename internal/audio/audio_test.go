package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/nagapatha/internal/engine"
)

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %v", total+i, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return total
}

func TestCueStreamers(t *testing.T) {
	rate := DefaultSampleRate
	cues := []engine.Cue{engine.CueEat, engine.CueCrash, engine.CuePowerUp, engine.CueClick}

	for _, cue := range cues {
		t.Run(string(cue), func(t *testing.T) {
			s := Streamer(cue, 0.8, rate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			got := drain(t, s, rate.N(2*time.Second))
			want := rate.N(Length(cue))
			if diff := got - want; diff < -2 || diff > 2 {
				t.Errorf("streamed %d samples, expected about %d", got, want)
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if Streamer("fanfare", 1, DefaultSampleRate) != nil {
		t.Error("unknown cue should have no streamer")
	}
	if Length("fanfare") != 0 {
		t.Error("unknown cue should have zero length")
	}
}

func TestSilentVolume(t *testing.T) {
	s := Streamer(engine.CueEat, 0, DefaultSampleRate)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("expected silence, got %v at %d", buf[i], i)
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := tone(100, 100*time.Millisecond, WaveSquare, rate)
	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	if math.Abs(buf[99][0]) > 0.05 {
		t.Errorf("release should end near silence, got %v", buf[99][0])
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained stream returned %d, %v", n, ok)
	}
}

func TestUninitializedPlayerIgnoresPlay(t *testing.T) {
	p := NewPlayer(1, nil)
	if p.Enabled() {
		t.Fatal("new player should not be enabled")
	}
	p.Play(engine.CueEat)
	p.Close()
}
