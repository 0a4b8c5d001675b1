package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillator(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 10*time.Millisecond, tc.wave, SampleRate)
			total := 0
			buf := make([][2]float64, 64)
			for {
				n, ok := osc.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 {
						t.Fatalf("sample out of range: %v", buf[i][0])
					}
				}
				total += n
				if !ok {
					break
				}
			}
			if want := SampleRate.N(10 * time.Millisecond); total != want {
				t.Fatalf("expected %d samples, got %d", want, total)
			}
		})
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	if n == 0 {
		t.Fatalf("expected samples")
	}
	if buf[0][0] != 0 {
		t.Fatalf("attack should start silent, got %v", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 {
		t.Fatalf("sustain should pass the square wave through, got %v", mid)
	}
}

func TestRender(t *testing.T) {
	pcm, err := Render(beep.Silence(100))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(pcm) != 100*4 {
		t.Fatalf("expected 400 bytes, got %d", len(pcm))
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("silence should render zero bytes, byte %d = %d", i, b)
		}
	}

	if _, err := Render(nil); err == nil {
		t.Fatalf("expected error for nil streamer")
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{2, 32767},
		{-2, -32767},
	}
	for _, tc := range tests {
		if got := toInt16(tc.in); got != tc.want {
			t.Fatalf("toInt16(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLibrary(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("library: %v", err)
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			pcm, ok := lib.PCM(name)
			if !ok || len(pcm) == 0 {
				t.Fatalf("missing clip")
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("pcm should be whole stereo frames, got %d bytes", len(pcm))
			}
			loud := false
			for i := 0; i+1 < len(pcm); i += 2 {
				if int16(binary.LittleEndian.Uint16(pcm[i:])) != 0 {
					loud = true
					break
				}
			}
			if !loud {
				t.Fatalf("clip is silent")
			}
		})
	}

	t.Run("walk_loop_length", func(t *testing.T) {
		pcm, _ := lib.PCM(ClipFootstepWalk)
		if want := SampleRate.N(520*time.Millisecond) * 4; len(pcm) != want {
			t.Fatalf("expected %d bytes, got %d", want, len(pcm))
		}
	})

	if _, ok := lib.PCM("nope"); ok {
		t.Fatalf("unknown clip should be missing")
	}
}
