package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
)

// Clip names. One-shots match the cue names gameplay systems push.
const (
	ClipFootstepWalk = "footstep_walk"
	ClipFootstepRun  = "footstep_run"
	ClipClick        = "click"
	ClipPickup       = "pickup"
	ClipShot         = "shot"
	ClipHit          = "hit"
	ClipDryFire      = "dry_fire"
	ClipReload       = "reload"
	ClipHurt         = "hurt"
	ClipEnemyDown    = "enemy_down"
	ClipGameOver     = "game_over"
)

var generators = map[string]func() beep.Streamer{
	ClipFootstepWalk: func() beep.Streamer { return footstepLoop(520*time.Millisecond, 300, 0.8) },
	ClipFootstepRun:  func() beep.Streamer { return footstepLoop(330*time.Millisecond, 380, 0.9) },
	ClipClick: func() beep.Streamer {
		return tone(1800, 25*time.Millisecond, time.Millisecond, 15*time.Millisecond, WaveSquare, 0.25)
	},
	ClipPickup: func() beep.Streamer {
		return beep.Seq(
			tone(660, 80*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSine, 0.4),
			tone(990, 140*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond, WaveSine, 0.4),
		)
	},
	ClipShot: func() beep.Streamer {
		return beep.Mix(
			thud(220*time.Millisecond, 1200, 1),
			tone(70, 160*time.Millisecond, time.Millisecond, 140*time.Millisecond, WaveSine, 0.6),
		)
	},
	ClipHit: func() beep.Streamer {
		return thud(70*time.Millisecond, 600, 0.6)
	},
	ClipDryFire: func() beep.Streamer {
		return tone(2400, 15*time.Millisecond, 0, 10*time.Millisecond, WaveSquare, 0.3)
	},
	ClipReload: func() beep.Streamer {
		return beep.Seq(
			tone(900, 30*time.Millisecond, 0, 20*time.Millisecond, WaveSquare, 0.25),
			beep.Silence(SampleRate.N(120*time.Millisecond)),
			tone(600, 40*time.Millisecond, 0, 30*time.Millisecond, WaveSquare, 0.3),
		)
	},
	ClipHurt: func() beep.Streamer {
		return tone(110, 180*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond, WaveSaw, 0.5)
	},
	ClipEnemyDown: func() beep.Streamer {
		return beep.Seq(
			tone(180, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, 0.4),
			tone(90, 260*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond, WaveSaw, 0.4),
		)
	},
	ClipGameOver: func() beep.Streamer {
		return beep.Seq(
			tone(220, 400*time.Millisecond, 20*time.Millisecond, 200*time.Millisecond, WaveSine, 0.5),
			tone(165, 400*time.Millisecond, 20*time.Millisecond, 200*time.Millisecond, WaveSine, 0.5),
			tone(110, 900*time.Millisecond, 20*time.Millisecond, 700*time.Millisecond, WaveSine, 0.5),
		)
	},
}

// Names lists every clip the library can render.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Library holds rendered clips as 16-bit little-endian stereo PCM.
type Library struct {
	clips map[string][]byte
}

// NewLibrary renders every clip once.
func NewLibrary() (*Library, error) {
	lib := &Library{clips: make(map[string][]byte, len(generators))}
	for name, gen := range generators {
		pcm, err := Render(gen())
		if err != nil {
			return nil, fmt.Errorf("audio: render %s: %w", name, err)
		}
		lib.clips[name] = pcm
	}
	return lib, nil
}

func (l *Library) PCM(name string) ([]byte, bool) {
	if l == nil {
		return nil, false
	}
	pcm, ok := l.clips[name]
	return pcm, ok
}

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("audio: nil streamer")
	}
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
