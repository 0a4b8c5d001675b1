package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	gsaudio "github.com/milk9111/graveyardshift/audio"
)

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	libOnce sync.Once
	lib     *gsaudio.Library
	libErr  error

	face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// AudioContext returns the process-wide ebiten audio context.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(int(gsaudio.SampleRate))
	})
	return audioContext
}

func library() (*gsaudio.Library, error) {
	libOnce.Do(func() {
		lib, libErr = gsaudio.NewLibrary()
	})
	return lib, libErr
}

// LoadAudioPlayer creates a one-shot player for a synthesized clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	pcm, err := clip(name)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(pcm), nil
}

// LoadLoopPlayer creates a player that repeats a clip until paused.
func LoadLoopPlayer(name string) (*audio.Player, error) {
	pcm, err := clip(name)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return AudioContext().NewPlayer(loop)
}

func clip(name string) ([]byte, error) {
	l, err := library()
	if err != nil {
		return nil, err
	}
	pcm, ok := l.PCM(name)
	if !ok {
		return nil, fmt.Errorf("assets: unknown clip %q", name)
	}
	return pcm, nil
}

// UIFace is the bitmap face used by the HUD and menus.
func UIFace() ebtext.Face {
	return face
}
