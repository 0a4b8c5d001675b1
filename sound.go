package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	gsaudio "github.com/milk9111/graveyardshift/audio"
	"github.com/milk9111/graveyardshift/assets"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// Sound plays the cues systems raise and keeps the footstep loop in line with
// the player's Footsteps component. A nil *Sound is a muted host.
type Sound struct {
	oneShots map[string][]*audio.Player
	walk     *audio.Player
	run      *audio.Player
	missing  map[string]bool
}

func NewSound() (*Sound, error) {
	walk, err := assets.LoadLoopPlayer(gsaudio.ClipFootstepWalk)
	if err != nil {
		return nil, err
	}
	run, err := assets.LoadLoopPlayer(gsaudio.ClipFootstepRun)
	if err != nil {
		return nil, err
	}
	return &Sound{
		oneShots: make(map[string][]*audio.Player),
		walk:     walk,
		run:      run,
		missing:  make(map[string]bool),
	}, nil
}

func (s *Sound) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	if _, cues, ok := ecs.FirstValue(w, component.AudioCuesComponent.Kind()); ok {
		for _, name := range cues.Names {
			s.play(name)
		}
		cues.Names = cues.Names[:0]
	}

	playing, running := false, false
	_, clock, ok := ecs.FirstValue(w, component.ClockComponent.Kind())
	frozen := ok && clock.Scale == 0
	if _, steps, ok := ecs.FirstValue(w, component.FootstepsComponent.Kind()); ok && !frozen {
		playing, running = steps.Playing, steps.Running
	}
	setLoop(s.walk, playing && !running)
	setLoop(s.run, playing && running)
}

// Stop silences the footstep loops. One-shots are left to finish.
func (s *Sound) Stop() {
	if s == nil {
		return
	}
	setLoop(s.walk, false)
	setLoop(s.run, false)
}

// play reuses a finished player for the clip or creates a new one, so
// overlapping shots don't cut each other off.
func (s *Sound) play(name string) {
	if s.missing[name] {
		return
	}
	for _, p := range s.oneShots[name] {
		if !p.IsPlaying() {
			if err := p.SetPosition(0); err == nil {
				p.Play()
				return
			}
		}
	}
	p, err := assets.LoadAudioPlayer(name)
	if err != nil {
		log.Printf("audio: %v", err)
		s.missing[name] = true
		return
	}
	s.oneShots[name] = append(s.oneShots[name], p)
	p.Play()
}

func setLoop(p *audio.Player, on bool) {
	if p == nil {
		return
	}
	if on && !p.IsPlaying() {
		p.Play()
	} else if !on && p.IsPlaying() {
		p.Pause()
	}
}
