package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// Debug draws an overlay of the player state. F9 copies the player pose as a
// level spawn snippet.
type Debug struct {
	clipboardOK bool
	lastCopied  string
}

func NewDebug() *Debug {
	d := &Debug{}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboardOK = true
	}
	return d
}

func (d *Debug) Update(w *ecs.World) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		return
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pose := formatPose(t)
	d.lastCopied = pose
	if d.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(pose))
	}
	log.Printf("debug: pose %s", pose)
}

func (d *Debug) Draw(screen *ebiten.Image, w *ecs.World) {
	msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			msg += "\n" + formatPose(t)
		}
		if c, ok := ecs.Get(w, e, component.ContactComponent.Kind()); ok {
			msg += fmt.Sprintf("\nfloor: %.2f", c.Floor)
		}
	}
	if _, s, ok := ecs.FirstValue(w, component.ScreensComponent.Kind()); ok {
		msg += "\nscreen: " + s.Mode.String()
	}
	if d.lastCopied != "" {
		msg += "\ncopied: " + d.lastCopied
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 40)
}

func formatPose(t *component.Transform) string {
	return fmt.Sprintf("{x: %.2f, y: %.2f, z: %.2f, yaw: %.1f}", t.X, t.Y, t.Z, t.Yaw)
}
