package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/config"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/ecs/entity"
	"github.com/milk9111/graveyardshift/ecs/system"
	"github.com/milk9111/graveyardshift/levels"
	"github.com/milk9111/graveyardshift/prefabs"
	"github.com/milk9111/graveyardshift/quest"
)

type Game struct {
	cfg config.Config

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	levelName string

	input    *Input
	renderer *Renderer
	screens  *ScreensUI
	sound    *Sound
	debug    *Debug
	watcher  *prefabs.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		input:    NewInput(),
		renderer: NewRenderer(),
	}

	screens, err := NewScreensUI(g.pushScreenRequest)
	if err != nil {
		return nil, err
	}
	g.screens = screens

	if !cfg.Mute {
		g.sound, err = NewSound()
		if err != nil {
			log.Printf("audio: disabled: %v", err)
		}
	}
	if cfg.Debug {
		g.debug = NewDebug()
	}
	if cfg.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir(), err)
		}
	}

	if err := g.loadLevel(cfg.Level); err != nil {
		log.Printf("game: load %s: %v, falling back to the main menu", cfg.Level, err)
		if err := g.loadLevel(quest.SceneMenu); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// loadLevel replaces the world. The physics system caches bodies per world,
// so the scheduler is rebuilt with it.
func (g *Game) loadLevel(name string) error {
	var (
		w   *ecs.World
		err error
	)
	if name == quest.SceneMenu || name == "" {
		name = quest.SceneMenu
		w, err = entity.NewMenuWorld()
	} else {
		var lvl *levels.Level
		lvl, err = levels.Load(name)
		if err != nil {
			return err
		}
		w, err = entity.NewLevelWorld(lvl)
	}
	if err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}

	g.world = w
	g.scheduler, g.physics = system.NewGameScheduler(g.input)
	g.levelName = name
	g.input.Reset()
	g.sound.Stop()
	log.Printf("game: loaded %s", name)
	return nil
}

func (g *Game) pushScreenRequest(action component.ScreenAction) {
	if g.world == nil {
		return
	}
	e := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, e, component.ScreenRequestComponent.Kind(), &component.ScreenRequest{Action: action})
}

func (g *Game) Update() error {
	g.reloadChangedPrefabs()

	_, screens, _ := ecs.FirstValue(g.world, component.ScreensComponent.Kind())
	g.input.SetCaptured(screens != nil && !screens.CursorFree)
	g.screens.Update(screens)

	g.scheduler.Update(g.world)
	g.sound.Update(g.world)
	if g.debug != nil {
		g.debug.Update(g.world)
	}

	if screens != nil && screens.QuitRequest {
		return ebiten.Termination
	}
	g.handleLevelChange()
	return nil
}

// handleLevelChange consumes LevelChangeRequest entities. The last request of
// the tick wins.
func (g *Game) handleLevelChange() {
	var target string
	for _, e := range g.world.Query(component.LevelChangeRequestComponent.Kind()) {
		if req, ok := ecs.Get(g.world, e, component.LevelChangeRequestComponent.Kind()); ok {
			target = req.TargetLevel
		}
		ecs.DestroyEntity(g.world, e)
	}
	if target == "" {
		return
	}
	if err := g.loadLevel(target); err != nil {
		log.Printf("game: level change to %s failed: %v", target, err)
	}
}

func (g *Game) reloadChangedPrefabs() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Printf("prefabs: changed %v, reloading %s", changed, g.levelName)
	if err := g.loadLevel(g.levelName); err != nil {
		log.Printf("prefabs: reload failed: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.physics)
	g.screens.Draw(screen)
	if g.debug != nil {
		g.debug.Draw(screen, g.world)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
