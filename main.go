package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/config"
	"github.com/milk9111/graveyardshift/prefabs"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	prefabs.SetDir(cfg.PrefabDir)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*cfg.Scale, common.BaseHeight*cfg.Scale)
	ebiten.SetWindowTitle("The Graveyard Shift")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
