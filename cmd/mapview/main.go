// Command mapview draws levels from above for authoring. Levels come from the
// embedded set, or from YAML files on disk with -dir.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	dir := flag.String("dir", "", "read levels from this directory instead of the embedded set")
	start := flag.String("level", "", "level to open first")
	flag.Parse()

	src := newLevelSource(*dir)
	names, err := src.names()
	if err != nil {
		log.Fatalf("mapview: %v", err)
	}
	if len(names) == 0 {
		log.Fatalf("mapview: no levels found")
	}

	clipOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("mapview: clipboard unavailable: %v", err)
		clipOK = false
	}

	v := NewMapView(src, names, screenWidth, screenHeight)
	v.clipboardOK = clipOK
	if *start != "" {
		v.open(*start)
	} else {
		v.open(names[0])
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Graveyard Shift Map View")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
