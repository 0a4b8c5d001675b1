package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"

	"github.com/milk9111/graveyardshift/levels"
	"github.com/milk9111/graveyardshift/prefabs"
)

var (
	bgColor       = color.RGBA{0x10, 0x10, 0x14, 0xff}
	boundsColor   = color.RGBA{0x80, 0x80, 0x80, 0xff}
	wallColor     = color.RGBA{0x6b, 0x5b, 0x4a, 0xff}
	platformColor = color.RGBA{0x4a, 0x6b, 0x8a, 0xc0}
	triggerColor  = color.RGBA{0xd0, 0xb0, 0x30, 0xff}
	pickupColor   = color.RGBA{0x40, 0xd0, 0x60, 0xff}
	enemyColor    = color.RGBA{0xd0, 0x40, 0x40, 0xff}
	spawnColor    = color.RGBA{0x40, 0xa0, 0xff, 0xff}
)

type MapView struct {
	src   levelSource
	names []string
	index int

	level     *levels.Level
	lastError string

	cam       camera
	width     int
	height    int
	isPanning bool
	lastPanX  int
	lastPanY  int

	clipboardOK bool
	status      string
}

func NewMapView(src levelSource, names []string, w, h int) *MapView {
	return &MapView{
		src:    src,
		names:  names,
		width:  w,
		height: h,
		cam:    camera{unitPixels: 16, zoom: 1},
	}
}

func (v *MapView) open(name string) {
	for i, n := range v.names {
		if n == name {
			v.index = i
		}
	}
	lvl, err := v.src.load(name)
	if err != nil {
		v.lastError = err.Error()
		v.level = nil
		return
	}
	v.lastError = ""
	v.level = lvl
	v.frame()
}

func (v *MapView) frame() {
	if v.level == nil {
		return
	}
	b := v.level.Bounds
	v.cam.frame(b.MinX, b.MinZ, b.MaxX, b.MaxZ, v.width, v.height)
}

func (v *MapView) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.index = (v.index + 1) % len(v.names)
		v.open(v.names[v.index])
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.open(v.names[v.index])
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		v.frame()
	}

	mx, my := ebiten.CursorPosition()
	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := 1.1
		if wy < 0 {
			factor = 1 / 1.1
		}
		v.cam.zoomAt(float64(mx), float64(my), factor)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		v.isPanning = true
		v.lastPanX, v.lastPanY = mx, my
	}
	if v.isPanning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		v.cam.panX += float64(mx - v.lastPanX)
		v.cam.panY += float64(my - v.lastPanY)
		v.lastPanX, v.lastPanY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		v.isPanning = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, z := v.cam.screenToWorld(float64(mx), float64(my))
		point := fmt.Sprintf("x: %.2f, z: %.2f", x, z)
		if v.clipboardOK {
			clipboard.Write(clipboard.FmtText, []byte(point))
			v.status = "copied " + point
		} else {
			v.status = point
		}
	}
	return nil
}

func (v *MapView) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	if v.level == nil {
		ebitenutil.DebugPrintAt(screen, "error: "+v.lastError, 10, 10)
		return
	}
	lvl := v.level

	v.strokeBox(screen, lvl.Bounds.MinX, lvl.Bounds.MinZ, lvl.Bounds.MaxX, lvl.Bounds.MaxZ, boundsColor)
	for _, w := range lvl.Walls {
		c := color.Color(wallColor)
		if w.Color != "" {
			if parsed, err := prefabs.ParseColor(w.Color); err == nil {
				c = parsed
			}
		}
		v.fillBox(screen, w.X-w.Width/2, w.Z-w.Depth/2, w.X+w.Width/2, w.Z+w.Depth/2, c)
	}
	for _, p := range lvl.Platforms {
		v.fillBox(screen, p.X-p.Width/2, p.Z-p.Depth/2, p.X+p.Width/2, p.Z+p.Depth/2, platformColor)
		v.label(screen, p.X, p.Z, fmt.Sprintf("%.1fm", p.Y+p.Height))
	}
	for _, t := range lvl.Triggers {
		b := t.Bounds
		v.strokeBox(screen, b.MinX, b.MinZ, b.MaxX, b.MaxZ, triggerColor)
		name := t.Tag
		if t.Condition != "" {
			name += " [" + t.Condition + "]"
		}
		v.label(screen, b.MinX, b.MaxZ, name)
	}
	for _, p := range lvl.Pickups {
		r := p.Radius
		if r <= 0 {
			r = 0.5
		}
		v.fillBox(screen, p.X-r, p.Z-r, p.X+r, p.Z+r, pickupColor)
		v.label(screen, p.X+r, p.Z+r, p.Tag)
	}
	for _, e := range lvl.Enemies {
		v.fillBox(screen, e.X-0.4, e.Z-0.4, e.X+0.4, e.Z+0.4, enemyColor)
	}

	sx, sy := v.cam.worldToScreen(lvl.Spawn.X, lvl.Spawn.Z)
	rad := lvl.Spawn.Yaw * math.Pi / 180
	ex, ey := v.cam.worldToScreen(lvl.Spawn.X+math.Sin(rad)*1.5, lvl.Spawn.Z+math.Cos(rad)*1.5)
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, spawnColor, false)
	vector.FillRect(screen, float32(sx)-3, float32(sy)-3, 6, 6, spawnColor, false)

	mx, my := ebiten.CursorPosition()
	cx, cz := v.cam.screenToWorld(float64(mx), float64(my))
	header := fmt.Sprintf("%s (%d/%d)  cursor x %.2f z %.2f\nTab next level, R reload, F frame, wheel zoom, middle-drag pan, click copy point",
		lvl.Name, v.index+1, len(v.names), cx, cz)
	if v.status != "" {
		header += "\n" + v.status
	}
	ebitenutil.DebugPrintAt(screen, header, 10, 10)
}

func (v *MapView) fillBox(screen *ebiten.Image, minX, minZ, maxX, maxZ float64, c color.Color) {
	x0, y0 := v.cam.worldToScreen(minX, maxZ)
	x1, y1 := v.cam.worldToScreen(maxX, minZ)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}

func (v *MapView) strokeBox(screen *ebiten.Image, minX, minZ, maxX, maxZ float64, c color.Color) {
	x0, y0 := v.cam.worldToScreen(minX, maxZ)
	x1, y1 := v.cam.worldToScreen(maxX, minZ)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
}

func (v *MapView) label(screen *ebiten.Image, x, z float64, s string) {
	sx, sy := v.cam.worldToScreen(x, z)
	ebitenutil.DebugPrintAt(screen, s, int(sx)+2, int(sy)-14)
}

func (v *MapView) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
