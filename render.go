package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/graveyardshift/assets"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/ecs/system"
)

const (
	columnWidth   = 4
	columns       = common.BaseWidth / columnWidth
	maxViewDist   = 40.0
	ambientLight  = 0.12
	boundsHeight  = 3.0
	labelDistance = 5.0
)

var (
	skyColor      = color.RGBA{R: 8, G: 9, B: 16, A: 255}
	groundColor   = color.RGBA{R: 16, G: 18, B: 14, A: 255}
	boundsColor   = color.RGBA{R: 30, G: 32, B: 36, A: 255}
	hudTextColor  = color.RGBA{R: 220, G: 220, B: 210, A: 255}
	healthColor   = color.RGBA{R: 170, G: 30, B: 30, A: 255}
	healthBack    = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	dialogueBack  = color.RGBA{R: 0, G: 0, B: 0, A: 190}
	crosshair     = color.RGBA{R: 230, G: 230, B: 230, A: 160}
	muzzleFlash   = color.RGBA{R: 255, G: 220, B: 140, A: 90}
	flashlightTip = color.RGBA{R: 255, G: 250, B: 220, A: 255}
)

// Renderer draws the world from the player camera, Doom style: one cp ray per
// screen column for walls, then depth-tested billboards, then the HUD.
type Renderer struct {
	zbuf [columns]float64
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

type view struct {
	cam     component.Camera
	focal   float64
	horizon float64
	light   float64
	lightOn bool
	self    ecs.Entity
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, physics *system.PhysicsSystem) {
	screen.Fill(skyColor)
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, player, component.CameraComponent.Kind())
	if !ok {
		return
	}

	v := r.newView(w, player, cam)
	vector.FillRect(screen, 0, float32(v.horizon), common.BaseWidth, float32(common.BaseHeight-v.horizon), groundColor, false)
	r.drawWalls(screen, w, physics, v)
	r.drawBillboards(screen, w, player, v)
	r.drawHUD(screen, w, player)
}

func (r *Renderer) newView(w *ecs.World, player ecs.Entity, cam *component.Camera) view {
	fov := cam.FOV
	if fov <= 0 {
		fov = 70
	}
	focal := (common.BaseWidth / 2) / math.Tan(common.Radians(fov)/2)
	v := view{
		cam:     *cam,
		focal:   focal,
		horizon: common.BaseHeight/2 + math.Tan(common.Radians(cam.Pitch))*focal,
		self:    player,
	}
	if fl, ok := ecs.Get(w, player, component.FlashlightComponent.Kind()); ok && fl.On {
		v.lightOn = true
		v.light = fl.Intensity
	}
	return v
}

// shade scales c by the light reaching a point at dist along a ray offset
// radians from the view centre.
func (v view) shade(c color.RGBA, dist, offset float64) color.RGBA {
	l := ambientLight
	if v.lightOn {
		cone := math.Max(0, 1-math.Abs(offset)/0.45)
		l += v.light * 0.45 * cone / (1 + dist*dist*0.03)
	}
	l = math.Min(1, l)
	return color.RGBA{
		R: uint8(float64(c.R) * l),
		G: uint8(float64(c.G) * l),
		B: uint8(float64(c.B) * l),
		A: 255,
	}
}

func (r *Renderer) drawWalls(screen *ebiten.Image, w *ecs.World, physics *system.PhysicsSystem, v view) {
	for col := 0; col < columns; col++ {
		r.zbuf[col] = math.Inf(1)
		sx := (float64(col) + 0.5) * columnWidth
		offset := math.Atan((sx - common.BaseWidth/2) / v.focal)
		dx, dz := common.Forward(v.cam.Yaw + offset*180/math.Pi)

		hitEntity, info, hit := physics.Raycast(v.self, v.cam.X, v.cam.Z, dx*maxViewDist, dz*maxViewDist, system.MaskWalls)
		if !hit {
			continue
		}
		perp := info.Alpha * maxViewDist * math.Cos(offset)
		if perp < 0.05 {
			perp = 0.05
		}
		r.zbuf[col] = perp

		base, height, c := 0.0, boundsHeight, boundsColor
		if hitEntity != 0 {
			if t, ok := ecs.Get(w, hitEntity, component.TransformComponent.Kind()); ok {
				base = t.Y
			}
			if s, ok := ecs.Get(w, hitEntity, component.SpriteComponent.Kind()); ok {
				height, c = s.Height, s.Color
			}
		}
		top := v.horizon - (base+height-v.cam.Y)*v.focal/perp
		bottom := v.horizon + (v.cam.Y-base)*v.focal/perp

		// Faces hit along the Z axis are drawn a little darker.
		shaded := v.shade(c, perp, offset)
		if math.Abs(info.Normal.Y) > math.Abs(info.Normal.X) {
			shaded = darken(shaded, 0.8)
		}
		vector.FillRect(screen, float32(col*columnWidth), float32(top), columnWidth, float32(bottom-top), shaded, false)
	}
}

type billboard struct {
	depth  float64
	screen float64
	width  float64
	top    float64
	bottom float64
	color  color.RGBA
	label  string
}

func (r *Renderer) drawBillboards(screen *ebiten.Image, w *ecs.World, player ecs.Entity, v view) {
	fx, fz := common.Forward(v.cam.Yaw)
	rx, rz := common.Right(v.cam.Yaw)

	var boards []billboard
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if e == player || ecs.Has(w, e, component.WallTagComponent.Kind()) {
			return
		}
		dx, dz := t.X-v.cam.X, t.Z-v.cam.Z
		depth := dx*fx + dz*fz
		if depth < 0.1 || depth > maxViewDist {
			return
		}
		lateral := dx*rx + dz*rz
		b := billboard{
			depth:  depth,
			screen: common.BaseWidth/2 + lateral*v.focal/depth,
			width:  s.Width * v.focal / depth,
			top:    v.horizon - (t.Y+s.Height-v.cam.Y)*v.focal/depth,
			bottom: v.horizon + (v.cam.Y-t.Y)*v.focal/depth,
			color:  v.shade(s.Color, depth, math.Atan(lateral/depth)),
		}
		if depth < labelDistance && ecs.Has(w, e, component.TriggerComponent.Kind()) {
			b.label = s.Label
		}
		boards = append(boards, b)
	})

	sort.Slice(boards, func(i, j int) bool { return boards[i].depth > boards[j].depth })
	for _, b := range boards {
		first := int(math.Floor((b.screen - b.width/2) / columnWidth))
		last := int(math.Ceil((b.screen + b.width/2) / columnWidth))
		first = max(first, 0)
		last = min(last, columns-1)
		for col := first; col <= last; col++ {
			if r.zbuf[col] <= b.depth {
				continue
			}
			vector.FillRect(screen, float32(col*columnWidth), float32(b.top), columnWidth, float32(b.bottom-b.top), b.color, false)
		}
		if b.label != "" {
			drawText(screen, b.label, b.screen-float64(len(b.label))*3.5, b.top-16, hudTextColor)
		}
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, w *ecs.World, player ecs.Entity) {
	_, hud, ok := ecs.FirstValue(w, component.HUDComponent.Kind())
	if ok && hud.Visible {
		vector.FillRect(screen, 20, 20, float32(hud.HealthBackWidth), float32(hud.HealthBackHeight), healthBack, false)
		vector.FillRect(screen, 21, 21, float32(hud.HealthBarWidth), float32(hud.HealthBarHeight), healthColor, false)

		vector.FillRect(screen, 20, 52, 122, 12, healthBack, false)
		vector.FillRect(screen, 21, 53, float32(120*hud.BatteryValue), 10, hud.BatteryColor, false)
		drawText(screen, "BATTERY", 150, 50, hudTextColor)

		if hud.Objective != "" {
			drawText(screen, "Objective: "+hud.Objective, 20, 76, hudTextColor)
		}
		if hud.Ammo != "" {
			drawText(screen, hud.Ammo, common.BaseWidth-120, common.BaseHeight-40, hudTextColor)
		}

		cx, cy := float32(common.BaseWidth/2), float32(common.BaseHeight/2)
		vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, crosshair, false)
		vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, crosshair, false)

		if weapon, ok := ecs.Get(w, player, component.WeaponComponent.Kind()); ok {
			if weapon.Flash > 0 {
				vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, muzzleFlash, false)
			}
			if weapon.Reloading > 0 {
				drawText(screen, "reloading...", common.BaseWidth-120, common.BaseHeight-24, hudTextColor)
			}
		}
		if fl, ok := ecs.Get(w, player, component.FlashlightComponent.Kind()); ok && fl.On {
			vector.FillRect(screen, common.BaseWidth-36, 24, 12, 12, flashlightTip, false)
		}
	}

	_, box, ok := ecs.FirstValue(w, component.DialogueBoxComponent.Kind())
	if ok && box.Typewriter != nil && box.Typewriter.Active() {
		x, y := float32(140), float32(common.BaseHeight-150)
		vector.FillRect(screen, x, y, common.BaseWidth-280, 100, dialogueBack, false)
		drawText(screen, box.Typewriter.Text(), float64(x)+20, float64(y)+20, hudTextColor)
		if box.Typewriter.LineComplete() {
			drawText(screen, "[E] continue", float64(x)+common.BaseWidth-280-120, float64(y)+76, crosshair)
		}
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, assets.UIFace(), op)
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}
