package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// Shape filter categories.
const (
	catSolid uint = 1 << iota
	catPlayer
	catEnemy
	catPlatform
)

const (
	defaultRadius      = 0.4
	defaultStepHeight  = 0.3
	defaultProbeMargin = 0.05
	boundsThickness    = 0.1
	// Chipmunk's default slop assumes pixel units; the space is in metres.
	collisionSlop = 0.01
)

// PhysicsSystem simulates the X/Z plane with Chipmunk and integrates height
// itself. Chipmunk runs without gravity; Y gets gravity, floors and platforms.
type PhysicsSystem struct {
	space *cp.Space

	entities  map[ecs.Entity]*bodyInfo
	shapes    map[*cp.Shape]ecs.Entity
	platforms map[ecs.Entity]*bodyInfo
	bounds    []*cp.Shape
	boundsFor component.Level
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	top    float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:     newSpace(),
		entities:  make(map[ecs.Entity]*bodyInfo),
		shapes:    make(map[*cp.Shape]ecs.Entity),
		platforms: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	space.SetCollisionSlop(collisionSlop)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// EntityForShape maps a Chipmunk shape back to its entity.
func (ps *PhysicsSystem) EntityForShape(shape *cp.Shape) (ecs.Entity, bool) {
	if ps == nil || shape == nil {
		return 0, false
	}
	e, ok := ps.shapes[shape]
	return e, ok
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	if dt := deltaTime(w); dt > 0 {
		ps.clipContactVelocities()
		ps.space.Step(dt)
		ps.syncTransforms(w)
		ps.integrateVertical(w, dt)
	}

	ecs.ForEach(w, component.ContactComponent.Kind(), func(_ ecs.Entity, c *component.Contact) {
		c.Grounded = false
		c.WallAhead = false
	})
}

// clipContactVelocities drops the part of each body's velocity that points
// into a surface it touched last step. Step moves bodies before it solves
// contacts, so velocity set by the controller or the AI would otherwise push
// the body a little further into the wall every tick.
func (ps *PhysicsSystem) clipContactVelocities() {
	for _, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		v := info.body.Velocity()
		clipped := false
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			if arb.Count() == 0 {
				return
			}
			n := arb.Normal()
			if d := v.Dot(n); d > 0 {
				v = v.Sub(n.Mult(d))
				clipped = true
			}
		})
		if clipped {
			info.body.SetVelocityVector(v)
		}
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeBody(e, info)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		info := ps.createBodyInfo(e, w, *t, pb)
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		if pb.Platform {
			ps.platforms[e] = info
		}
		pb.Body = info.body
		pb.Shape = info.shape
	})
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity, info *bodyInfo) {
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
	delete(ps.platforms, e)
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, w *ecs.World, t component.Transform, pb *component.PhysicsBody) *bodyInfo {
	if pb.Static {
		width, depth := pb.Width, pb.Depth
		if width <= 0 || depth <= 0 {
			return nil
		}
		bb := cp.BB{L: t.X - width/2, B: t.Z - depth/2, R: t.X + width/2, T: t.Z + depth/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(pb.Friction)
		if pb.Platform {
			shape.SetSensor(true)
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catPlatform, cp.ALL_CATEGORIES))
		} else {
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catSolid, cp.ALL_CATEGORIES))
		}
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true, top: t.Y + pb.Height}
	}

	radius := pb.Radius
	if radius <= 0 {
		radius = defaultRadius
		pb.Radius = radius
	}
	mass := pb.Mass
	if mass <= 0 {
		mass = 1
		pb.Mass = mass
	}
	if pb.GravityScale == 0 {
		pb.GravityScale = 1
	}

	// Infinite moment: bodies never spin, yaw is owned by the controller.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: t.X, Y: t.Z})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(pb.Friction)

	category := catEnemy
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		category = catPlayer
	}
	shape.SetFilter(cp.NewShapeFilter(uint(e), category, catSolid|catPlayer|catEnemy))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// syncWorldBounds fences the level rectangle with static segments.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	lvl, ok := currentLevel(w)
	if !ok || lvl.MaxX <= lvl.MinX || lvl.MaxZ <= lvl.MinZ {
		return
	}
	if ps.bounds != nil && ps.boundsFor == *lvl {
		return
	}
	for _, shape := range ps.bounds {
		ps.space.RemoveShape(shape)
	}
	ps.bounds = ps.bounds[:0]

	segments := []struct{ a, b cp.Vector }{
		{cp.Vector{X: lvl.MinX, Y: lvl.MinZ}, cp.Vector{X: lvl.MaxX, Y: lvl.MinZ}},
		{cp.Vector{X: lvl.MinX, Y: lvl.MaxZ}, cp.Vector{X: lvl.MaxX, Y: lvl.MaxZ}},
		{cp.Vector{X: lvl.MinX, Y: lvl.MinZ}, cp.Vector{X: lvl.MinX, Y: lvl.MaxZ}},
		{cp.Vector{X: lvl.MaxX, Y: lvl.MinZ}, cp.Vector{X: lvl.MaxX, Y: lvl.MaxZ}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catSolid, cp.ALL_CATEGORIES))
		ps.space.AddShape(shape)
		ps.bounds = append(ps.bounds, shape)
	}
	ps.boundsFor = *lvl
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Static || pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Z = pos.Y
	})
}

func (ps *PhysicsSystem) integrateVertical(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Static {
			return
		}
		step := defaultStepHeight
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.StepHeight > 0 {
			step = p.StepHeight
		}
		floor := ps.FloorAt(w, t.X, t.Z, pb.Radius, t.Y+step)

		pb.VelocityY -= common.Gravity * pb.GravityScale * dt
		t.Y += pb.VelocityY * dt
		if t.Y <= floor {
			t.Y = floor
			if pb.VelocityY < 0 {
				pb.VelocityY = 0
			}
		}
		if c, ok := ecs.Get(w, e, component.ContactComponent.Kind()); ok {
			c.Floor = floor
		}
	})
}

// FloorAt returns the highest walkable surface under a footprint of radius at
// (x, z) whose top is at or below maxTop.
func (ps *PhysicsSystem) FloorAt(w *ecs.World, x, z, radius, maxTop float64) float64 {
	floor := 0.0
	if lvl, ok := currentLevel(w); ok {
		floor = lvl.Ground
	}
	if ps == nil {
		return floor
	}

	reach := radius - 0.01
	if reach < 0 {
		reach = 0
	}
	point := cp.Vector{X: x, Y: z}
	for _, info := range ps.platforms {
		if info.top > maxTop || info.top <= floor {
			continue
		}
		if info.shape.PointQuery(point).Distance <= reach {
			floor = info.top
		}
	}
	return floor
}

// SweepSolid casts a circle of radius from (x, z) along (dx, dz) and reports
// the nearest solid it would move into. Surfaces the circle already touches
// only count when they face the direction of travel.
func (ps *PhysicsSystem) SweepSolid(self ecs.Entity, x, z, dx, dz, radius float64) (cp.SegmentQueryInfo, bool) {
	if ps == nil || ps.space == nil {
		return cp.SegmentQueryInfo{}, false
	}
	dir := cp.Vector{X: dx, Y: dz}
	start := cp.Vector{X: x, Y: z}
	filter := cp.NewShapeFilter(uint(self), cp.ALL_CATEGORIES, catSolid)

	var best cp.SegmentQueryInfo
	ps.space.SegmentQuery(start, start.Add(dir), radius, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if shape.Sensor() || normal.Dot(dir) >= 0 {
			return
		}
		if best.Shape == nil || alpha < best.Alpha {
			best = cp.SegmentQueryInfo{Shape: shape, Point: point, Normal: normal, Alpha: alpha}
		}
	}, nil)
	return best, best.Shape != nil
}

// Raycast returns the first shape in mask hit by a thin ray.
func (ps *PhysicsSystem) Raycast(self ecs.Entity, x, z, dx, dz float64, mask uint) (ecs.Entity, cp.SegmentQueryInfo, bool) {
	if ps == nil || ps.space == nil {
		return 0, cp.SegmentQueryInfo{}, false
	}
	filter := cp.NewShapeFilter(uint(self), cp.ALL_CATEGORIES, mask)
	info := ps.space.SegmentQueryFirst(cp.Vector{X: x, Y: z}, cp.Vector{X: x + dx, Y: z + dz}, 0, filter)
	if info.Shape == nil {
		return 0, info, false
	}
	e := ps.shapes[info.Shape]
	return e, info, true
}

// MaskWalls and MaskHittable select what a ray may hit.
const (
	MaskWalls    = catSolid
	MaskHittable = catSolid | catEnemy
)
