package main

import "math"

const (
	minZoom = 0.15
	maxZoom = 5.0
)

// camera maps the X/Z plane to screen pixels. +Z points up the screen.
type camera struct {
	unitPixels float64
	zoom       float64
	panX       float64
	panY       float64
}

func (c *camera) scale() float64 {
	return c.unitPixels * c.zoom
}

func (c *camera) worldToScreen(x, z float64) (sx, sy float64) {
	s := c.scale()
	return c.panX + x*s, c.panY - z*s
}

func (c *camera) screenToWorld(sx, sy float64) (x, z float64) {
	s := c.scale()
	return (sx - c.panX) / s, (c.panY - sy) / s
}

// zoomAt scales by factor while keeping the world point under (sx, sy) fixed.
func (c *camera) zoomAt(sx, sy, factor float64) {
	x, z := c.screenToWorld(sx, sy)
	c.zoom = clampZoom(c.zoom * factor)
	s := c.scale()
	c.panX = sx - x*s
	c.panY = sy + z*s
}

// frame fits the rectangle into a w×h canvas with a small margin.
func (c *camera) frame(minX, minZ, maxX, maxZ float64, w, h int) {
	worldW := math.Max(maxX-minX+4, 1)
	worldH := math.Max(maxZ-minZ+4, 1)
	target := math.Min(float64(w)/worldW, float64(h)/worldH)
	if c.unitPixels <= 0 {
		c.unitPixels = 16
	}
	c.zoom = clampZoom(target / c.unitPixels)

	s := c.scale()
	c.panX = float64(w)/2 - (minX+maxX)/2*s
	c.panY = float64(h)/2 + (minZ+maxZ)/2*s
}

func clampZoom(z float64) float64 {
	return math.Max(minZoom, math.Min(maxZoom, z))
}
