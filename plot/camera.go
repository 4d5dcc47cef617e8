// Package plot implements the coordinate side of the rendering contract:
// a camera over the Euclidean plane with world-to-screen transforms,
// grid-line placement and polyline generation for sampled functions.
// Drawing itself (windowing, input, rasterization) is left to the host
// rendering framework, which consumes the plain coordinate sequences
// produced here.
package plot

import (
	"fmt"
	"math"

	"github.com/hmcol/graff/function"
	"github.com/hmcol/graff/utils"
)

// Camera is an axis-aligned view rectangle of the plane, described by its
// center and its world-space width and height.
type Camera struct {
	center        function.Point
	width, height float64
}

// NewCamera returns a camera centered on center with the given world-space
// extent. Panics unless width and height are positive.
func NewCamera(center function.Point, width, height float64) *Camera {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("cannot NewCamera: extent (%g x %g) must be positive", width, height))
	}

	return &Camera{center: center, width: width, height: height}
}

// Center returns the camera center.
func (c *Camera) Center() function.Point { return c.center }

// Left returns the world x coordinate of the left view edge.
func (c *Camera) Left() float64 { return c.center.X - c.width/2 }

// Right returns the world x coordinate of the right view edge.
func (c *Camera) Right() float64 { return c.center.X + c.width/2 }

// Top returns the world y coordinate of the top view edge.
func (c *Camera) Top() float64 { return c.center.Y + c.height/2 }

// Bottom returns the world y coordinate of the bottom view edge.
func (c *Camera) Bottom() float64 { return c.center.Y - c.height/2 }

// SetAspectRatio leaves the width unchanged and adjusts the height so that
// width/height matches the given ratio, e.g. after a window rescale.
func (c *Camera) SetAspectRatio(ratio float64) {
	if ratio <= 0 {
		panic(fmt.Sprintf("cannot SetAspectRatio: ratio (%g) must be positive", ratio))
	}
	c.height = c.width / ratio
}

// MoveTo recenters the view on p.
func (c *Camera) MoveTo(p function.Point) {
	c.center = p
}

// MoveBy shifts the view center by (dx, dy) in world coordinates.
func (c *Camera) MoveBy(dx, dy float64) {
	c.center.X += dx
	c.center.Y += dy
}

// ZoomBy scales the view extent by factor; values below 1 zoom in.
// Panics unless factor is positive.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		panic(fmt.Sprintf("cannot ZoomBy: factor (%g) must be positive", factor))
	}
	c.width *= factor
	c.height *= factor
}

// ToScreenX maps a world x coordinate to a pixel column on a screen of the
// given width.
func (c *Camera) ToScreenX(x, screenWidth float64) float64 {
	return (x - c.Left()) * screenWidth / c.width
}

// ToScreenY maps a world y coordinate to a pixel row on a screen of the
// given height. Screen y grows downward, so the axis is inverted.
func (c *Camera) ToScreenY(y, screenHeight float64) float64 {
	return -(y - c.Top()) * screenHeight / c.height
}

// ToScreen maps a world point to screen coordinates.
func (c *Camera) ToScreen(p function.Point, screenWidth, screenHeight float64) function.Point {
	return function.Point{
		X: c.ToScreenX(p.X, screenWidth),
		Y: c.ToScreenY(p.Y, screenHeight),
	}
}

// GridXs returns the integer world x coordinates whose vertical grid lines
// intersect the view, left to right.
func (c *Camera) GridXs() []float64 {
	return integersIn(c.Left(), c.Right())
}

// GridYs returns the integer world y coordinates whose horizontal grid
// lines intersect the view, bottom to top.
func (c *Camera) GridYs() []float64 {
	return integersIn(c.Bottom(), c.Top())
}

func integersIn(lo, hi float64) (vs []float64) {
	for v := math.Floor(lo); v <= math.Ceil(hi); v++ {
		vs = append(vs, v)
	}
	return
}

// Polyline samples f over the visible interval and maps the samples to a
// screen of the given dimensions: the point sequence a renderer joins with
// line segments to draw the curve.
func (c *Camera) Polyline(f function.Function, steps int, screenWidth, screenHeight float64) (points []function.Point) {
	samples := function.Sample(f, function.Interval{A: c.Left(), B: c.Right()}, steps)

	points = make([]function.Point, len(samples))
	for i, p := range samples {
		points[i] = c.ToScreen(p, screenWidth, screenHeight)
	}
	return
}

// FitToPoints recenters and resizes the view so that every point is
// visible, with the extent padded by the given fractional margin on each
// axis. Panics if points is empty.
func (c *Camera) FitToPoints(points []function.Point, margin float64) {
	if len(points) == 0 {
		panic("cannot FitToPoints: no points")
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	minX, maxX := utils.MinSlice(xs), utils.MaxSlice(xs)
	minY, maxY := utils.MinSlice(ys), utils.MaxSlice(ys)

	c.center = function.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}

	// degenerate extents (single sample, constant function) keep a unit view
	c.width = math.Max((maxX-minX)*(1+margin), 1)
	c.height = math.Max((maxY-minY)*(1+margin), 1)
}
