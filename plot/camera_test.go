package plot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hmcol/graff/function"
	"github.com/hmcol/graff/plot"
)

func TestCameraEdges(t *testing.T) {
	cam := plot.NewCamera(function.Point{X: 1, Y: 2}, 4, 6)

	require.Equal(t, -1.0, cam.Left())
	require.Equal(t, 3.0, cam.Right())
	require.Equal(t, 5.0, cam.Top())
	require.Equal(t, -1.0, cam.Bottom())

	require.Panics(t, func() { plot.NewCamera(function.Point{}, 0, 1) })
	require.Panics(t, func() { plot.NewCamera(function.Point{}, 1, -1) })
}

func TestCameraMovement(t *testing.T) {
	cam := plot.NewCamera(function.Point{}, 2, 2)

	cam.MoveTo(function.Point{X: 3, Y: -1})
	require.Equal(t, function.Point{X: 3, Y: -1}, cam.Center())

	cam.MoveBy(-1, 2)
	require.Equal(t, function.Point{X: 2, Y: 1}, cam.Center())

	cam.ZoomBy(2)
	require.Equal(t, 0.0, cam.Left())
	require.Equal(t, 4.0, cam.Right())

	require.Panics(t, func() { cam.ZoomBy(0) })
}

func TestSetAspectRatio(t *testing.T) {
	cam := plot.NewCamera(function.Point{}, 16, 16)

	// width stays, height follows the ratio
	cam.SetAspectRatio(16.0 / 9.0)
	require.Equal(t, -8.0, cam.Left())
	require.Equal(t, 8.0, cam.Right())
	require.InDelta(t, 4.5, cam.Top(), 1e-12)
	require.InDelta(t, -4.5, cam.Bottom(), 1e-12)
}

func TestToScreen(t *testing.T) {
	cam := plot.NewCamera(function.Point{}, 4, 2)
	const w, h = 800, 600

	// view corners map to screen corners, with the y axis inverted
	p := cam.ToScreen(function.Point{X: cam.Left(), Y: cam.Top()}, w, h)
	require.Equal(t, function.Point{X: 0, Y: 0}, p)

	p = cam.ToScreen(function.Point{X: cam.Right(), Y: cam.Bottom()}, w, h)
	require.Equal(t, function.Point{X: w, Y: h}, p)

	p = cam.ToScreen(function.Point{}, w, h)
	require.Equal(t, function.Point{X: w / 2, Y: h / 2}, p)
}

func TestGridLines(t *testing.T) {
	cam := plot.NewCamera(function.Point{X: 0.5, Y: 0}, 3, 2)

	// view spans x in [-1, 2], y in [-1, 1]
	require.Equal(t, []float64{-1, 0, 1, 2}, cam.GridXs())
	require.Equal(t, []float64{-1, 0, 1}, cam.GridYs())
}

func TestPolyline(t *testing.T) {
	cam := plot.NewCamera(function.Point{}, 2, 2)
	const w, h = 100, 100

	// f(x) = x maps the view diagonal corner to corner
	points := cam.Polyline(function.X, 10, w, h)
	require.Len(t, points, 11)

	require.InDelta(t, 0, points[0].X, 1e-9)
	require.InDelta(t, h, points[0].Y, 1e-9)
	require.InDelta(t, w, points[10].X, 1e-9)
	require.InDelta(t, 0, points[10].Y, 1e-9)
}

func TestFitToPoints(t *testing.T) {
	cam := plot.NewCamera(function.Point{}, 1, 1)

	cam.FitToPoints([]function.Point{{X: -2, Y: 0}, {X: 4, Y: 3}}, 0)
	require.Equal(t, function.Point{X: 1, Y: 1.5}, cam.Center())
	require.Equal(t, -2.0, cam.Left())
	require.Equal(t, 4.0, cam.Right())
	require.Equal(t, 3.0, cam.Top())
	require.Equal(t, 0.0, cam.Bottom())

	// a single point keeps a unit view around it
	cam.FitToPoints([]function.Point{{X: 5, Y: 5}}, 0.1)
	require.Equal(t, function.Point{X: 5, Y: 5}, cam.Center())
	require.Equal(t, 4.5, cam.Left())

	require.Panics(t, func() { cam.FitToPoints(nil, 0) })
}
