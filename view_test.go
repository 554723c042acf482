package trsimage

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func TestLetterbox(t *testing.T) {
	for _, tcase := range []struct {
		srcW, srcH int
	}{
		{256, 192},
		{512, 384},
		{640, 480},
		{1024, 100},
		{100, 1024},
		{1, 1},
		{1920, 1080},
		{33, 47},
	} {
		w, h, marginX, marginY := letterbox(tcase.srcW, tcase.srcH)

		assert.InDelta(t, targetRatio, w/h, 1e-9, "%dx%d", tcase.srcW, tcase.srcH)
		assert.GreaterOrEqual(t, marginX, 0.0)
		assert.GreaterOrEqual(t, marginY, 0.0)

		// The source sits centred inside the stretched canvas.
		assert.InDelta(t, float64(tcase.srcW)+2*marginX, w, 1e-9)
		assert.InDelta(t, float64(tcase.srcH)+2*marginY, h, 1e-9)
	}
}

func TestPanClamp(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))
	size := d.View().Viewport

	for i := 0; i < 100; i++ {
		d.Pan(1, 1, true)
	}
	v := d.View().Viewport
	assert.Equal(t, size.Width, v.Width)
	assert.Equal(t, size.Height, v.Height)
	assert.LessOrEqual(t, v.X, d.stretchedW+d.marginX-d.moveRate)
	assert.LessOrEqual(t, v.Y, d.stretchedH+d.marginY-d.moveRate)

	for i := 0; i < 100; i++ {
		d.Pan(-1, -1, true)
	}
	v = d.View().Viewport
	assert.Equal(t, size.Width, v.Width)
	assert.Equal(t, size.Height, v.Height)
	assert.GreaterOrEqual(t, v.X, -v.Width-d.marginX+d.moveRate)
	assert.GreaterOrEqual(t, v.Y, -v.Height-d.marginY+d.moveRate)
}

func TestZoomRoundTrip(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))
	size := d.View().Viewport

	for i := 0; i < 3; i++ {
		d.Zoom(1, false)
	}
	require.Equal(t, 3, d.View().Zoom)
	for i := 0; i < 3; i++ {
		d.Zoom(-1, false)
	}

	v := d.View()
	assert.Equal(t, 0, v.Zoom)
	assert.InEpsilon(t, size.Width, v.Viewport.Width, 0.05)
	assert.InEpsilon(t, size.Height, v.Viewport.Height, 0.05)
}

func TestZoomClamp(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))

	v := d.Zoom(100, true)
	assert.Equal(t, maxZoom, v.Zoom)
	assert.GreaterOrEqual(t, v.Viewport.Width, minViewportSize)
	assert.GreaterOrEqual(t, v.Viewport.Height, minViewportSize)

	d.Reset()
	v = d.Zoom(-100, true)
	assert.Equal(t, minZoom, v.Zoom)
	assert.Greater(t, v.Viewport.Width, 0.0)
	assert.Greater(t, v.Viewport.Height, 0.0)
}

func TestZoomAcceleration(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))
	assert.Equal(t, 2, d.Zoom(1, true).Zoom)
}

func TestContrast(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))

	assert.Equal(t, defaultContrast, d.View().Contrast)
	assert.Equal(t, maxContrast, d.SetContrast(150).Contrast)
	assert.Equal(t, minContrast, d.SetContrast(-10).Contrast)

	d.SetContrast(50)
	assert.Equal(t, 52, d.AdjustContrast(1, false).Contrast)
	assert.Equal(t, 42, d.AdjustContrast(-1, true).Contrast)
}

func TestReset(t *testing.T) {
	d := NewDocument(uniformImage(640, 480, color.White))
	d.Zoom(5, false)
	d.Pan(2, 1, false)
	d.SetContrast(90)
	d.ToggleInvert()

	v := d.Reset()
	assert.Equal(t, defaultZoom, v.Zoom)
	assert.Equal(t, defaultContrast, v.Contrast)
	assert.False(t, v.Inverted)
	assert.Equal(t, Viewport{Width: d.stretchedW, Height: d.stretchedH}, v.Viewport)
}
