package trsimage

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/kwadsten/trs-image/screen"
)

// canvas returns the current viewport contents scaled onto the fixed
// preview canvas. Anywhere the viewport hangs over the stretched image
// comes up white, matching the letterbox padding.
func (d *Document) canvas() *image.RGBA {
	x0 := int(math.Round(d.viewport.X))
	y0 := int(math.Round(d.viewport.Y))
	x1 := int(math.Round(d.viewport.X + d.viewport.Width))
	y1 := int(math.Round(d.viewport.Y + d.viewport.Height))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	window := image.NewRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	draw.Draw(window, window.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(window, d.stretched.Bounds().Sub(image.Pt(x0, y0)), d.stretched, image.Point{}, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, screen.CanvasWidth, screen.CanvasHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), window, window.Bounds(), draw.Src, nil)
	return dst
}

// sample builds the averaged brightness grid for the current viewport,
// (R+G+B)/3 over each 4 by 8 canvas cell. The result is cached until the
// viewport changes.
func (d *Document) sample() *[screen.Height][screen.Width]float64 {
	if d.brightness != nil {
		return d.brightness
	}

	c := d.canvas()
	grid := new([screen.Height][screen.Width]float64)
	for ty := 0; ty < screen.Height; ty++ {
		for tx := 0; tx < screen.Width; tx++ {
			var sum float64
			for y := 0; y < screen.DotHeight; y++ {
				i := c.PixOffset(tx*screen.DotWidth, ty*screen.DotHeight+y)
				for x := 0; x < screen.DotWidth; x++ {
					p := c.Pix[i+x*4 : i+x*4+3]
					sum += float64(int(p[0])+int(p[1])+int(p[2])) / 3
				}
			}
			grid[ty][tx] = sum / (screen.DotWidth * screen.DotHeight)
		}
	}

	d.brightness = grid
	return d.brightness
}

// Grid thresholds the brightness grid with the current contrast. A cell is
// lit when its average brightness exceeds 255*contrast/100; the invert
// flag flips the result here, before packing or preview ever see it.
func (d *Document) Grid() *screen.Grid {
	bright := d.sample()
	cutoff := 255 * float64(d.contrast) / 100

	var g screen.Grid
	for y := range bright {
		for x, avg := range bright[y] {
			on := avg > cutoff
			if d.inverted {
				on = !on
			}
			if on {
				g[y][x] = 1
			}
		}
	}
	return &g
}
