package trsimage

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/kwadsten/trs-image/screen"
)

// RenderPreview draws the current grid onto a 512 by 384 bitmap, one 4 by
// 8 white rectangle per lit screen pixel. It consumes the same grid the
// program emitter packs, so the preview always matches the emitted output.
func (d *Document) RenderPreview() *image.RGBA {
	g := d.Grid()

	m := image.NewRGBA(image.Rect(0, 0, screen.CanvasWidth, screen.CanvasHeight))
	draw.Draw(m, m.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	white := image.NewUniform(color.White)
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if g[y][x] == 0 {
				continue
			}
			r := image.Rect(x*screen.DotWidth, y*screen.DotHeight,
				(x+1)*screen.DotWidth, (y+1)*screen.DotHeight)
			draw.Draw(m, r, white, image.Point{}, draw.Src)
		}
	}
	return m
}
