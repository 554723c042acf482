/*
Package screen implements the TRS-80 Model III text-semigraphics screen.

The screen is defined as 128 by 48 pixels exactly which is addressed as 16
rows of 64 characters. Each character covers a 2 by 3 pixel block and the
block graphics characters occupy values 128 to 191, one bit per pixel, so a
full screen packs into 1024 printable bytes.
*/
package screen

const (
	// Width and Height are the pixel dimensions of the screen.
	Width  = 128
	Height = 48

	blockWidth  = 2
	blockHeight = 3
	blockX      = Width / blockWidth
	blockY      = Height / blockHeight

	// NumBlocks is the number of semigraphics characters needed to cover
	// the screen, and therefore the number of bytes produced by Pack.
	NumBlocks = blockX * blockY

	// DotWidth and DotHeight are the dimensions of one screen pixel on
	// the preview canvas.
	DotWidth  = 4
	DotHeight = 8

	// CanvasWidth and CanvasHeight are the preview canvas dimensions in
	// canvas pixels.
	CanvasWidth  = Width * DotWidth
	CanvasHeight = Height * DotHeight

	graphicsBase = 128
)
