package trsimage

import (
	"github.com/kwadsten/trs-image/screen"
)

// The letterbox ratio comes from the preview canvas: 512 by 384, exactly
// 4:3.
const targetRatio = float64(screen.CanvasWidth) / float64(screen.CanvasHeight)

const (
	defaultContrast     = 60
	minContrast         = 0
	maxContrast         = 100
	contrastRate        = 2
	contrastAccelerator = 5

	defaultZoom     = 0
	minZoom         = -50
	maxZoom         = 50
	zoomRate        = 1
	zoomAccelerator = 2

	moveAccelerator = 7

	// A zoomed viewport may never collapse; one stretched-image pixel is
	// the floor.
	minViewportSize = 1.0
)

// Viewport is the sub-rectangle of the stretched image currently sampled,
// in stretched-image coordinates. The origin may be negative while panning
// over the letterbox padding.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// letterbox computes the stretched canvas size for a source image along
// with the padding margin added on each side to bring it to the screen
// aspect ratio. Landscape sources keep their width and grow in height,
// everything else keeps its height and grows in width.
func letterbox(srcW, srcH int) (w, h, marginX, marginY float64) {
	fw, fh := float64(srcW), float64(srcH)
	if fw/fh > targetRatio {
		w = fw
		h = fw / targetRatio
		marginY = (h - fh) / 2
	} else {
		h = fh
		w = fh * targetRatio
		marginX = (w - fw) / 2
	}
	return
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// pan moves the viewport origin without changing its size. The origin is
// clamped per axis so the window cannot leave the padded canvas entirely,
// with one moveRate of slack left so the edge pixels stay reachable.
func (v Viewport) pan(dx, dy float64, accelerated bool, stretchedW, stretchedH, marginX, marginY, moveRate float64) Viewport {
	if accelerated {
		dx *= moveAccelerator
		dy *= moveAccelerator
	}
	v.X = clamp(v.X+dx, -v.Width-marginX+moveRate, stretchedW+marginX-moveRate)
	v.Y = clamp(v.Y+dy, -v.Height-marginY+moveRate, stretchedH+marginY-moveRate)
	return v
}

// zoomTo resizes the viewport for a change in zoom level, shifting the
// origin by half the size change so the visual centre stays put.
func (v Viewport) zoomTo(oldZoom, newZoom int) Viewport {
	delta := float64(newZoom)/10 - float64(oldZoom)/10
	v.X += v.Width * delta / 2
	v.Y += v.Height * delta / 2
	v.Width -= v.Width * delta
	v.Height -= v.Height * delta
	if v.Width < minViewportSize {
		v.Width = minViewportSize
	}
	if v.Height < minViewportSize {
		v.Height = minViewportSize
	}
	return v
}
