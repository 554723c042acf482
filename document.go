package trsimage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/kwadsten/trs-image/basic"
	"github.com/kwadsten/trs-image/screen"
)

// Document is one loaded image together with its adjustable view state.
// All mutating operations return the updated view snapshot for the caller
// to redraw from; none of them touch the source image itself.
type Document struct {
	source    image.Image
	stretched *image.RGBA

	stretchedW, stretchedH float64
	marginX, marginY       float64
	moveRate               float64

	viewport Viewport
	zoom     int
	contrast int
	inverted bool

	// Averaged cell brightness for the current viewport; nil forces a
	// resample. Contrast and invert changes deliberately leave it alone
	// so only the cheap thresholding pass reruns.
	brightness *[screen.Height][screen.Width]float64
}

// ViewState is a snapshot of the adjustable view parameters.
type ViewState struct {
	Viewport Viewport
	Zoom     int
	Contrast int
	Inverted bool
}

// NewDocument wraps an already decoded image. The image is letterboxed
// with white padding to the screen aspect ratio and the view reset to its
// defaults.
func NewDocument(m image.Image) *Document {
	b := m.Bounds()
	w, h, marginX, marginY := letterbox(b.Dx(), b.Dy())

	stretched := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	draw.Draw(stretched, stretched.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(stretched, b.Sub(b.Min).Add(image.Pt(int(marginX), int(marginY))), m, b.Min, draw.Src)

	d := &Document{
		source:     m,
		stretched:  stretched,
		stretchedW: w,
		stretchedH: h,
		marginX:    marginX,
		marginY:    marginY,
		moveRate:   w / 40,
	}
	d.Reset()
	return d
}

// OpenDocument decodes the image at path and wraps it in a new document. A
// failed decode leaves any previously held document untouched as nothing
// is shared.
func OpenDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return NewDocument(m), nil
}

// Source returns the original decoded image, untouched by any view
// operation. Front-ends draw their source pane from it.
func (d *Document) Source() image.Image {
	return d.source
}

// View returns the current view snapshot.
func (d *Document) View() ViewState {
	return ViewState{
		Viewport: d.viewport,
		Zoom:     d.zoom,
		Contrast: d.contrast,
		Inverted: d.inverted,
	}
}

// Pan moves the viewport by dx, dy steps of the move rate, seven times as
// far when accelerated.
func (d *Document) Pan(dx, dy int, accelerated bool) ViewState {
	d.viewport = d.viewport.pan(float64(dx)*d.moveRate, float64(dy)*d.moveRate,
		accelerated, d.stretchedW, d.stretchedH, d.marginX, d.marginY, d.moveRate)
	d.brightness = nil
	return d.View()
}

// Zoom changes the zoom level by delta steps, clamped to [-50, 50], and
// rescales the viewport around its centre. Accelerated steps count double.
func (d *Document) Zoom(delta int, accelerated bool) ViewState {
	if accelerated {
		delta *= zoomAccelerator
	}
	z := d.zoom + delta*zoomRate
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	d.viewport = d.viewport.zoomTo(d.zoom, z)
	d.zoom = z
	d.brightness = nil
	return d.View()
}

// AdjustContrast changes the contrast by delta steps of the contrast rate,
// five times as far when accelerated.
func (d *Document) AdjustContrast(delta int, accelerated bool) ViewState {
	if accelerated {
		delta *= contrastAccelerator
	}
	return d.SetContrast(d.contrast + delta*contrastRate)
}

// SetContrast sets the contrast threshold directly, clamped to [0, 100].
// Only the thresholding pass reruns; the sampled brightness grid is kept.
func (d *Document) SetContrast(value int) ViewState {
	if value < minContrast {
		value = minContrast
	}
	if value > maxContrast {
		value = maxContrast
	}
	d.contrast = value
	return d.View()
}

// ToggleInvert flips the black/white sense of the screen. The flag is
// applied when the grid is built so preview and emitted program always
// agree.
func (d *Document) ToggleInvert() ViewState {
	d.inverted = !d.inverted
	return d.View()
}

// Reset restores the default view: the whole stretched image, zoom 0,
// contrast 60, normal colors.
func (d *Document) Reset() ViewState {
	d.viewport = Viewport{Width: d.stretchedW, Height: d.stretchedH}
	d.zoom = defaultZoom
	d.contrast = defaultContrast
	d.inverted = false
	d.brightness = nil
	return d.View()
}

// WriteProgram emits the BASIC program for the current screen contents.
// The name appears in the program's messages and should have come from
// basic.CleanName.
func (d *Document) WriteProgram(w io.Writer, name string) error {
	return basic.Encode(w, name, d.Grid().Pack())
}

// WriteImageMap emits the plain text image map for the current screen
// contents.
func (d *Document) WriteImageMap(w io.Writer) error {
	return screen.EncodeMap(w, d.Grid())
}
