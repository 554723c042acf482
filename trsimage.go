/*
Package trsimage converts a modern raster image into a compact BASIC
program that redraws it on a TRS-80 Model III monochrome screen.
*/
package trsimage

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kwadsten/trs-image/basic"
)

// TRSImage ties the converter to its settings store and logger.
type TRSImage struct {
	config *ConfigDB
	logger *log.Logger
}

// New returns a converter using the given settings store and logger.
func New(config *ConfigDB, logger *log.Logger) *TRSImage {
	return &TRSImage{
		config: config,
		logger: logger,
	}
}

// ConvertOptions adjust the view before conversion and select the output
// artifacts. Pan and Zoom are in keypress steps, Contrast is the absolute
// threshold value.
type ConvertOptions struct {
	OutputDir  string
	PanX, PanY int
	Zoom       int
	Contrast   int
	Invert     bool
	ImageMap   bool
	Preview    string
}

func (t *TRSImage) open(input string, opts ConvertOptions) (*Document, error) {
	doc, err := OpenDocument(input)
	if err != nil {
		return nil, err
	}

	// Zoom before pan: the pan clamp depends on the viewport size.
	doc.Zoom(opts.Zoom, false)
	doc.Pan(opts.PanX, opts.PanY, false)
	doc.SetContrast(opts.Contrast)
	if opts.Invert {
		doc.ToggleInvert()
	}
	return doc, nil
}

// Convert renders the image at input and writes <NAME>.BAS into the output
// directory, plus the optional image map and preview artifacts. The last
// used directories are recorded in the settings store on success.
func (t *TRSImage) Convert(input string, opts ConvertOptions) error {
	doc, err := t.open(input, opts)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := basic.CleanName(base)

	program := filepath.Join(opts.OutputDir, name+".BAS")
	if err := writeFile(program, func(w io.Writer) error {
		return doc.WriteProgram(w, name)
	}); err != nil {
		return fmt.Errorf("writing %s: %w", program, err)
	}
	t.logger.Printf("wrote %s", program)

	if opts.ImageMap {
		imageMap := filepath.Join(opts.OutputDir, base+".tim")
		if err := writeFile(imageMap, doc.WriteImageMap); err != nil {
			return fmt.Errorf("writing %s: %w", imageMap, err)
		}
		t.logger.Printf("wrote %s", imageMap)
	}

	if opts.Preview != "" {
		if err := t.writePreview(doc, opts.Preview); err != nil {
			return err
		}
	}

	return t.remember(input, opts.OutputDir)
}

// Preview renders the image at input and writes only the preview bitmap as
// a PNG to output.
func (t *TRSImage) Preview(input, output string, opts ConvertOptions) error {
	doc, err := t.open(input, opts)
	if err != nil {
		return err
	}

	if err := t.writePreview(doc, output); err != nil {
		return err
	}

	return t.remember(input, "")
}

func (t *TRSImage) writePreview(doc *Document, path string) error {
	if err := writeFile(path, func(w io.Writer) error {
		return png.Encode(w, doc.RenderPreview())
	}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	t.logger.Printf("wrote %s", path)
	return nil
}

func (t *TRSImage) remember(input, outputDir string) error {
	dir, err := filepath.Abs(filepath.Dir(input))
	if err != nil {
		return err
	}
	if err := t.config.SetInputDir(dir); err != nil {
		return err
	}
	if outputDir == "" {
		return nil
	}
	if dir, err = filepath.Abs(outputDir); err != nil {
		return err
	}
	return t.config.SetOutputDir(dir)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
