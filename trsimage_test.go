package trsimage

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataValues(t *testing.T, program string) []string {
	t.Helper()

	var values []string
	for _, line := range strings.Split(program, "\r\n") {
		_, text, found := strings.Cut(line, " ")
		if !found || !strings.HasPrefix(text, "DATA ") {
			continue
		}
		values = append(values, strings.Split(strings.TrimPrefix(text, "DATA "), ",")...)
	}
	return values
}

func TestWriteProgramAllWhite(t *testing.T) {
	d := NewDocument(uniformImage(256, 192, color.White))

	b := new(bytes.Buffer)
	require.NoError(t, d.WriteProgram(b, "SUNSET"))

	values := dataValues(t, b.String())
	require.Len(t, values, 1024)
	for _, v := range values {
		// Every block fully lit packs to 128+32+16+8+4+2+1.
		require.Equal(t, "191", v)
	}

	var dataLines int
	for _, line := range strings.Split(b.String(), "\r\n") {
		if _, text, found := strings.Cut(line, " "); found && strings.HasPrefix(text, "DATA ") {
			dataLines++
		}
	}
	assert.Equal(t, 21, dataLines)
}

func TestWriteImageMap(t *testing.T) {
	d := NewDocument(uniformImage(256, 192, color.White))

	b := new(bytes.Buffer)
	require.NoError(t, d.WriteImageMap(b))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 48)
	for _, line := range lines {
		require.Equal(t, strings.Repeat("X", 128), line)
	}
}

func TestOpenDocumentErrors(t *testing.T) {
	_, err := OpenDocument(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	bogus := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = OpenDocument(bogus)
	assert.Error(t, err)
}

func TestConfigDB(t *testing.T) {
	config, err := NewConfigDB(filepath.Join(t.TempDir(), "trsimage.db"))
	require.NoError(t, err)
	defer config.Close()

	dir, err := config.InputDir()
	require.NoError(t, err)
	assert.Empty(t, dir)

	require.NoError(t, config.SetInputDir("/photos"))
	require.NoError(t, config.SetOutputDir("/floppies"))
	require.NoError(t, config.SetOutputDir("/disks"))

	dir, err = config.InputDir()
	require.NoError(t, err)
	assert.Equal(t, "/photos", dir)

	dir, err = config.OutputDir()
	require.NoError(t, err)
	assert.Equal(t, "/disks", dir)
}

func TestConvert(t *testing.T) {
	tmp := t.TempDir()

	input := filepath.Join(tmp, "holiday snap.png")
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniformImage(256, 192, color.White)))
	require.NoError(t, f.Close())

	config, err := NewConfigDB(filepath.Join(tmp, "trsimage.db"))
	require.NoError(t, err)
	defer config.Close()

	outDir := filepath.Join(tmp, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	trs := New(config, log.New(io.Discard, "", 0))
	require.NoError(t, trs.Convert(input, ConvertOptions{
		OutputDir: outDir,
		Contrast:  60,
		ImageMap:  true,
		Preview:   filepath.Join(outDir, "preview.png"),
	}))

	program, err := os.ReadFile(filepath.Join(outDir, "HOLIDAYS.BAS"))
	require.NoError(t, err)
	assert.Len(t, dataValues(t, string(program)), 1024)

	_, err = os.Stat(filepath.Join(outDir, "holiday snap.tim"))
	assert.NoError(t, err)

	pf, err := os.Open(filepath.Join(outDir, "preview.png"))
	require.NoError(t, err)
	defer pf.Close()
	m, err := png.Decode(pf)
	require.NoError(t, err)
	assert.Equal(t, 512, m.Bounds().Dx())
	assert.Equal(t, 384, m.Bounds().Dy())

	dir, err := config.InputDir()
	require.NoError(t, err)
	assert.Equal(t, tmp, dir)

	dir, err = config.OutputDir()
	require.NoError(t, err)
	assert.Equal(t, outDir, dir)
}
