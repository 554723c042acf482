package screen

import (
	"bufio"
	"io"
)

// EncodeMap writes the grid to w as a plain text image map, one line per
// screen row with 'X' for lit pixels and a space otherwise. The format is
// understood by the TRS-80 Screen Designer tool.
func EncodeMap(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := byte(' ')
			if g[y][x] != 0 {
				c = 'X'
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
