package screen

// Grid holds the screen contents, one cell per pixel, non-zero for lit.
type Grid [Height][Width]byte

// Pack converts the grid into its semigraphics character values, scanning
// the 2 by 3 blocks row-major. The bit layout within a block is
//
//	b0 b1
//	b2 b3
//	b4 b5
//
// giving 128 + b5<<5 + b4<<4 + b3<<3 + b2<<2 + b1<<1 + b0, so every byte
// lands in 128 to 191 and is safe inside a quoted BASIC string.
func (g *Grid) Pack() []byte {
	b := make([]byte, 0, NumBlocks)
	for y := 0; y < Height; y += blockHeight {
		for x := 0; x < Width; x += blockWidth {
			b = append(b, graphicsBase+
				bit(g[y+2][x+1])<<5+bit(g[y+2][x])<<4+
				bit(g[y+1][x+1])<<3+bit(g[y+1][x])<<2+
				bit(g[y][x+1])<<1+bit(g[y][x]))
		}
	}
	return b
}

func bit(c byte) byte {
	if c != 0 {
		return 1
	}
	return 0
}
