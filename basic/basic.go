/*
Package basic emits the TRS-80 LBASIC program that redraws a packed screen.

The generated program uses the string packing technique: the packed screen
bytes are read from DATA statements into eight fixed 128 character string
variables by poking their backing storage directly, then printed at the
right screen offsets. On its first run the program deletes the flag, DATA
and loader lines, so re-saving it afterwards roughly halves its size on
disk while the loaded string values persist in the saved program image.
*/
package basic

const (
	firstLine = 10
	lineStep  = 10

	// valuesPerData is how many byte values go on one DATA line. A
	// convention rather than an interpreter limit, but the tests and the
	// documented program layout assume it.
	valuesPerData = 50

	numBuffers = 8
	bufferSize = 128

	// DataLength is the expected length of the packed screen data.
	DataLength = numBuffers * bufferSize

	// The block graphics characters; anything else would corrupt the
	// packed strings.
	minGraphic = 128
	maxGraphic = 191

	nameLength = 8
)

// CleanName reduces a filename to something a TRS-80 can store: the first
// eight ASCII letters or digits, uppercased. Names with nothing usable
// become "IMAGE".
func CleanName(name string) string {
	b := make([]byte, 0, nameLength)
	for i := 0; i < len(name) && len(b) < nameLength; i++ {
		switch c := name[i]; {
		case c >= 'a' && c <= 'z':
			b = append(b, c-'a'+'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b = append(b, c)
		}
	}
	if len(b) == 0 {
		return "IMAGE"
	}
	return string(b)
}
