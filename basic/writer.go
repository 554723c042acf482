package basic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type encoder struct {
	w    *bufio.Writer
	line int
	err  error
}

// writeln writes one numbered program line with a CR-LF ending and returns
// the line number it was given. Line numbers start at 10 and step by 10.
// Errors stick so the callers can write the whole program and check once.
func (e *encoder) writeln(text string) int {
	e.line += lineStep
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, "%d %s\r\n", e.line, text)
	}
	return e.line
}

func (e *encoder) writef(format string, args ...interface{}) int {
	return e.writeln(fmt.Sprintf(format, args...))
}

// data writes the packed bytes as DATA statements, valuesPerData values to
// a line with the final line holding the remainder.
func (e *encoder) data(data []byte) {
	vals := make([]string, 0, valuesPerData)
	for i := 0; i < len(data); i += valuesPerData {
		end := i + valuesPerData
		if end > len(data) {
			end = len(data)
		}
		vals = vals[:0]
		for _, v := range data[i:end] {
			vals = append(vals, strconv.Itoa(int(v)))
		}
		e.writeln("DATA " + strings.Join(vals, ","))
	}
}

// loader writes the eight VARPTR/POKE groups that overwrite the string
// storage with the DATA values, printing progress after every second
// buffer.
func (e *encoder) loader(name string) {
	for i := 0; i < numBuffers; i++ {
		v := buffer(i)
		e.writef("X=PEEK(VARPTR(%s)+2)*256+PEEK(VARPTR(%s)+1)", v, v)
		e.writef("FOR I=1 TO %d:READ J:POKE X+I-1,J:NEXT I", bufferSize)
		if i%2 == 1 {
			e.writef(`PRINT @467, "LOADING %s... (%d%%)"`, name, (i+1)/2*20)
		}
	}
}

func buffer(i int) string {
	return string(rune('A'+i)) + "$"
}

// Encode writes the program that redraws the packed screen data to w. The
// name appears in the loading and re-save messages and should have come
// from CleanName. The data must be exactly DataLength bytes, each within
// the semigraphics range.
func Encode(w io.Writer, name string, data []byte) error {
	if len(data) != DataLength {
		return errors.New("basic: screen data is wrong size")
	}
	for _, v := range data {
		if v < minGraphic || v > maxGraphic {
			return errors.New("basic: byte outside the semigraphics range")
		}
	}

	e := &encoder{w: bufio.NewWriter(w), line: firstLine - lineStep}

	e.writeln("CLS")
	e.writeln(`PRINT"***************************************************************"`)
	e.writeln(`PRINT"*                        TRS IMAGE                            *"`)
	e.writeln(`PRINT"***************************************************************"`)
	e.writef(`PRINT @467, "LOADING %s..."`, name)
	e.writef("CLEAR %d", DataLength)

	filler := strings.Repeat(".", bufferSize)
	for i := 0; i < numBuffers; i++ {
		e.writef(`%s="%s"`, buffer(i), filler)
	}

	// Everything from the flag line through the CLS closing the loader is
	// deleted on the first run; a re-run of the saved program then falls
	// straight through to the PRINTs with D1 unset.
	deleteStart := e.writeln("D1 = 1")
	e.data(data)
	e.loader(name)
	deleteEnd := e.writeln("CLS")

	for i := 0; i < numBuffers-1; i++ {
		e.writef("PRINT @%d, %s", i*bufferSize, buffer(i))
	}
	// Truncate the last buffer by one character so the screen does not
	// scroll.
	e.writef("PRINT @%d, LEFT$(%s, %d);", (numBuffers-1)*bufferSize, buffer(numBuffers-1), bufferSize-1)

	e.writef(`K$=INKEY$:IF K$="" GOTO %d`, e.line+lineStep)
	e.writeln("CLS")
	e.writeln(`PRINT"**********************************************************"`)
	e.writeln(`PRINT"* IMAGE GENERATED WITH 'TRS IMAGE' BY KYLE WADSTEN, 2018 *"`)
	e.writeln(`PRINT"**********************************************************"`)
	e.writeln(`PRINT""`)
	e.writeln("IF D1 = 0 THEN END")
	e.writeln(`PRINT "THE IMAGE DATA USED BY THIS PROGRAM HAS BEEN COMPRESSED."`)
	e.writeln(`PRINT "YOU MAY RE-SAVE THIS PROGRAM TO CONSERVE DISK SPACE"`)
	e.writef(`PRINT "BY RUNNING THIS COMMAND: SAVE" CHR$(34) "%s/BAS" CHR$(34)`, name)
	e.writef("IF D1 = 1 THEN DELETE %d-%d", deleteStart, deleteEnd)
	e.writeln("END")

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
