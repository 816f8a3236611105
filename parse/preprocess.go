package parse

import (
	"bufio"
	"io"
	"strings"
)

// Header must open every source program as the first logical line.
const Header = ".IPPcode24"

// Line is one logical source line that survived preprocessing.
type Line struct {
	// Num is the 1-based physical line number.
	Num int

	Text string
}

// Preprocess reads the whole source, strips comments and blank lines,
// and checks the language header. It returns the instruction lines in
// source order, without the header.
func Preprocess(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(NewSourceReader(r))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []Line
	sawHeader := false

	num := 0
	for sc.Scan() {
		num++

		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if !sawHeader {
			if text != Header {
				return nil, &Error{
					Kind: ErrHeader,
					Line: num,
					Text: text,
					Msg:  "first line must be the language header",
				}
			}
			sawHeader = true
			continue
		}

		lines = append(lines, Line{Num: num, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{
			Kind: ErrInternal,
			Msg:  "reading source: " + err.Error(),
		}
	}

	if !sawHeader {
		return nil, &Error{
			Kind: ErrHeader,
			Msg:  "source is missing the language header",
		}
	}

	return lines, nil
}
