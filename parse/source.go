package parse

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewSourceReader wraps r so that a leading byte order mark is handled
// transparently. A UTF-8 mark is dropped and UTF-16 input is decoded
// to UTF-8. Input without a mark passes through unchanged.
func NewSourceReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	head, err := br.Peek(3)
	if err != nil && len(head) < 2 {
		return br
	}

	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		br.Discard(3)
		return br
	}

	if head[0] == 0xFF && head[1] == 0xFE {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec)
	}
	if head[0] == 0xFE && head[1] == 0xFF {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec)
	}

	return br
}
