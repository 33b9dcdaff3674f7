package feencheck

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// A line is one candidate record read from a source.
type line struct {
	number int
	text   string
}

// decode returns r as UTF-8. A byte order mark selects UTF-8 or UTF-16 and is
// stripped; without one the input is taken as UTF-8.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// readLines calls fn for every non-blank line of r that is not a '#'
// comment. Line numbers are one-based. Iteration stops at the first error
// returned by fn.
func readLines(r io.Reader, fn func(line) error) error {
	sc := bufio.NewScanner(decode(r))
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line{number: n, text: text}); err != nil {
			return err
		}
	}
	return sc.Err()
}
