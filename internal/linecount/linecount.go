// Package linecount tallies total and non-blank lines across the files of a
// checked-out repository.
package linecount

import (
	"bufio"
	"bytes"
	"io"
	"unicode"

	"github.com/go-git/go-billy/v5"
)

// maxLineSize bounds the buffer used for a single line. A file with a longer
// line is treated as unreadable.
const maxLineSize = 64 << 20

// Count is the number of lines and non-blank lines seen.
type Count struct {
	Total    int
	NonBlank int
}

// Add returns the sum of c and o.
func (c Count) Add(o Count) Count {
	return Count{Total: c.Total + o.Total, NonBlank: c.NonBlank + o.NonBlank}
}

// Reader counts the lines read from r. "\n", "\r\n" and a lone "\r" all end a
// line; a terminator at the very end does not start another one. A line
// longer than 64 MiB fails with bufio.ErrTooLong, which File reports as an
// unreadable file.
func Reader(r io.Reader) (Count, error) {
	var c Count

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		c.Total++
		if !isBlank(scanner.Bytes()) {
			c.NonBlank++
		}
	}
	if err := scanner.Err(); err != nil {
		return Count{}, err
	}
	return c, nil
}

// File counts the lines of a single file. A file that cannot be opened or
// read contributes nothing and ok is false.
func File(fs billy.Filesystem, path string) (c Count, ok bool) {
	f, err := fs.Open(path)
	if err != nil {
		return Count{}, false
	}
	defer f.Close()

	c, err = Reader(f)
	if err != nil {
		return Count{}, false
	}
	return c, true
}

func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// isBlank drops invalid UTF-8 before trimming, so a line holding only
// undecodable bytes is blank.
func isBlank(line []byte) bool {
	line = bytes.ToValidUTF8(line, nil)
	return len(bytes.TrimFunc(line, isSpace)) == 0
}

// isSpace also treats the ASCII file, group, record and unit separators as
// whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
