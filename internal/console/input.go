package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Input provides lines typed by the user
type Input interface {
	// ReadLine blocks until a line is available and returns it without the line ending
	ReadLine() (string, error)
}

// Reader reads lines from an io.Reader, usually os.Stdin
type Reader struct {
	reader *bufio.Reader
}

// NewReader returns a new reader
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
	}
}

// ReadLine returns the next line
// A final line without a newline is returned before io.EOF
func (r *Reader) ReadLine() (string, error) {
	str, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && str != "" {
			return strings.TrimRight(str, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}

// Script replays a fixed list of lines
// After the last line it returns io.EOF
type Script struct {
	lines []string
}

// NewScript returns a script that yields lines in order
func NewScript(lines ...string) *Script {
	return &Script{
		lines: append([]string{}, lines...),
	}
}

// ReadLine returns the next scripted line
func (s *Script) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Remaining returns how many lines have not been read
func (s *Script) Remaining() int {
	return len(s.lines)
}
