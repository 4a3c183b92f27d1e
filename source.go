package dirtree

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReaderSource reads lines from an io.Reader
type ReaderSource struct {
	sc     *bufio.Scanner
	closer io.Closer
}

// NewReaderSource wraps r as a [LineSource]
func NewReaderSource(r io.Reader) *ReaderSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)
	return &ReaderSource{sc: sc}
}

// OpenFileSource opens the command file at path. Close it when done.
func OpenFileSource(path string) (*ReaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src := NewReaderSource(f)
	src.closer = f
	return src, nil
}

func (s *ReaderSource) ReadLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.sc.Text(), "\r"), nil
}

// Close closes the underlying file, if any
func (s *ReaderSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
