// Package input reads puzzle input files as lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLine bounds a single input line; puzzle rows can exceed the scanner's
// 64 KiB default.
const maxLine = 1 << 20

// ReadLines reads the file at path and returns its lines without line
// terminators. A missing file yields an error matching os.ErrNotExist.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	return lines, nil
}

// Lines splits r into lines. Carriage returns before "\n" are dropped and a
// trailing newline does not produce an empty final line.
func Lines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
