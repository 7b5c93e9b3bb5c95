// Package wordlist reads and filters newline-delimited word lists.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// MaxLineSize is the longest line a Reader accepts; longer lines fail with
// bufio.ErrTooLong.
const MaxLineSize = 1 << 20

// Reader streams trimmed, non-empty lines from a word list file.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	line    string
}

// Open opens the word list at path for streaming.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Reader{file: file, scanner: scanner}, nil
}

// Next advances to the next non-empty line.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		r.line = line
		return true
	}
	return false
}

// Line returns the current line.
func (r *Reader) Line() string {
	return r.line
}

// Err returns the first read error.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close releases the file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}
