package internal

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// ScanLines is a bufio.SplitFunc that ends a line at "\n", "\r" or "\r\n".
// The terminator is not part of the token and a trailing terminator does not
// produce an empty final line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
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
		if !atEOF {
			// A lone '\r' at the buffer edge may be the first half of "\r\n".
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadLines reads every line from r. maxLine bounds the longest accepted line.
func ReadLines(r io.Reader, maxLine int) ([]string, error) {
	sc := bufio.NewScanner(r)
	if maxLine < bufio.MaxScanTokenSize {
		maxLine = bufio.MaxScanTokenSize
	}
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)
	sc.Split(ScanLines)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// SplitLines splits text the same way ReadLines splits a stream.
func SplitLines(text string) []string {
	lines, err := ReadLines(strings.NewReader(text), len(text)+1)
	if err != nil {
		// A line can never exceed len(text), so the scanner cannot overflow.
		return nil
	}
	return lines
}
