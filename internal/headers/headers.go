package headers

import (
	"bytes"
	"strconv"
	"strings"
)

const contentLengthPrefix = "Content-Length:"

// Lines holds request header lines exactly as received, minus the line
// terminator. Lookups are by substring or prefix, never by parsed name.
type Lines []string

// Parse consumes at most one line from data. It returns the number of bytes
// consumed and done=true once the blank line ending the header block is read.
// The blank line is never stored. A partial line consumes nothing.
func (l *Lines) Parse(data []byte) (n int, done bool, err error) {
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		return 0, false, nil
	}
	n = idx + 1

	line := string(bytes.TrimSuffix(data[:idx], []byte("\r")))
	if line == "" {
		return n, true, nil
	}

	*l = append(*l, line)
	return n, false, nil
}

// Find returns the first line containing substr.
func (l Lines) Find(substr string) (string, bool) {
	for _, line := range l {
		if strings.Contains(line, substr) {
			return line, true
		}
	}
	return "", false
}

// ContentLength returns the length declared by the first line starting with
// "Content-Length:". The value is the next whitespace-delimited token; a
// missing, unparsable or negative value yields 0.
func (l Lines) ContentLength() int {
	for _, line := range l {
		if !strings.HasPrefix(line, contentLengthPrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}
