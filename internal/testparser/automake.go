package testparser

import (
	"fmt"
	"io"
	"regexp"
)

// DefaultTailWindow is how many trailing bytes of an Automake log are scanned.
const DefaultTailWindow = 1000

// Matches the closing line Automake's test driver writes, e.g.
//
//	PASS foo.test (exit status: 0)
//
// anchored at the end of the text, optionally followed by one newline.
var automakeTrailerRegex = regexp.MustCompile(`(PASS|FAIL|SKIP|ERROR) [^ ]+ \(exit status: \p{Nd}+\)\n?$`)

// ParseAutomakeTrailer returns the status stated at the end of text.
func ParseAutomakeTrailer(text string) (Status, bool) {
	m := automakeTrailerRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return Status(m[1]), true
}

// ReadTail returns the last window bytes of r, or all of it if shorter.
func ReadTail(r io.ReadSeeker, window int64) ([]byte, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}
	offset := size - window
	if offset < 0 || window <= 0 {
		offset = 0
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %d: %w", offset, err)
	}
	return io.ReadAll(r)
}

// ParseAutomake reads the trailing window of an Automake log and extracts
// its overall status.
func ParseAutomake(r io.ReadSeeker, window int64) (Status, bool, error) {
	tail, err := ReadTail(r, window)
	if err != nil {
		return "", false, err
	}
	status, ok := ParseAutomakeTrailer(Decode(tail))
	return status, ok, nil
}
