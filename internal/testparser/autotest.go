package testparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

// AutotestLogName is the file name Autotest gives its aggregate log.
const AutotestLogName = "testsuite.log"

// Matches result lines such as
//
//	  1: basic functionality                ok
//	 10: widget edge case   FAILED (basic.at:123)
var autotestLineRegex = regexp.MustCompile(strings.NewReplacer(
	`\s`, spaceClass,
	`\d`, `\p{Nd}`,
).Replace(`^\s*(\d+):\s+(.*?)\s+(ok|FAILED|skipped)(?:\s+\(.*\))?$`))

// spaceClass is the Unicode whitespace set: RE2's \s is ASCII only and
// leaves out \v, the information separators, NEL and the Z categories.
const spaceClass = `[\t\n\v\f\r\x1c-\x1f\x85\p{Z}]`

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// AutotestResult is one numbered subtest from a testsuite.log.
type AutotestResult struct {
	Number string // Test number as written, e.g. "10"
	Name   string
	Status Status
}

// Key returns the result tree key for this subtest.
func (r AutotestResult) Key() string {
	return "test " + r.Number
}

// ParseAutotestLine matches a single line (without its line terminator).
func ParseAutotestLine(line string) (AutotestResult, bool) {
	m := autotestLineRegex.FindStringSubmatch(line)
	if m == nil {
		return AutotestResult{}, false
	}
	status, ok := StatusFromAutotest(m[3])
	if !ok {
		return AutotestResult{}, false
	}
	return AutotestResult{
		Number: m[1],
		Name:   strings.TrimFunc(m[2], isSpace),
		Status: status,
	}, true
}

// ParseAutotest reads a whole testsuite.log and returns every result line in
// file order. Lines that do not match are skipped.
func ParseAutotest(r io.Reader) ([]AutotestResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read testsuite log: %w", err)
	}

	var results []AutotestResult
	for _, line := range strings.Split(Decode(data), "\n") {
		if res, ok := ParseAutotestLine(line); ok {
			results = append(results, res)
		}
	}
	return results, nil
}
