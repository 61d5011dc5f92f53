package testparser

import "strings"

// LogKind distinguishes the two log flavours.
type LogKind int

const (
	// KindAutomake is a per-test log ending in a single status line.
	KindAutomake LogKind = iota
	// KindAutotest is an aggregate testsuite.log with one line per subtest.
	KindAutotest
)

func (k LogKind) String() string {
	switch k {
	case KindAutotest:
		return "autotest"
	default:
		return "automake"
	}
}

// Classifier decides which files are logs and which parser handles them.
type Classifier struct {
	Extension    string // e.g. ".log"
	AutotestName string // e.g. "testsuite.log"
}

// NewClassifier returns a Classifier with the GNU defaults.
func NewClassifier() *Classifier {
	return &Classifier{
		Extension:    ".log",
		AutotestName: AutotestLogName,
	}
}

// IsLog reports whether a file with this base name should be scanned.
func (c *Classifier) IsLog(name string) bool {
	return strings.HasSuffix(name, c.Extension)
}

// Kind returns the log flavour for a base name.
func (c *Classifier) Kind(name string) LogKind {
	if name == c.AutotestName {
		return KindAutotest
	}
	return KindAutomake
}
