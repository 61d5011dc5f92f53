// Package testparser extracts test statuses from GNU build-system test logs.
//
// Two log flavours are recognised: Automake per-test logs, whose last line
// states one overall result, and Autotest testsuite.log files, which list one
// numbered subtest per line.
package testparser

// Status is a normalized test result.
type Status string

// Statuses as written to the result tree.
const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusSkip  Status = "SKIP"
	StatusError Status = "ERROR"
)

// Statuses lists every Status in display order.
var Statuses = []Status{StatusPass, StatusFail, StatusSkip, StatusError}

// autotestStatuses maps the Autotest vocabulary onto Automake statuses.
var autotestStatuses = map[string]Status{
	"ok":      StatusPass,
	"FAILED":  StatusFail,
	"skipped": StatusSkip,
}

// StatusFromAutotest translates an Autotest status token.
// Returns false for tokens outside {ok, FAILED, skipped}.
func StatusFromAutotest(token string) (Status, bool) {
	s, ok := autotestStatuses[token]
	return s, ok
}

// TestCounts holds status totals over a result tree.
type TestCounts struct {
	Passed  int
	Failed  int
	Skipped int
	Errored int
	Total   int
}

// Count records one status. Unknown statuses are ignored.
func (tc *TestCounts) Count(s Status) {
	switch s {
	case StatusPass:
		tc.Passed++
	case StatusFail:
		tc.Failed++
	case StatusSkip:
		tc.Skipped++
	case StatusError:
		tc.Errored++
	default:
		return
	}
	tc.Total++
}

// Of returns the count for a single status.
func (tc *TestCounts) Of(s Status) int {
	switch s {
	case StatusPass:
		return tc.Passed
	case StatusFail:
		return tc.Failed
	case StatusSkip:
		return tc.Skipped
	case StatusError:
		return tc.Errored
	}
	return 0
}
