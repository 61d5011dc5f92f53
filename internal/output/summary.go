package output

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/gnu-json-result/internal/testparser"
)

// Summary prints per-status totals to stderr, e.g. "Pass: 12".
func (w *Writer) Summary(counts *testparser.TestCounts) {
	titleCase := cases.Title(language.English)

	if w.color {
		w.Errorln("%s=== Summary ===%s", bold+cyan, reset)
	} else {
		w.Errorln("=== Summary ===")
	}
	for _, s := range testparser.Statuses {
		label := titleCase.String(strings.ToLower(string(s)))
		n := counts.Of(s)
		if w.color && n > 0 {
			w.Errorln("  %s: %s%d%s", label, statusColor(s), n, reset)
		} else {
			w.Errorln("  %s: %d", label, n)
		}
	}
	w.Errorln("  Total: %d", counts.Total)
}

func statusColor(s testparser.Status) string {
	switch s {
	case testparser.StatusPass:
		return green
	case testparser.StatusSkip:
		return yellow
	default:
		return red
	}
}
